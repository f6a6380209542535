package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinicore/internal/delivery/dto"
	"clinicore/internal/usecase"
	"clinicore/pkg/response"
	"clinicore/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.userUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *UserHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.userUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *UserHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.userUsecase.UpdatePatient(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date of birth, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *UserHandler) GetStaffMembers(w http.ResponseWriter, r *http.Request) {
	staff, err := h.userUsecase.GetAllStaff(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

func (h *UserHandler) UpdateStaffMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.userUsecase.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		case usecase.ErrInvalidStaffRole:
			response.BadRequest(w, "Invalid staff role")
		default:
			response.InternalServerError(w, "Failed to update staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff updated successfully", staff)
}

func (h *UserHandler) GetStaffMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid staff ID")
		return
	}

	staff, err := h.userUsecase.GetStaff(r.Context(), staffID)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to get staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}
