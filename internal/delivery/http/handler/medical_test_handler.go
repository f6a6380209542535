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

type MedicalTestHandler struct {
	testUsecase usecase.MedicalTestUsecase
	validator   *validator.CustomValidator
}

func NewMedicalTestHandler(testUsecase usecase.MedicalTestUsecase, validator *validator.CustomValidator) *MedicalTestHandler {
	return &MedicalTestHandler{
		testUsecase: testUsecase,
		validator:   validator,
	}
}

func (h *MedicalTestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.CreateTest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidScanType:
			response.BadRequest(w, "Invalid scan type")
		default:
			response.InternalServerError(w, "Failed to create test")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Test created successfully", test)
}

func (h *MedicalTestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	test, err := h.testUsecase.GetTest(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to get test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test retrieved successfully", test)
}

func (h *MedicalTestHandler) GetTests(w http.ResponseWriter, r *http.Request) {
	var patientID int64
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid patient_id filter")
			return
		}
		patientID = parsed
	}

	tests, err := h.testUsecase.GetTests(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get tests")
		return
	}

	response.Success(w, http.StatusOK, "Tests retrieved successfully", tests)
}

func (h *MedicalTestHandler) AssignRadiologist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.AssignRadiologistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.AssignRadiologist(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		default:
			response.InternalServerError(w, "Failed to assign radiologist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Radiologist assigned successfully", test)
}

func (h *MedicalTestHandler) AttachImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.AttachImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	test, err := h.testUsecase.AttachImage(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrImageAlreadyAttached:
			response.BadRequest(w, "Test already has an image")
		default:
			response.InternalServerError(w, "Failed to attach image")
		}
		return
	}

	response.Success(w, http.StatusOK, "Image attached successfully", test)
}

func (h *MedicalTestHandler) CompleteTest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	test, err := h.testUsecase.CompleteTest(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrImageRequired:
			response.BadRequest(w, "Test has no associated image")
		case usecase.ErrTestAlreadyDone:
			response.BadRequest(w, "Test is already done")
		default:
			response.InternalServerError(w, "Failed to complete test")
		}
		return
	}

	response.Success(w, http.StatusOK, "Test marked as done", test)
}

func (h *MedicalTestHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	testID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid test ID")
		return
	}

	var req dto.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.testUsecase.GenerateReport(r.Context(), testID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTestNotFound:
			response.NotFound(w, "Test not found")
		case usecase.ErrImageRequired:
			response.BadRequest(w, "Test has no associated image")
		default:
			response.InternalServerError(w, "Failed to generate report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *MedicalTestHandler) FinalizeReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	report, err := h.testUsecase.FinalizeReport(r.Context(), reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		default:
			response.InternalServerError(w, "Failed to finalize report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report finalized successfully", report)
}

func (h *MedicalTestHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	report, err := h.testUsecase.GetReport(r.Context(), reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *MedicalTestHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	var patientID, staffID int64
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid patient_id filter")
			return
		}
		patientID = parsed
	}
	if raw := r.URL.Query().Get("staff_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid staff_id filter")
			return
		}
		staffID = parsed
	}

	reports, err := h.testUsecase.GetReports(r.Context(), patientID, staffID)
	if err != nil {
		response.InternalServerError(w, "Failed to get reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}
