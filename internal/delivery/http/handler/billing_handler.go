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

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.CreateBilling(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create billing record")
		return
	}

	response.Success(w, http.StatusCreated, "Billing record created successfully", billing)
}

func (h *BillingHandler) GetBilling(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid billing ID")
		return
	}

	billing, err := h.billingUsecase.GetBilling(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		default:
			response.InternalServerError(w, "Failed to get billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record retrieved successfully", billing)
}

func (h *BillingHandler) GetBillings(w http.ResponseWriter, r *http.Request) {
	var patientID int64
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid patient_id filter")
			return
		}
		patientID = parsed
	}
	status := r.URL.Query().Get("status")

	billings, err := h.billingUsecase.GetBillings(r.Context(), patientID, status)
	if err != nil {
		switch err {
		case usecase.ErrInvalidBillingStatus:
			response.BadRequest(w, "Invalid billing status filter")
		default:
			response.InternalServerError(w, "Failed to get billing records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing records retrieved successfully", billings)
}

func (h *BillingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid billing ID")
		return
	}

	var req dto.UpdateBillingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		case usecase.ErrInvalidBillingStatus:
			response.BadRequest(w, "Invalid billing status")
		default:
			response.InternalServerError(w, "Failed to update billing status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing status updated successfully", billing)
}

func (h *BillingHandler) UpdateBilling(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid billing ID")
		return
	}

	var req dto.UpdateBillingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	billing, err := h.billingUsecase.UpdateBilling(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		case usecase.ErrPaidCostImmutable:
			response.Error(w, http.StatusConflict, "Cost of a paid billing record cannot change")
		default:
			response.InternalServerError(w, "Failed to update billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record updated successfully", billing)
}

func (h *BillingHandler) DeleteBilling(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid billing ID")
		return
	}

	if err := h.billingUsecase.DeleteBilling(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBillingNotFound:
			response.NotFound(w, "Billing record not found")
		default:
			response.InternalServerError(w, "Failed to delete billing record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Billing record deleted successfully", nil)
}

func (h *BillingHandler) GetPatientTotal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	total, err := h.billingUsecase.GetPatientTotal(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute patient total")
		return
	}

	response.Success(w, http.StatusOK, "Patient total computed successfully", total)
}

func (h *BillingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.billingUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute billing summary")
		return
	}

	response.Success(w, http.StatusOK, "Billing summary computed successfully", summary)
}

func (h *BillingHandler) GetMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	var year int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}

	revenue, err := h.billingUsecase.GetMonthlyRevenue(r.Context(), year)
	if err != nil {
		response.InternalServerError(w, "Failed to compute monthly revenue")
		return
	}

	response.Success(w, http.StatusOK, "Monthly revenue computed successfully", revenue)
}
