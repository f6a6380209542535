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

type WorkflowLogHandler struct {
	logUsecase usecase.WorkflowLogUsecase
	validator  *validator.CustomValidator
}

func NewWorkflowLogHandler(logUsecase usecase.WorkflowLogUsecase, validator *validator.CustomValidator) *WorkflowLogHandler {
	return &WorkflowLogHandler{
		logUsecase: logUsecase,
		validator:  validator,
	}
}

func (h *WorkflowLogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.logUsecase.RecordLog(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to record log entry")
		return
	}

	response.Success(w, http.StatusCreated, "Log entry recorded successfully", entry)
}

func (h *WorkflowLogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid log ID")
		return
	}

	entry, err := h.logUsecase.GetLog(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLogNotFound:
			response.NotFound(w, "Log entry not found")
		default:
			response.InternalServerError(w, "Failed to get log entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Log entry retrieved successfully", entry)
}

func (h *WorkflowLogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	var userID int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid user_id filter")
			return
		}
		userID = parsed
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.logUsecase.GetLogs(r.Context(), userID, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get log entries")
		return
	}

	response.Success(w, http.StatusOK, "Log entries retrieved successfully", logs)
}
