package response

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope shared by every endpoint. Detail carries the
// machine-readable error message; Fields carries per-field validation detail.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Detail  string            `json:"detail,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, Response{
		Success: false,
		Detail:  detail,
	})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Detail:  "validation failed",
		Fields:  fields,
	})
}

func BadRequest(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "invalid request"
	}
	Error(w, http.StatusBadRequest, detail)
}

func Unauthorized(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "unauthorized"
	}
	Error(w, http.StatusUnauthorized, detail)
}

func Forbidden(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "forbidden"
	}
	Error(w, http.StatusForbidden, detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "resource not found"
	}
	Error(w, http.StatusNotFound, detail)
}

func InternalServerError(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "internal server error"
	}
	Error(w, http.StatusInternalServerError, detail)
}
