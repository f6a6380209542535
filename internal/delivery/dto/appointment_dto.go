package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   int64  `json:"patient_id" validate:"required,gt=0"`
	DoctorID    int64  `json:"doctor_id" validate:"required,gt=0"`
	ScheduledAt string `json:"scheduled_at" validate:"required"` // RFC 3339
	Notes       string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	DoctorID    int64     `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedBy   int64     `json:"created_by"`
	Notes       string    `json:"notes,omitempty"`
	BillingID   *int64    `json:"billing_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
