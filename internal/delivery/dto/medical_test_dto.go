package dto

import "time"

// Request DTOs

type CreateTestRequest struct {
	PatientID     int64  `json:"patient_id" validate:"required,gt=0"`
	DoctorID      int64  `json:"doctor_id" validate:"required,gt=0"`
	RadiologistID *int64 `json:"radiologist_id" validate:"omitempty,gt=0"`
	AppointmentID *int64 `json:"appointment_id" validate:"omitempty,gt=0"`
	ScanType      string `json:"scan_type" validate:"required"`
}

type AssignRadiologistRequest struct {
	RadiologistID int64 `json:"radiologist_id" validate:"required,gt=0"`
}

type AttachImageRequest struct {
	ImageID int64 `json:"image_id" validate:"required,gt=0"`
}

type GenerateReportRequest struct {
	Findings        string `json:"findings" validate:"required"`
	Diagnosis       string `json:"diagnosis" validate:"required"`
	Recommendations string `json:"recommendations" validate:"omitempty"`
}

// Response DTOs

type TestResponse struct {
	ID            int64     `json:"id"`
	PatientID     int64     `json:"patient_id"`
	DoctorID      int64     `json:"doctor_id"`
	RadiologistID *int64    `json:"radiologist_id,omitempty"`
	AppointmentID *int64    `json:"appointment_id,omitempty"`
	ScanType      string    `json:"scan_type"`
	Status        string    `json:"status"`
	ReportID      *int64    `json:"report_id,omitempty"`
	ImageID       *int64    `json:"image_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TestListResponse struct {
	Tests []TestResponse `json:"tests"`
	Total int            `json:"total"`
}

type ReportResponse struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patient_id"`
	StaffID         int64     `json:"staff_id"`
	TestID          *int64    `json:"test_id,omitempty"`
	ImageID         *int64    `json:"image_id,omitempty"`
	Findings        string    `json:"findings,omitempty"`
	Diagnosis       string    `json:"diagnosis,omitempty"`
	Recommendations string    `json:"recommendations,omitempty"`
	Status          string    `json:"status"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
