package entity

import "time"

// ReportStatus covers the report lifecycle.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportFinalized ReportStatus = "finalized"
)

// DiagnosisReport is created or replaced by report generation; re-invoking
// the operation updates the existing row, keeping the report id stable.
type DiagnosisReport struct {
	ID              int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int64        `gorm:"not null;index" json:"patient_id"`
	StaffID         int64        `gorm:"not null;index" json:"staff_id"`
	TestID          *int64       `gorm:"uniqueIndex" json:"test_id,omitempty"`
	ImageID         *int64       `json:"image_id,omitempty"`
	Findings        string       `gorm:"type:text" json:"findings,omitempty"`
	Diagnosis       string       `gorm:"type:text" json:"diagnosis,omitempty"`
	Recommendations string       `gorm:"type:text" json:"recommendations,omitempty"`
	Status          ReportStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DiagnosisReport) TableName() string {
	return "diagnosis_reports"
}
