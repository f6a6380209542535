package entity

import "time"

// AppointmentStatus is caller-driven; the system never transitions it on its
// own.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// ValidAppointmentStatus reports whether status is in the closed set.
func ValidAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// Appointment links a patient and a doctor by their secondary ids. Both ids
// are weak references: they are stored as-is with no existence check.
type Appointment struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID    int64             `gorm:"not null;index" json:"doctor_id"`
	ScheduledAt time.Time         `gorm:"not null" json:"scheduled_at"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedBy   int64             `gorm:"not null" json:"created_by"`
	Notes       string            `gorm:"type:text" json:"notes,omitempty"`
	BillingID   *int64            `json:"billing_id,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}
