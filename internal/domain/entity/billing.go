package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingStatus is the closed payment lifecycle. Any status may transition to
// any other; paid is an end state by convention only.
type BillingStatus string

const (
	BillingUnpaid    BillingStatus = "unpaid"
	BillingPending   BillingStatus = "pending"
	BillingPaid      BillingStatus = "paid"
	BillingOverdue   BillingStatus = "overdue"
	BillingCancelled BillingStatus = "cancelled"
)

// ValidBillingStatus reports whether status is in the closed set.
func ValidBillingStatus(status BillingStatus) bool {
	switch status {
	case BillingUnpaid, BillingPending, BillingPaid, BillingOverdue, BillingCancelled:
		return true
	}
	return false
}

// BillingDetails charges a patient for clinical work. AppointmentID and
// ReportID are weak references; the procedure text is caller-assembled and
// never validated against the workflow store. Once status is paid the cost
// must not change.
type BillingDetails struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int64           `gorm:"not null;index" json:"patient_id"`
	AppointmentID *int64          `gorm:"index" json:"appointment_id,omitempty"`
	Procedure     string          `gorm:"type:text;not null" json:"procedure"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	Status        BillingStatus   `gorm:"type:varchar(20);not null;default:'unpaid';index" json:"status"`
	ReportID      *int64          `json:"report_id,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BillingDetails) TableName() string {
	return "billing_details"
}

// IsPaid checks if the bill has been settled.
func (b *BillingDetails) IsPaid() bool {
	return b.Status == BillingPaid
}
