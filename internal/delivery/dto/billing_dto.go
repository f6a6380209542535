package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBillingRequest struct {
	PatientID     int64           `json:"patient_id" validate:"required,gt=0"`
	AppointmentID *int64          `json:"appointment_id" validate:"omitempty,gt=0"`
	Procedure     string          `json:"procedure" validate:"required"`
	Cost          decimal.Decimal `json:"cost" validate:"required"`
	ReportID      *int64          `json:"report_id" validate:"omitempty,gt=0"`
}

type UpdateBillingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unpaid pending paid overdue cancelled"`
}

type UpdateBillingRequest struct {
	Procedure string           `json:"procedure" validate:"omitempty"`
	Cost      *decimal.Decimal `json:"cost" validate:"omitempty"`
}

// Response DTOs

type BillingResponse struct {
	ID            int64           `json:"id"`
	PatientID     int64           `json:"patient_id"`
	AppointmentID *int64          `json:"appointment_id,omitempty"`
	Procedure     string          `json:"procedure"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"`
	ReportID      *int64          `json:"report_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type BillingListResponse struct {
	Billings []BillingResponse `json:"billings"`
	Total    int               `json:"total"`
}

type BillingTotalResponse struct {
	PatientID    int64           `json:"patient_id"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	Paid         decimal.Decimal `json:"paid"`
	BillingCount int             `json:"billing_count"`
}

type MonthlyRevenueEntry struct {
	Month       string          `json:"month"`
	MonthNumber int             `json:"month_number"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type MonthlyRevenueResponse struct {
	Year           int                   `json:"year"`
	MonthlyRevenue []MonthlyRevenueEntry `json:"monthly_revenue"`
	TotalRevenue   decimal.Decimal       `json:"total_revenue"`
}

type BillingSummaryResponse struct {
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalUnpaid   decimal.Decimal `json:"total_unpaid"`
	TotalBillings int             `json:"total_billings"`
	PaidCount     int             `json:"paid_count"`
	UnpaidCount   int             `json:"unpaid_count"`
}
