package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicore/internal/converter"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/delivery/http/middleware"
	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"
	"clinicore/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrBillingNotFound      = errors.New("billing record not found")
	ErrInvalidBillingStatus = errors.New("invalid billing status")
	ErrPaidCostImmutable    = errors.New("cost of a paid billing record cannot change")
)

type BillingUsecase interface {
	CreateBilling(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error)
	GetBilling(ctx context.Context, id int64) (*dto.BillingResponse, error)
	GetBillings(ctx context.Context, patientID int64, status string) (*dto.BillingListResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateBillingStatusRequest) (*dto.BillingResponse, error)
	UpdateBilling(ctx context.Context, id int64, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error)
	DeleteBilling(ctx context.Context, id int64) error
	GetPatientTotal(ctx context.Context, patientID int64) (*dto.BillingTotalResponse, error)
	GetSummary(ctx context.Context) (*dto.BillingSummaryResponse, error)
	GetMonthlyRevenue(ctx context.Context, year int) (*dto.MonthlyRevenueResponse, error)
}

type billingUsecase struct {
	log             *logrus.Logger
	billingRepo     repository.BillingRepository
	appointmentRepo repository.AppointmentRepository
	workflowLog     service.WorkflowLogService
}

func NewBillingUsecase(log *logrus.Logger, billingRepo repository.BillingRepository, appointmentRepo repository.AppointmentRepository, workflowLog service.WorkflowLogService) BillingUsecase {
	return &billingUsecase{
		log:             log,
		billingRepo:     billingRepo,
		appointmentRepo: appointmentRepo,
		workflowLog:     workflowLog,
	}
}

// CreateBilling records a new charge in unpaid status. Appointment and report
// ids are stored as given; there is no check that either exists.
func (u *billingUsecase) CreateBilling(ctx context.Context, req *dto.CreateBillingRequest) (*dto.BillingResponse, error) {
	billing := &entity.BillingDetails{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Procedure:     req.Procedure,
		Cost:          req.Cost,
		Status:        entity.BillingUnpaid,
		ReportID:      req.ReportID,
	}

	if err := u.billingRepo.Create(ctx, billing); err != nil {
		u.log.Warnf("Failed to create billing record: %+v", err)
		return nil, err
	}

	// Best-effort back-link on the appointment. The appointment id is a weak
	// reference, so a missing appointment is not an error.
	if req.AppointmentID != nil {
		if appt, err := u.appointmentRepo.FindByID(ctx, *req.AppointmentID); err == nil && appt != nil {
			appt.BillingID = &billing.ID
			if err := u.appointmentRepo.Update(ctx, appt); err != nil {
				u.log.Warnf("Failed to link billing %d to appointment %d: %+v", billing.ID, appt.ID, err)
			}
		}
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Created billing record %d for patient %d", billing.ID, req.PatientID))

	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) GetBilling(ctx context.Context, id int64) (*dto.BillingResponse, error) {
	billing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record %d: %+v", id, err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}
	return converter.BillingToResponse(billing), nil
}

func (u *billingUsecase) GetBillings(ctx context.Context, patientID int64, status string) (*dto.BillingListResponse, error) {
	filter := entity.BillingStatus(status)
	if status != "" && !entity.ValidBillingStatus(filter) {
		return nil, ErrInvalidBillingStatus
	}

	var (
		billings []entity.BillingDetails
		err      error
	)
	if patientID != 0 {
		billings, err = u.billingRepo.FindByPatientID(ctx, patientID)
		if err == nil && status != "" {
			filtered := billings[:0]
			for _, b := range billings {
				if b.Status == filter {
					filtered = append(filtered, b)
				}
			}
			billings = filtered
		}
	} else {
		billings, err = u.billingRepo.FindAll(ctx, filter)
	}
	if err != nil {
		u.log.Warnf("Failed to list billing records: %+v", err)
		return nil, err
	}

	return &dto.BillingListResponse{
		Billings: converter.BillingsToResponses(billings),
		Total:    len(billings),
	}, nil
}

// UpdateStatus moves the record to any status in the closed set. Paid is not
// terminal: a paid record may be moved back to unpaid to model a refund or a
// bookkeeping correction.
func (u *billingUsecase) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateBillingStatusRequest) (*dto.BillingResponse, error) {
	status := entity.BillingStatus(req.Status)
	if !entity.ValidBillingStatus(status) {
		return nil, ErrInvalidBillingStatus
	}

	billing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record %d: %+v", id, err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	billing.Status = status
	if err := u.billingRepo.Update(ctx, billing); err != nil {
		u.log.Warnf("Failed to update billing record %d status: %+v", id, err)
		return nil, err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Set billing record %d to %s", id, status))

	return converter.BillingToResponse(billing), nil
}

// UpdateBilling edits the procedure text and cost. Changing the cost of a
// paid record is rejected; set the record back to unpaid first.
func (u *billingUsecase) UpdateBilling(ctx context.Context, id int64, req *dto.UpdateBillingRequest) (*dto.BillingResponse, error) {
	billing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record %d: %+v", id, err)
		return nil, err
	}
	if billing == nil {
		return nil, ErrBillingNotFound
	}

	if req.Cost != nil && !req.Cost.Equal(billing.Cost) {
		if billing.IsPaid() {
			return nil, ErrPaidCostImmutable
		}
		billing.Cost = *req.Cost
	}
	if req.Procedure != "" {
		billing.Procedure = req.Procedure
	}

	if err := u.billingRepo.Update(ctx, billing); err != nil {
		u.log.Warnf("Failed to update billing record %d: %+v", id, err)
		return nil, err
	}

	return converter.BillingToResponse(billing), nil
}

// DeleteBilling removes the record entirely. Appointments that back-link the
// record keep their billing id; it is a weak reference like every other
// cross-entity id.
func (u *billingUsecase) DeleteBilling(ctx context.Context, id int64) error {
	billing, err := u.billingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find billing record %d: %+v", id, err)
		return err
	}
	if billing == nil {
		return ErrBillingNotFound
	}

	if err := u.billingRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete billing record %d: %+v", id, err)
		return err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID, fmt.Sprintf("Deleted billing record %d", id))

	return nil
}

// GetPatientTotal sums the patient's charges. Outstanding covers unpaid,
// pending and overdue records; cancelled records count toward neither bucket.
func (u *billingUsecase) GetPatientTotal(ctx context.Context, patientID int64) (*dto.BillingTotalResponse, error) {
	billings, err := u.billingRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list billing records for patient %d: %+v", patientID, err)
		return nil, err
	}

	total := decimal.Zero
	outstanding := decimal.Zero
	paid := decimal.Zero
	for i := range billings {
		b := &billings[i]
		total = total.Add(b.Cost)
		switch b.Status {
		case entity.BillingUnpaid, entity.BillingPending, entity.BillingOverdue:
			outstanding = outstanding.Add(b.Cost)
		case entity.BillingPaid:
			paid = paid.Add(b.Cost)
		}
	}

	return &dto.BillingTotalResponse{
		PatientID:    patientID,
		TotalCost:    total,
		Outstanding:  outstanding,
		Paid:         paid,
		BillingCount: len(billings),
	}, nil
}

func (u *billingUsecase) GetSummary(ctx context.Context) (*dto.BillingSummaryResponse, error) {
	billings, err := u.billingRepo.FindAll(ctx, "")
	if err != nil {
		u.log.Warnf("Failed to list billing records: %+v", err)
		return nil, err
	}

	summary := &dto.BillingSummaryResponse{
		TotalPaid:     decimal.Zero,
		TotalUnpaid:   decimal.Zero,
		TotalBillings: len(billings),
	}
	for i := range billings {
		b := &billings[i]
		switch b.Status {
		case entity.BillingPaid:
			summary.TotalPaid = summary.TotalPaid.Add(b.Cost)
			summary.PaidCount++
		case entity.BillingUnpaid, entity.BillingPending, entity.BillingOverdue:
			summary.TotalUnpaid = summary.TotalUnpaid.Add(b.Cost)
			summary.UnpaidCount++
		}
	}

	return summary, nil
}

// GetMonthlyRevenue groups paid charges by the month they were created. A
// zero year means the current year. Every month appears in the result, zero
// revenue included.
func (u *billingUsecase) GetMonthlyRevenue(ctx context.Context, year int) (*dto.MonthlyRevenueResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	billings, err := u.billingRepo.FindAll(ctx, entity.BillingPaid)
	if err != nil {
		u.log.Warnf("Failed to list paid billing records: %+v", err)
		return nil, err
	}

	byMonth := make(map[time.Month]decimal.Decimal, 12)
	total := decimal.Zero
	for i := range billings {
		b := &billings[i]
		if b.CreatedAt.Year() != year {
			continue
		}
		month := b.CreatedAt.Month()
		byMonth[month] = byMonth[month].Add(b.Cost)
		total = total.Add(b.Cost)
	}

	months := make([]dto.MonthlyRevenueEntry, 0, 12)
	for m := time.January; m <= time.December; m++ {
		revenue, ok := byMonth[m]
		if !ok {
			revenue = decimal.Zero
		}
		months = append(months, dto.MonthlyRevenueEntry{
			Month:       m.String(),
			MonthNumber: int(m),
			Revenue:     revenue,
		})
	}

	return &dto.MonthlyRevenueResponse{
		Year:           year,
		MonthlyRevenue: months,
		TotalRevenue:   total,
	}, nil
}
