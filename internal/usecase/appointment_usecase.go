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

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidTimestamp    = errors.New("invalid timestamp, use RFC 3339")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	workflowLog     service.WorkflowLogService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	workflowLog service.WorkflowLogService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		workflowLog:     workflowLog,
	}
}

// CreateAppointment books a patient with a doctor. Patient and doctor ids are
// weak references owned by the identity component; they are stored without an
// existence check.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	creatorID, _ := middleware.GetUserIDFromContext(ctx)

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: scheduledAt,
		Status:      entity.AppointmentScheduled,
		CreatedBy:   creatorID,
		Notes:       req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.workflowLog.Record(ctx, creatorID,
		fmt.Sprintf("Created appointment %d for patient %d with doctor %d", appointment.ID, req.PatientID, req.DoctorID))

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, patientID int64) (*dto.AppointmentListResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	if patientID != 0 {
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, patientID)
	} else {
		appointments, err = u.appointmentRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus sets the caller-chosen status; the system defines no automatic
// transitions and appointment status is independent of test status.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
		return nil, err
	}

	callerID, _ := middleware.GetUserIDFromContext(ctx)
	u.workflowLog.Record(ctx, callerID,
		fmt.Sprintf("Updated appointment %d status to %s", id, status))

	appointment.Status = status
	return converter.AppointmentToResponse(appointment), nil
}
