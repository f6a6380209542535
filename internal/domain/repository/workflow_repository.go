package repository

import (
	"context"

	"clinicore/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status entity.AppointmentStatus) error
}

type MedicalTestRepository interface {
	Create(ctx context.Context, test *entity.MedicalTest) error
	FindByID(ctx context.Context, id int64) (*entity.MedicalTest, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.MedicalTest, error)
	FindAll(ctx context.Context) ([]entity.MedicalTest, error)
	// UpdateImageID and UpdateStatus are intentionally separate writes; the
	// image-attach flow issues them back to back without a transaction.
	UpdateImageID(ctx context.Context, id int64, imageID int64) error
	UpdateStatus(ctx context.Context, id int64, status entity.TestStatus) error
	UpdateRadiologistID(ctx context.Context, id int64, radiologistID int64) error
	UpdateReportID(ctx context.Context, id int64, reportID int64) error
}

type DiagnosisReportRepository interface {
	Create(ctx context.Context, report *entity.DiagnosisReport) error
	FindByID(ctx context.Context, id int64) (*entity.DiagnosisReport, error)
	FindByTestID(ctx context.Context, testID int64) (*entity.DiagnosisReport, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.DiagnosisReport, error)
	FindByStaffID(ctx context.Context, staffID int64) ([]entity.DiagnosisReport, error)
	FindAll(ctx context.Context) ([]entity.DiagnosisReport, error)
	Update(ctx context.Context, report *entity.DiagnosisReport) error
}
