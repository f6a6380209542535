package repository

import (
	"context"

	"clinicore/internal/domain/entity"
)

// UserRepository owns the generic identity rows. Implementations return
// (nil, nil) when a lookup misses so callers can map it to a not-found error.
type UserRepository interface {
	// Create persists the user together with its profile association in one
	// transaction.
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Update(ctx context.Context, user *entity.User) error
}

type PatientProfileRepository interface {
	FindByPatientID(ctx context.Context, patientID int64) (*entity.PatientProfile, error)
	FindByUserID(ctx context.Context, userID int64) (*entity.PatientProfile, error)
	FindAll(ctx context.Context) ([]entity.PatientProfile, error)
	Update(ctx context.Context, profile *entity.PatientProfile) error
}

type StaffProfileRepository interface {
	FindByStaffID(ctx context.Context, staffID int64) (*entity.StaffProfile, error)
	FindByUserID(ctx context.Context, userID int64) (*entity.StaffProfile, error)
	FindAll(ctx context.Context) ([]entity.StaffProfile, error)
	Update(ctx context.Context, profile *entity.StaffProfile) error
}
