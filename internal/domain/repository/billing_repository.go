package repository

import (
	"context"

	"clinicore/internal/domain/entity"
)

type BillingRepository interface {
	Create(ctx context.Context, billing *entity.BillingDetails) error
	FindByID(ctx context.Context, id int64) (*entity.BillingDetails, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.BillingDetails, error)
	FindAll(ctx context.Context, status entity.BillingStatus) ([]entity.BillingDetails, error)
	Update(ctx context.Context, billing *entity.BillingDetails) error
	Delete(ctx context.Context, id int64) error
}
