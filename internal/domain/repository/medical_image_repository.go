package repository

import (
	"context"

	"clinicore/internal/domain/entity"
)

type MedicalImageRepository interface {
	Create(ctx context.Context, image *entity.MedicalImage) error
	FindByID(ctx context.Context, id int64) (*entity.MedicalImage, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.MedicalImage, error)
	FindAll(ctx context.Context) ([]entity.MedicalImage, error)
	Delete(ctx context.Context, id int64) error
}
