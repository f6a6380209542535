package repository

import (
	"context"
	"errors"

	"clinicore/internal/domain/entity"
	domainRepo "clinicore/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalImageRepository struct {
	db *gorm.DB
}

func NewMedicalImageRepository(db *gorm.DB) domainRepo.MedicalImageRepository {
	return &medicalImageRepository{db: db}
}

func (r *medicalImageRepository) Create(ctx context.Context, image *entity.MedicalImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *medicalImageRepository) FindByID(ctx context.Context, id int64) (*entity.MedicalImage, error) {
	var image entity.MedicalImage
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *medicalImageRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.MedicalImage, error) {
	var images []entity.MedicalImage
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("uploaded_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *medicalImageRepository) FindAll(ctx context.Context) ([]entity.MedicalImage, error) {
	var images []entity.MedicalImage
	err := r.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *medicalImageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.MedicalImage{}, id).Error
}
