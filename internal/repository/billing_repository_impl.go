package repository

import (
	"context"
	"errors"

	"clinicore/internal/domain/entity"
	domainRepo "clinicore/internal/domain/repository"

	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, billing *entity.BillingDetails) error {
	return r.db.WithContext(ctx).Create(billing).Error
}

func (r *billingRepository) FindByID(ctx context.Context, id int64) (*entity.BillingDetails, error) {
	var billing entity.BillingDetails
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&billing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.BillingDetails, error) {
	var billings []entity.BillingDetails
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&billings).Error
	if err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *billingRepository) FindAll(ctx context.Context, status entity.BillingStatus) ([]entity.BillingDetails, error) {
	var billings []entity.BillingDetails
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&billings).Error; err != nil {
		return nil, err
	}
	return billings, nil
}

func (r *billingRepository) Update(ctx context.Context, billing *entity.BillingDetails) error {
	return r.db.WithContext(ctx).Save(billing).Error
}

func (r *billingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&entity.BillingDetails{}, id).Error
}
