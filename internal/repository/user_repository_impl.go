package repository

import (
	"context"
	"errors"

	"clinicore/internal/domain/entity"
	domainRepo "clinicore/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	// gorm persists the user and its profile association in one transaction
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("PatientProfile").
		Preload("StaffProfile").
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("PatientProfile").
		Preload("StaffProfile").
		Where("id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).
		Preload("PatientProfile").
		Preload("StaffProfile").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

type patientProfileRepository struct {
	db *gorm.DB
}

func NewPatientProfileRepository(db *gorm.DB) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

func (r *patientProfileRepository) FindByPatientID(ctx context.Context, patientID int64) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("patient_id = ?", patientID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) Update(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

type staffProfileRepository struct {
	db *gorm.DB
}

func NewStaffProfileRepository(db *gorm.DB) domainRepo.StaffProfileRepository {
	return &staffProfileRepository{db: db}
}

func (r *staffProfileRepository) FindByStaffID(ctx context.Context, staffID int64) (*entity.StaffProfile, error) {
	var profile entity.StaffProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("staff_id = ?", staffID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *staffProfileRepository) FindByUserID(ctx context.Context, userID int64) (*entity.StaffProfile, error) {
	var profile entity.StaffProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *staffProfileRepository) FindAll(ctx context.Context) ([]entity.StaffProfile, error) {
	var profiles []entity.StaffProfile
	err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *staffProfileRepository) Update(ctx context.Context, profile *entity.StaffProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
