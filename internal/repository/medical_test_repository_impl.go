package repository

import (
	"context"
	"errors"

	"clinicore/internal/domain/entity"
	domainRepo "clinicore/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalTestRepository struct {
	db *gorm.DB
}

func NewMedicalTestRepository(db *gorm.DB) domainRepo.MedicalTestRepository {
	return &medicalTestRepository{db: db}
}

func (r *medicalTestRepository) Create(ctx context.Context, test *entity.MedicalTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *medicalTestRepository) FindByID(ctx context.Context, id int64) (*entity.MedicalTest, error) {
	var test entity.MedicalTest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&test).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *medicalTestRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.MedicalTest, error) {
	var tests []entity.MedicalTest
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *medicalTestRepository) FindAll(ctx context.Context) ([]entity.MedicalTest, error) {
	var tests []entity.MedicalTest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *medicalTestRepository) UpdateImageID(ctx context.Context, id int64, imageID int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.MedicalTest{}).
		Where("id = ?", id).
		Update("image_id", imageID).Error
}

func (r *medicalTestRepository) UpdateStatus(ctx context.Context, id int64, status entity.TestStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.MedicalTest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *medicalTestRepository) UpdateRadiologistID(ctx context.Context, id int64, radiologistID int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.MedicalTest{}).
		Where("id = ?", id).
		Update("radiologist_id", radiologistID).Error
}

func (r *medicalTestRepository) UpdateReportID(ctx context.Context, id int64, reportID int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.MedicalTest{}).
		Where("id = ?", id).
		Update("report_id", reportID).Error
}

type diagnosisReportRepository struct {
	db *gorm.DB
}

func NewDiagnosisReportRepository(db *gorm.DB) domainRepo.DiagnosisReportRepository {
	return &diagnosisReportRepository{db: db}
}

func (r *diagnosisReportRepository) Create(ctx context.Context, report *entity.DiagnosisReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *diagnosisReportRepository) FindByID(ctx context.Context, id int64) (*entity.DiagnosisReport, error) {
	var report entity.DiagnosisReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *diagnosisReportRepository) FindByTestID(ctx context.Context, testID int64) (*entity.DiagnosisReport, error) {
	var report entity.DiagnosisReport
	err := r.db.WithContext(ctx).Where("test_id = ?", testID).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *diagnosisReportRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.DiagnosisReport, error) {
	var reports []entity.DiagnosisReport
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("updated_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *diagnosisReportRepository) FindByStaffID(ctx context.Context, staffID int64) ([]entity.DiagnosisReport, error) {
	var reports []entity.DiagnosisReport
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("updated_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *diagnosisReportRepository) FindAll(ctx context.Context) ([]entity.DiagnosisReport, error) {
	var reports []entity.DiagnosisReport
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *diagnosisReportRepository) Update(ctx context.Context, report *entity.DiagnosisReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}
