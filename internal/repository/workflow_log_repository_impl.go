package repository

import (
	"context"
	"errors"

	"clinicore/internal/domain/entity"
	domainRepo "clinicore/internal/domain/repository"

	"gorm.io/gorm"
)

type workflowLogRepository struct {
	db *gorm.DB
}

func NewWorkflowLogRepository(db *gorm.DB) domainRepo.WorkflowLogRepository {
	return &workflowLogRepository{db: db}
}

func (r *workflowLogRepository) Create(ctx context.Context, log *entity.WorkflowLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *workflowLogRepository) FindByID(ctx context.Context, id int64) (*entity.WorkflowLog, error) {
	var log entity.WorkflowLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *workflowLogRepository) Find(ctx context.Context, userID int64, limit int) ([]entity.WorkflowLog, error) {
	var logs []entity.WorkflowLog
	query := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
