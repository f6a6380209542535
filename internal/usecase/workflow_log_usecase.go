package usecase

import (
	"context"
	"errors"
	"time"

	"clinicore/internal/converter"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrLogNotFound = errors.New("workflow log entry not found")

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

type WorkflowLogUsecase interface {
	RecordLog(ctx context.Context, req *dto.CreateLogRequest) (*dto.LogResponse, error)
	GetLog(ctx context.Context, id int64) (*dto.LogResponse, error)
	GetLogs(ctx context.Context, userID int64, limit int) (*dto.LogListResponse, error)
}

type workflowLogUsecase struct {
	log     *logrus.Logger
	logRepo repository.WorkflowLogRepository
}

func NewWorkflowLogUsecase(log *logrus.Logger, logRepo repository.WorkflowLogRepository) WorkflowLogUsecase {
	return &workflowLogUsecase{
		log:     log,
		logRepo: logRepo,
	}
}

// RecordLog writes an explicit audit entry. Unlike the best-effort records
// emitted by other operations, a failed insert here is surfaced to the
// caller.
func (u *workflowLogUsecase) RecordLog(ctx context.Context, req *dto.CreateLogRequest) (*dto.LogResponse, error) {
	entry := &entity.WorkflowLog{
		UserID:    req.UserID,
		Timestamp: time.Now().UTC(),
		Action:    req.Action,
	}

	if err := u.logRepo.Create(ctx, entry); err != nil {
		u.log.Warnf("Failed to create workflow log entry: %+v", err)
		return nil, err
	}

	return converter.LogToResponse(entry), nil
}

func (u *workflowLogUsecase) GetLog(ctx context.Context, id int64) (*dto.LogResponse, error) {
	entry, err := u.logRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find workflow log entry %d: %+v", id, err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrLogNotFound
	}
	return converter.LogToResponse(entry), nil
}

// GetLogs returns the most recent entries, newest first. A userID of 0 means
// no user filter. The limit defaults to 100 and is capped at 500.
func (u *workflowLogUsecase) GetLogs(ctx context.Context, userID int64, limit int) (*dto.LogListResponse, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	logs, err := u.logRepo.Find(ctx, userID, limit)
	if err != nil {
		u.log.Warnf("Failed to list workflow log entries: %+v", err)
		return nil, err
	}

	return &dto.LogListResponse{
		Logs:  converter.LogsToResponses(logs),
		Total: len(logs),
	}, nil
}
