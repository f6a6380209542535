package service

import (
	"context"
	"time"

	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// WorkflowLogService records state-changing actions for compliance review.
// Writes from other components are best-effort: a failed insert is logged and
// never fails the calling operation.
type WorkflowLogService interface {
	Record(ctx context.Context, userID int64, action string)
}

type workflowLogService struct {
	log     *logrus.Logger
	logRepo repository.WorkflowLogRepository
}

func NewWorkflowLogService(log *logrus.Logger, logRepo repository.WorkflowLogRepository) WorkflowLogService {
	return &workflowLogService{
		log:     log,
		logRepo: logRepo,
	}
}

func (s *workflowLogService) Record(ctx context.Context, userID int64, action string) {
	entry := &entity.WorkflowLog{
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Action:    action,
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.log.Warnf("Failed to write workflow log for user %d: %+v", userID, err)
	}
}
