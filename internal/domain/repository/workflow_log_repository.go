package repository

import (
	"context"

	"clinicore/internal/domain/entity"
)

// WorkflowLogRepository is append-only; there is no update or delete.
type WorkflowLogRepository interface {
	Create(ctx context.Context, log *entity.WorkflowLog) error
	FindByID(ctx context.Context, id int64) (*entity.WorkflowLog, error)
	// Find returns entries ordered by recency. A userID of 0 means no user
	// filter.
	Find(ctx context.Context, userID int64, limit int) ([]entity.WorkflowLog, error)
}
