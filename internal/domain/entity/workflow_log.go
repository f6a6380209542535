package entity

import "time"

// WorkflowLog is an append-only compliance record. Entries are never updated
// or deleted. UserID is a weak reference into the identity id space.
type WorkflowLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	Action    string    `gorm:"type:text;not null" json:"action"`
}

func (WorkflowLog) TableName() string {
	return "workflow_logs"
}
