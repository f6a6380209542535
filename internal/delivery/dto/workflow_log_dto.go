package dto

import "time"

// Request DTOs

type CreateLogRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Action string `json:"action" validate:"required"`
}

// Response DTOs

type LogResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
}

type LogListResponse struct {
	Logs  []LogResponse `json:"logs"`
	Total int           `json:"total"`
}
