package dto

import "time"

type CreateItemRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateItemRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type ItemResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
