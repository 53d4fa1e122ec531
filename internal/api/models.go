package api

import (
	"github.com/daylist/daylist-api/internal/domain"
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

// CreateTaskRequest defines the payload for adding a task to today's list.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// UpdateTaskRequest defines the payload for editing a task's title.
type UpdateTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// TaskResponse is the JSON shape of a single task.
type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
}

// TaskListResponse is the JSON shape of the rollover-reconciled task list.
type TaskListResponse struct {
	Date  string         `json:"date"`
	Tasks []TaskResponse `json:"tasks"`
}

// NewTaskResponse converts a domain task to its response shape.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Date:      task.Date,
		Completed: task.Completed,
	}
}
