package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskgrid/taskgrid-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Login      string `json:"login"       validate:"required,max=255"`
	Password   string `json:"password"    validate:"required,min=1,max=72"`
	FirstName  string `json:"first_name"  validate:"required,max=255"`
	SecondName string `json:"second_name" validate:"required,max=255"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the session token used for API authorization
	Token string `json:"token"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
type UpdateTaskRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content"`
}

// TaskResponse defines the representation of a task returned to clients.
type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// taskToResponse converts a domain task to its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Content:   task.Content,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of domain tasks to API representations.
// Returns an empty slice, not nil, so an empty list serializes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// GrantPermissionRequest defines the payload for the permission grant
// endpoint. AccessMode uses the stored numeric encoding: 1 grants view,
// 2 grants edit.
type GrantPermissionRequest struct {
	TaskID       uuid.UUID `json:"task_id"       validate:"required"`
	GranteeLogin string    `json:"grantee_login" validate:"required"`
	AccessMode   int       `json:"access_mode"   validate:"required,oneof=1 2"`
}

// PermissionResponse defines the representation of a granted permission.
type PermissionResponse struct {
	TaskID       uuid.UUID `json:"task_id"`
	GranteeLogin string    `json:"grantee_login"`
	AccessMode   int       `json:"access_mode"`
}
