package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	ErrEmptyTaskID  = errors.New("task ID cannot be empty")
	ErrEmptyOwnerID = errors.New("task owner ID cannot be empty")
	ErrEmptyTitle   = errors.New("task title cannot be empty")
)

// Task is a content record owned by exactly one user. The owner is fixed
// at creation and never transferable; title and content are mutable by any
// identity holding edit access, while deletion is owner-only.
type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// Returns an error if validation fails.
func NewTask(ownerID uuid.UUID, title, content string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Content may be empty; the title may not.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	return nil
}

// IsOwnedBy reports whether the given user is the task's creator.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}
