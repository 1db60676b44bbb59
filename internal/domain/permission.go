package domain

import (
	"github.com/google/uuid"
)

// AccessMode is the level of discretionary access a grantee holds on a
// task. The numeric values are part of the persisted schema and the API
// contract (1 = view, 2 = edit).
type AccessMode int

const (
	// AccessView grants read-only access to a task.
	AccessView AccessMode = 1

	// AccessEdit grants read and write access to a task. It never grants
	// deletion, which remains owner-only.
	AccessEdit AccessMode = 2
)

// Valid reports whether the mode is one of the known access levels.
func (m AccessMode) Valid() bool {
	return m == AccessView || m == AccessEdit
}

// String returns a human-readable name for the access mode.
func (m AccessMode) String() string {
	switch m {
	case AccessView:
		return "view"
	case AccessEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Permission is a row in the discretionary access table: the grantee
// UserID holds Mode on TaskID. The granting user is always the task owner
// and is not stored. At most one row exists per (user, task) pair;
// granting again overwrites the mode.
type Permission struct {
	UserID uuid.UUID  `json:"user_id"`
	TaskID uuid.UUID  `json:"task_id"`
	Mode   AccessMode `json:"access_mode"`
}

// NewPermission creates a Permission row for the given grantee and task.
// Returns an error if validation fails.
func NewPermission(userID, taskID uuid.UUID, mode AccessMode) (*Permission, error) {
	perm := &Permission{
		UserID: userID,
		TaskID: taskID,
		Mode:   mode,
	}

	if err := perm.Validate(); err != nil {
		return nil, err
	}

	return perm, nil
}

// Validate checks if the Permission has valid data.
func (p *Permission) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if p.TaskID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if !p.Mode.Valid() {
		return ErrInvalidAccessMode
	}

	return nil
}
