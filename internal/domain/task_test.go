package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()

	task, err := NewTask(ownerID, "some_title", "some_content")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != ownerID {
		t.Errorf("Expected owner %s, got %s", ownerID, task.UserID)
	}

	if task.Title != "some_title" || task.Content != "some_content" {
		t.Errorf("Unexpected title/content: %q %q", task.Title, task.Content)
	}

	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	// Content may be empty
	if _, err := NewTask(ownerID, "title", ""); err != nil {
		t.Errorf("Expected empty content to be allowed, got %v", err)
	}

	// Title may not
	if _, err := NewTask(ownerID, "", "content"); err != ErrEmptyTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTitle, err)
	}

	// Owner is required
	if _, err := NewTask(uuid.Nil, "title", "content"); err != ErrEmptyOwnerID {
		t.Errorf("Expected error %v, got %v", ErrEmptyOwnerID, err)
	}
}

func TestTaskIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	task, err := NewTask(ownerID, "title", "content")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !task.IsOwnedBy(ownerID) {
		t.Error("Expected task to be owned by its creator")
	}

	if task.IsOwnedBy(uuid.New()) {
		t.Error("Expected task not to be owned by a different user")
	}
}

func TestAccessMode(t *testing.T) {
	if !AccessView.Valid() || !AccessEdit.Valid() {
		t.Error("Expected view and edit modes to be valid")
	}

	if AccessMode(0).Valid() || AccessMode(3).Valid() {
		t.Error("Expected out-of-range modes to be invalid")
	}

	if AccessView.String() != "view" || AccessEdit.String() != "edit" {
		t.Errorf("Unexpected mode names: %s %s", AccessView, AccessEdit)
	}
}

func TestNewPermission(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	perm, err := NewPermission(userID, taskID, AccessView)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if perm.UserID != userID || perm.TaskID != taskID || perm.Mode != AccessView {
		t.Errorf("Unexpected permission fields: %+v", perm)
	}

	if _, err := NewPermission(uuid.Nil, taskID, AccessView); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	if _, err := NewPermission(userID, uuid.Nil, AccessView); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	if _, err := NewPermission(userID, taskID, AccessMode(7)); err != ErrInvalidAccessMode {
		t.Errorf("Expected error %v, got %v", ErrInvalidAccessMode, err)
	}
}
