package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
	"github.com/taskgrid/taskgrid-api/internal/platform/logger"
	"github.com/taskgrid/taskgrid-api/internal/service/access"
	"github.com/taskgrid/taskgrid-api/internal/store"
)

// TaskService provides task operations with authorization enforced on
// every one of them. The store performs no checks of its own; this service
// is the single place where load -> decide -> mutate happens.
type TaskService interface {
	// CreateTask creates a task owned by ownerID. The owner's redundant
	// self-permission row (edit) is stored in the same transaction, which
	// keeps visibility queries a single join on the permission table.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title, content string) (*domain.Task, error)

	// GetTask retrieves a task the actor may view (ownership or any
	// permission row). Returns store.ErrTaskNotFound or ErrAccessDenied.
	GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTask replaces the task's title and content. Requires ownership
	// or an edit-level permission row.
	UpdateTask(
		ctx context.Context,
		actorID, taskID uuid.UUID,
		title, content string,
	) (*domain.Task, error)

	// DeleteTask removes the task and, atomically, every permission row
	// referencing it. Owner-only: no permission row, including edit,
	// satisfies deletion.
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error

	// ListVisibleTasks retrieves all tasks the actor holds a permission row
	// on, which includes owned tasks via the stored self-permission.
	ListVisibleTasks(ctx context.Context, actorID uuid.UUID) ([]*domain.Task, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	permStore store.PermissionStore
	txRunner  store.TxRunner
	logger    *slog.Logger
}

// Ensure taskServiceImpl implements TaskService
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
// If logger is nil, the default logger is used.
func NewTaskService(
	taskStore store.TaskStore,
	permStore store.PermissionStore,
	txRunner store.TxRunner,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if permStore == nil {
		return nil, fmt.Errorf("permStore cannot be nil")
	}
	if txRunner == nil {
		return nil, fmt.Errorf("txRunner cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		permStore: permStore,
		txRunner:  txRunner,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title, content string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(ownerID, title, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	// The self-permission row is logically redundant with the ownership
	// bypass but is part of the stored contract; both inserts commit or
	// neither does.
	selfPerm, err := domain.NewPermission(ownerID, task.ID, domain.AccessEdit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	err = s.txRunner.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.taskStore.WithTx(tx).Create(ctx, task); err != nil {
			return err
		}
		return s.permStore.WithTx(tx).Upsert(ctx, selfPerm)
	})
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(
	ctx context.Context,
	actorID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.authorize(ctx, actorID, taskID, access.RequireView)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	title, content string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.authorize(ctx, actorID, taskID, access.RequireEdit)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Content = content
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, err
	}

	log.Info("task updated",
		slog.String("task_id", taskID.String()),
		slog.String("actor_id", actorID.String()))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authorize(ctx, actorID, taskID, access.RequireOwner); err != nil {
		return err
	}

	// The store removes the task and its permission rows in one atomic
	// unit; no dangling rows are observable to concurrent readers.
	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return err
	}

	log.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("actor_id", actorID.String()))
	return nil
}

// ListVisibleTasks implements TaskService.ListVisibleTasks.
func (s *taskServiceImpl) ListVisibleTasks(
	ctx context.Context,
	actorID uuid.UUID,
) ([]*domain.Task, error) {
	return s.taskStore.ListVisibleTo(ctx, actorID)
}

// authorize loads the task and evaluates the access decision for it.
// Returns the loaded task on an allowed decision; store.ErrTaskNotFound if
// the task is absent (distinct from a denial, surfaced as 404 vs 403); or
// ErrAccessDenied carrying the decision's reason.
//
// The check-then-act sequence here is not serialized against a concurrent
// revoke; that race is accepted. Row-level invariants are guarded by the
// store's transactional upserts and cascading deletes instead.
func (s *taskServiceImpl) authorize(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	required access.Requirement,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// The owner needs no table lookup
	var perm *domain.Permission
	if !task.IsOwnedBy(actorID) {
		perm, err = s.permStore.Get(ctx, actorID, taskID)
		if err != nil && !errors.Is(err, store.ErrPermissionNotFound) {
			return nil, err
		}
	}

	if d := access.Decide(actorID, task, perm, required); !d.Allowed {
		log.Debug("access denied",
			slog.String("actor_id", actorID.String()),
			slog.String("task_id", taskID.String()),
			slog.String("required", required.String()),
			slog.String("reason", d.Reason))
		return nil, decisionError(d)
	}

	return task, nil
}
