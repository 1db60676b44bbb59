package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
	"github.com/taskgrid/taskgrid-api/internal/platform/logger"
	"github.com/taskgrid/taskgrid-api/internal/service/access"
	"github.com/taskgrid/taskgrid-api/internal/store"
)

// PermissionService manages the discretionary access table. Grant and
// revoke are gated by ownership, not by the view/edit decision: only the
// task's creator may hand out or take away rights, and never on themselves.
type PermissionService interface {
	// Grant gives granteeLogin the given access mode on the task,
	// overwriting any previous mode for the pair (upsert,
	// last-committed-wins). Returns store.ErrTaskNotFound,
	// store.ErrUserNotFound for an unknown grantee, ErrAccessDenied
	// ("not creator" or "self-grant"), or domain.ErrInvalidAccessMode.
	Grant(
		ctx context.Context,
		actorID, taskID uuid.UUID,
		granteeLogin string,
		mode domain.AccessMode,
	) error

	// Revoke removes granteeLogin's permission row on the task. Revoking a
	// permission that does not exist — never granted, or already removed by
	// a cascade — returns store.ErrPermissionNotFound, not a silent no-op.
	Revoke(ctx context.Context, actorID, taskID uuid.UUID, granteeLogin string) error
}

// permissionServiceImpl implements the PermissionService interface.
type permissionServiceImpl struct {
	taskStore store.TaskStore
	userStore store.UserStore
	permStore store.PermissionStore
	logger    *slog.Logger
}

// Ensure permissionServiceImpl implements PermissionService
var _ PermissionService = (*permissionServiceImpl)(nil)

// NewPermissionService creates a new PermissionService.
// If logger is nil, the default logger is used.
func NewPermissionService(
	taskStore store.TaskStore,
	userStore store.UserStore,
	permStore store.PermissionStore,
	logger *slog.Logger,
) (PermissionService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if permStore == nil {
		return nil, fmt.Errorf("permStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &permissionServiceImpl{
		taskStore: taskStore,
		userStore: userStore,
		permStore: permStore,
		logger:    logger.With(slog.String("component", "permission_service")),
	}, nil
}

// Grant implements PermissionService.Grant.
func (s *permissionServiceImpl) Grant(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	granteeLogin string,
	mode domain.AccessMode,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !mode.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAccessMode, mode)
	}

	grantee, err := s.resolveGrant(ctx, actorID, taskID, granteeLogin)
	if err != nil {
		return err
	}

	perm, err := domain.NewPermission(grantee.ID, taskID, mode)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	// The store's upsert is a single atomic statement: concurrent grants
	// to the same pair never produce two rows, the last committed mode wins.
	if err := s.permStore.Upsert(ctx, perm); err != nil {
		log.Error("failed to upsert permission",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()),
			slog.String("grantee", granteeLogin))
		return err
	}

	log.Info("permission granted",
		slog.String("task_id", taskID.String()),
		slog.String("grantee", granteeLogin),
		slog.String("mode", mode.String()))
	return nil
}

// Revoke implements PermissionService.Revoke.
func (s *permissionServiceImpl) Revoke(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	granteeLogin string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	grantee, err := s.resolveGrant(ctx, actorID, taskID, granteeLogin)
	if err != nil {
		return err
	}

	if err := s.permStore.Delete(ctx, grantee.ID, taskID); err != nil {
		return err
	}

	log.Info("permission revoked",
		slog.String("task_id", taskID.String()),
		slog.String("grantee", granteeLogin))
	return nil
}

// resolveGrant performs the checks shared by Grant and Revoke: the task
// must exist, the actor must be its creator, the grantee login must
// resolve to a user, and the owner may never hold or modify a permission
// entry on their own task.
func (s *permissionServiceImpl) resolveGrant(
	ctx context.Context,
	actorID, taskID uuid.UUID,
	granteeLogin string,
) (*domain.User, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsOwnedBy(actorID) {
		return nil, deniedError(access.ReasonNotCreator)
	}

	grantee, err := s.userStore.GetByLogin(ctx, granteeLogin)
	if err != nil {
		return nil, err
	}

	if grantee.ID == actorID {
		return nil, deniedError(access.ReasonSelfGrant)
	}

	return grantee, nil
}
