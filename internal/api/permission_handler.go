package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskgrid/taskgrid-api/internal/api/shared"
	"github.com/taskgrid/taskgrid-api/internal/domain"
	"github.com/taskgrid/taskgrid-api/internal/platform/logger"
	"github.com/taskgrid/taskgrid-api/internal/service"
)

// PermissionHandler handles permission-related HTTP requests.
// Grants and revocations are reserved for the task's creator, and the
// creator may never target themselves.
type PermissionHandler struct {
	permissionService service.PermissionService
	logger            *slog.Logger
}

// NewPermissionHandler creates a new PermissionHandler.
func NewPermissionHandler(
	permissionService service.PermissionService,
	logger *slog.Logger,
) *PermissionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PermissionHandler")
	}

	return &PermissionHandler{
		permissionService: permissionService,
		logger:            logger.With(slog.String("component", "permission_handler")),
	}
}

// GrantPermission handles POST /permissions requests.
// Repeating a grant for the same user and task replaces the stored mode.
func (h *PermissionHandler) GrantPermission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req GrantPermissionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	mode := domain.AccessMode(req.AccessMode)
	err := h.permissionService.Grant(r.Context(), userID, req.TaskID, req.GranteeLogin, mode)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to grant permission")
		return
	}

	log.Debug("permission granted",
		slog.String("task_id", req.TaskID.String()),
		slog.String("grantee", req.GranteeLogin),
		slog.Int("access_mode", req.AccessMode))
	shared.RespondWithJSON(w, r, http.StatusCreated, PermissionResponse{
		TaskID:       req.TaskID,
		GranteeLogin: req.GranteeLogin,
		AccessMode:   req.AccessMode,
	})
}

// RevokePermission handles DELETE /permissions/{grantee_login}/{task_id}
// requests. Revoking a permission that was never granted is reported as
// not found, not silently absorbed.
func (h *PermissionHandler) RevokePermission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "task_id", log)
	if !ok {
		return
	}

	granteeLogin := chi.URLParam(r, "grantee_login")
	if granteeLogin == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Grantee login is required")
		return
	}

	if err := h.permissionService.Revoke(r.Context(), userID, taskID, granteeLogin); err != nil {
		HandleAPIError(w, r, err, "Failed to revoke permission")
		return
	}

	log.Debug("permission revoked",
		slog.String("task_id", taskID.String()),
		slog.String("grantee", granteeLogin))
	w.WriteHeader(http.StatusNoContent)
}
