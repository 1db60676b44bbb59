// Package service provides application-level services for managing tasks
// and their discretionary permissions.
package service

import (
	"errors"
	"fmt"

	"github.com/taskgrid/taskgrid-api/internal/service/access"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for specific conditions; the API layer maps
// them to HTTP status codes.
var (
	// ErrAccessDenied indicates an authenticated actor is not authorized to
	// perform the operation. The wrapped message carries the denial reason
	// ("not creator", "self-grant", ...). API layer maps this to HTTP 403.
	ErrAccessDenied = errors.New("access denied")
)

// deniedError wraps ErrAccessDenied with the decision's reason.
func deniedError(reason string) error {
	return fmt.Errorf("%w: %s", ErrAccessDenied, reason)
}

// decisionError converts a negative access decision into a service error.
// Calling it with an allowed decision is a programming error.
func decisionError(d access.Decision) error {
	if d.Allowed {
		return nil
	}
	return deniedError(d.Reason)
}
