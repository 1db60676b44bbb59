// Package access implements the authorization decision for task operations.
//
// The decision is a pure function over an actor, a loaded task, and the
// actor's permission row (if any): ownership bypasses the permission table
// entirely, and the table grants at most view or edit, never delete.
// Callers load the rows and surface NotFound themselves; Decide only ever
// answers allowed-or-denied.
package access

import (
	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
)

// Requirement is the access level an operation demands.
type Requirement int

const (
	// RequireView is satisfied by ownership or any permission row.
	RequireView Requirement = iota

	// RequireEdit is satisfied by ownership or an edit-level permission row.
	RequireEdit

	// RequireOwner is satisfied by ownership only. No permission row,
	// including edit, ever satisfies it; task deletion demands it.
	RequireOwner
)

// String returns a human-readable name for the requirement.
func (r Requirement) String() string {
	switch r {
	case RequireView:
		return "view"
	case RequireEdit:
		return "edit"
	case RequireOwner:
		return "owner"
	default:
		return "unknown"
	}
}

// Denial reasons surfaced to callers and, eventually, API clients.
const (
	ReasonNotCreator   = "not creator"
	ReasonSelfGrant    = "self-grant"
	ReasonNoPermission = "no permission"
	ReasonViewOnly     = "view-only permission"
)

// Decision is the closed outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string // set only when denied
}

// Allowed is the positive decision.
var Allowed = Decision{Allowed: true}

// Denied creates a negative decision carrying the given reason.
func Denied(reason string) Decision {
	return Decision{Reason: reason}
}

// Decide evaluates whether the actor may perform an operation requiring the
// given level on the task. perm is the actor's permission row on the task,
// or nil when none exists; a row for a different (user, task) pair is
// ignored as if absent.
//
// The owner is allowed unconditionally for every requirement, regardless of
// the permission table's contents. Non-owners are decided purely by the
// table: any row satisfies view, only an edit row satisfies edit, and
// nothing satisfies owner-level requirements.
func Decide(
	actorID uuid.UUID,
	task *domain.Task,
	perm *domain.Permission,
	required Requirement,
) Decision {
	if task.IsOwnedBy(actorID) {
		return Allowed
	}

	// Guard against a caller passing a row from the wrong pair
	if perm != nil && (perm.UserID != actorID || perm.TaskID != task.ID) {
		perm = nil
	}

	switch required {
	case RequireOwner:
		return Denied(ReasonNotCreator)
	case RequireEdit:
		if perm == nil {
			return Denied(ReasonNoPermission)
		}
		if perm.Mode == domain.AccessEdit {
			return Allowed
		}
		return Denied(ReasonViewOnly)
	case RequireView:
		if perm == nil {
			return Denied(ReasonNoPermission)
		}
		return Allowed
	default:
		return Denied(ReasonNoPermission)
	}
}
