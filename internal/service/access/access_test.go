package access_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskgrid/taskgrid-api/internal/domain"
	"github.com/taskgrid/taskgrid-api/internal/service/access"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	strangerID := uuid.New()

	task, err := domain.NewTask(ownerID, "some_title", "some_content")
	require.NoError(t, err)

	viewPerm := &domain.Permission{UserID: strangerID, TaskID: task.ID, Mode: domain.AccessView}
	editPerm := &domain.Permission{UserID: strangerID, TaskID: task.ID, Mode: domain.AccessEdit}

	tests := []struct {
		name       string
		actorID    uuid.UUID
		perm       *domain.Permission
		required   access.Requirement
		allowed    bool
		wantReason string
	}{
		{
			name:     "owner allowed view without any row",
			actorID:  ownerID,
			required: access.RequireView,
			allowed:  true,
		},
		{
			name:     "owner allowed edit without any row",
			actorID:  ownerID,
			required: access.RequireEdit,
			allowed:  true,
		},
		{
			name:     "owner allowed owner-level without any row",
			actorID:  ownerID,
			required: access.RequireOwner,
			allowed:  true,
		},
		{
			name:       "stranger denied view with no row",
			actorID:    strangerID,
			required:   access.RequireView,
			allowed:    false,
			wantReason: access.ReasonNoPermission,
		},
		{
			name:     "view row satisfies view",
			actorID:  strangerID,
			perm:     viewPerm,
			required: access.RequireView,
			allowed:  true,
		},
		{
			name:       "view row does not satisfy edit",
			actorID:    strangerID,
			perm:       viewPerm,
			required:   access.RequireEdit,
			allowed:    false,
			wantReason: access.ReasonViewOnly,
		},
		{
			name:     "edit row satisfies view",
			actorID:  strangerID,
			perm:     editPerm,
			required: access.RequireView,
			allowed:  true,
		},
		{
			name:     "edit row satisfies edit",
			actorID:  strangerID,
			perm:     editPerm,
			required: access.RequireEdit,
			allowed:  true,
		},
		{
			name:       "edit row never satisfies owner-level",
			actorID:    strangerID,
			perm:       editPerm,
			required:   access.RequireOwner,
			allowed:    false,
			wantReason: access.ReasonNotCreator,
		},
		{
			name:    "row for a different task is ignored",
			actorID: strangerID,
			perm: &domain.Permission{
				UserID: strangerID,
				TaskID: uuid.New(),
				Mode:   domain.AccessEdit,
			},
			required:   access.RequireEdit,
			allowed:    false,
			wantReason: access.ReasonNoPermission,
		},
		{
			name:    "row for a different user is ignored",
			actorID: strangerID,
			perm: &domain.Permission{
				UserID: uuid.New(),
				TaskID: task.ID,
				Mode:   domain.AccessEdit,
			},
			required:   access.RequireEdit,
			allowed:    false,
			wantReason: access.ReasonNoPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := access.Decide(tt.actorID, task, tt.perm, tt.required)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.wantReason, d.Reason)
			}
		})
	}
}

func TestDecideOwnerIgnoresTableContents(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	task, err := domain.NewTask(ownerID, "title", "content")
	require.NoError(t, err)

	// Even a view-only self-row (which grant rejects but creation stores as
	// edit) must not downgrade the owner's implicit rights
	selfRow := &domain.Permission{UserID: ownerID, TaskID: task.ID, Mode: domain.AccessView}

	for _, req := range []access.Requirement{
		access.RequireView,
		access.RequireEdit,
		access.RequireOwner,
	} {
		d := access.Decide(ownerID, task, selfRow, req)
		assert.True(t, d.Allowed, "owner must be allowed for %s", req)
	}
}

func TestRequirementString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "view", access.RequireView.String())
	assert.Equal(t, "edit", access.RequireEdit.String())
	assert.Equal(t, "owner", access.RequireOwner.String())
}
