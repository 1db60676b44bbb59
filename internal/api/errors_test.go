package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/taskgrid/taskgrid-api/internal/api"
	"github.com/taskgrid/taskgrid-api/internal/service"
	"github.com/taskgrid/taskgrid-api/internal/service/auth"
	"github.com/taskgrid/taskgrid-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unknown user", auth.ErrUnknownUser, http.StatusUnauthorized},
		{"access denied", service.ErrAccessDenied, http.StatusForbidden},
		{"wrapped access denied", fmt.Errorf("%w: no permission", service.ErrAccessDenied), http.StatusForbidden},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"permission not found", store.ErrPermissionNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"login exists", store.ErrLoginExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	// Internal details never surface in the safe message
	internal := fmt.Errorf(
		"%w: pq: relation tasks violates fkey", store.ErrTaskNotFound)
	msg := api.GetSafeErrorMessage(internal)
	assert.Equal(t, "Task not found", msg)

	assert.Equal(t, "Access denied", api.GetSafeErrorMessage(service.ErrAccessDenied))
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(errors.New("raw")))
	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type loginRequest struct {
		Login string `validate:"required"`
	}

	err := validator.New().Struct(loginRequest{})
	msg := api.SanitizeValidationError(err)
	assert.Equal(t, "Invalid Login: required field", msg)

	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("other")))
}
