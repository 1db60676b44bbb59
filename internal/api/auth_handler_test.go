package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgrid/taskgrid-api/internal/api"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	t.Run("creates user and returns token", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"login":       "first_user",
			"password":    "password123",
			"first_name":  "Oliver",
			"second_name": "Smith",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("duplicate login conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"login":       "first_user",
			"password":    "other_password",
			"first_name":  "Other",
			"second_name": "Person",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"login":    "no_names",
			"password": "password123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := env.do(t, http.MethodPost, "/api/auth/register", "", "not an object")
		assert.Equal(t, http.StatusBadRequest, req.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.register(t, "first_user")

	t.Run("valid credentials", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"login":    "first_user",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		// The issued token opens protected routes
		tasks := env.do(t, http.MethodGet, "/api/tasks", resp.Token, nil)
		assert.Equal(t, http.StatusOK, tasks.Code)
	})

	t.Run("unknown login is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"login":    "nobody",
			"password": "password123",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"login":    "first_user",
			"password": "wrong_password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticationRequired(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp := env.register(t, "first_user")

	t.Run("missing token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/tasks", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/tasks", "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token of a deleted user", func(t *testing.T) {
		require.NoError(t, env.mem.UserStore().Delete(context.Background(), resp.UserID))

		rec := env.do(t, http.MethodGet, "/api/tasks", resp.Token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
