package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskgrid/taskgrid-api/internal/api"
	apiMiddleware "github.com/taskgrid/taskgrid-api/internal/api/middleware"
	"github.com/taskgrid/taskgrid-api/internal/mocks"
	"github.com/taskgrid/taskgrid-api/internal/service"
	"github.com/taskgrid/taskgrid-api/internal/service/auth"
)

const testJWTSecret = "test-jwt-secret-thirty-two-chars!!"

// testEnv bundles a fully wired router over in-memory stores.
type testEnv struct {
	router http.Handler
	mem    *mocks.MemoryStore
}

// newTestEnv assembles handlers, middleware and services over a shared
// memory store, mirroring the production router wiring.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mem := mocks.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Now)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	verifier := auth.NewBcryptVerifier()

	taskService, err := service.NewTaskService(
		mem.TaskStore(), mem.PermissionStore(), mem.TxRunner(), logger)
	require.NoError(t, err)

	permissionService, err := service.NewPermissionService(
		mem.TaskStore(), mem.UserStore(), mem.PermissionStore(), logger)
	require.NoError(t, err)

	authHandler := api.NewAuthHandler(mem.UserStore(), jwtService, hasher, verifier)
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService, mem.UserStore())
	taskHandler := api.NewTaskHandler(taskService, logger)
	permissionHandler := api.NewPermissionHandler(permissionService, logger)

	r := chi.NewRouter()
	r.Use(apiMiddleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/tasks", taskHandler.CreateTask)
			r.Get("/tasks", taskHandler.ListTasks)
			r.Get("/tasks/{id}", taskHandler.GetTask)
			r.Put("/tasks/{id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)

			r.Post("/permissions", permissionHandler.GrantPermission)
			r.Delete(
				"/permissions/{grantee_login}/{task_id}",
				permissionHandler.RevokePermission,
			)
		})
	})

	return &testEnv{router: r, mem: mem}
}

// do performs a JSON request against the test router. An empty token leaves
// the Authorization header unset.
func (e *testEnv) do(
	t *testing.T,
	method, path, token string,
	body interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the API and returns its auth response.
func (e *testEnv) register(t *testing.T, login string) api.AuthResponse {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"login":       login,
		"password":    "password123",
		"first_name":  "Oliver",
		"second_name": "Smith",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register %s: %s", login, rec.Body.String())

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

// createTask creates a task through the API and returns its representation.
func (e *testEnv) createTask(t *testing.T, token, title, content string) api.TaskResponse {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/tasks", token, map[string]string{
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "create task: %s", rec.Body.String())

	var resp api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// grant issues a permission grant through the API.
func (e *testEnv) grant(
	t *testing.T,
	token string,
	taskID, granteeLogin string,
	mode int,
) *httptest.ResponseRecorder {
	t.Helper()

	return e.do(t, http.MethodPost, "/api/permissions", token, map[string]interface{}{
		"task_id":       taskID,
		"grantee_login": granteeLogin,
		"access_mode":   mode,
	})
}

// taskPath builds the task resource path for the given ID.
func taskPath(id string) string {
	return fmt.Sprintf("/api/tasks/%s", id)
}

// authToken extracts the session token from an auth endpoint response.
func authToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}
