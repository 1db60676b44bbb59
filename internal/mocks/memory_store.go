package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/taskgrid/taskgrid-api/internal/domain"
	"github.com/taskgrid/taskgrid-api/internal/store"
)

// permKey identifies a permission row by its (grantee, task) primary key.
type permKey struct {
	userID uuid.UUID
	taskID uuid.UUID
}

// MemoryStore holds users, tasks, and permissions in maps behind a single
// mutex. The three store views share state so referential behavior
// (cascade deletion) matches the real schema.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
	tasks map[uuid.UUID]domain.Task
	perms map[permKey]domain.Permission
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[uuid.UUID]domain.User),
		tasks: make(map[uuid.UUID]domain.Task),
		perms: make(map[permKey]domain.Permission),
	}
}

// UserStore returns the store.UserStore view of the memory store.
func (m *MemoryStore) UserStore() store.UserStore { return &memoryUserStore{m: m} }

// TaskStore returns the store.TaskStore view of the memory store.
func (m *MemoryStore) TaskStore() store.TaskStore { return &memoryTaskStore{m: m} }

// PermissionStore returns the store.PermissionStore view of the memory store.
func (m *MemoryStore) PermissionStore() store.PermissionStore { return &memoryPermStore{m: m} }

// TxRunner returns a pass-through runner: the memory store applies each
// operation under its own lock, so functions run directly with a nil *sql.Tx
// and the WithTx methods below ignore it.
func (m *MemoryStore) TxRunner() store.TxRunner { return passThroughTxRunner{} }

// PermissionCount reports the number of permission rows. Tests use it to
// assert that denied grants leave the table unchanged.
func (m *MemoryStore) PermissionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.perms)
}

type passThroughTxRunner struct{}

func (passThroughTxRunner) RunInTx(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

// --- UserStore ---

type memoryUserStore struct {
	m *MemoryStore
}

var _ store.UserStore = (*memoryUserStore)(nil)

func (s *memoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, existing := range s.m.users {
		if existing.Login == user.Login {
			return store.ErrLoginExists
		}
	}

	s.m.users[user.ID] = *user
	return nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	user, ok := s.m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

func (s *memoryUserStore) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, user := range s.m.users {
		if user.Login == login {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memoryUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.m.users, id)

	// Cascade: remove permission rows where the user is the grantee
	for key := range s.m.perms {
		if key.userID == id {
			delete(s.m.perms, key)
		}
	}
	return nil
}

func (s *memoryUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

// --- TaskStore ---

type memoryTaskStore struct {
	m *MemoryStore
}

var _ store.TaskStore = (*memoryTaskStore)(nil)

func (s *memoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.users[task.UserID]; !ok {
		return store.ErrInvalidEntity
	}

	s.m.tasks[task.ID] = *task
	return nil
}

func (s *memoryTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	task, ok := s.m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

func (s *memoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	s.m.tasks[task.ID] = *task
	return nil
}

func (s *memoryTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.m.tasks, id)

	// Cascade: remove permission rows referencing the task
	for key := range s.m.perms {
		if key.taskID == id {
			delete(s.m.perms, key)
		}
	}
	return nil
}

func (s *memoryTaskStore) ListVisibleTo(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	var tasks []*domain.Task
	for key := range s.m.perms {
		if key.userID != userID {
			continue
		}
		if task, ok := s.m.tasks[key.taskID]; ok {
			t := task
			tasks = append(tasks, &t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (s *memoryTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return s }

// --- PermissionStore ---

type memoryPermStore struct {
	m *MemoryStore
}

var _ store.PermissionStore = (*memoryPermStore)(nil)

func (s *memoryPermStore) Upsert(ctx context.Context, perm *domain.Permission) error {
	if err := perm.Validate(); err != nil {
		return err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.users[perm.UserID]; !ok {
		return store.ErrInvalidEntity
	}
	if _, ok := s.m.tasks[perm.TaskID]; !ok {
		return store.ErrInvalidEntity
	}

	// Create-or-overwrite on the pair key; the map guarantees at most one
	// row per (grantee, task) just like the composite primary key does
	s.m.perms[permKey{userID: perm.UserID, taskID: perm.TaskID}] = *perm
	return nil
}

func (s *memoryPermStore) Get(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Permission, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	perm, ok := s.m.perms[permKey{userID: userID, taskID: taskID}]
	if !ok {
		return nil, store.ErrPermissionNotFound
	}
	return &perm, nil
}

func (s *memoryPermStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	key := permKey{userID: userID, taskID: taskID}
	if _, ok := s.m.perms[key]; !ok {
		return store.ErrPermissionNotFound
	}
	delete(s.m.perms, key)
	return nil
}

func (s *memoryPermStore) WithTx(tx *sql.Tx) store.PermissionStore { return s }
