package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, task *domain.Task) error
	GetByIDFn      func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
	ListByUserIDFn func(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)
	UpdateFn       func(ctx context.Context, task *domain.Task) error
	DeleteFn       func(ctx context.Context, id, userID uuid.UUID) error

	// Data for default implementation, keyed by task ID
	Tasks map[uuid.UUID]*domain.Task

	// Mutation counters so tests can assert no underlying write happened
	UpdateCalls int
	DeleteCalls int
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the TaskStore interface.
// The lookup is scoped by owner, matching the real store: a task owned
// by another user reports store.ErrTaskNotFound.
func (m *MockTaskStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id, userID)
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

// ListByUserID implements the TaskStore interface, ordered
// newest-created first like the real store.
func (m *MockTaskStore) ListByUserID(
	ctx context.Context,
	userID uuid.UUID,
	status *domain.TaskStatus,
) ([]domain.Task, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, status)
	}

	tasks := []domain.Task{}
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if status != nil && task.Status != *status {
			continue
		}
		tasks = append(tasks, *task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	m.UpdateCalls++
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}

	existing, exists := m.Tasks[id]
	if !exists || existing.UserID != userID {
		return store.ErrTaskNotFound
	}

	m.DeleteCalls++
	delete(m.Tasks, id)
	return nil
}
