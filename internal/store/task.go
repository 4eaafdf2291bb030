package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every read and mutation is scoped by the owning user: a (taskID,
// userID) pair that matches no row behaves identically whether the task
// does not exist or belongs to someone else.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID, scoped to the owning user.
	// Returns ErrTaskNotFound if no task matches both id and userID.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// ListByUserID retrieves all tasks owned by the user, newest-created
	// first. A nil status returns every task; a non-nil status returns
	// only tasks in that status. The result is unbounded.
	ListByUserID(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)

	// Update persists the given task, scoped by (task.ID, task.UserID)
	// in a single statement. Returns ErrTaskNotFound if no matching row
	// exists, so a concurrent delete cannot silently resurrect a task.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task matching (id, userID).
	// Returns ErrTaskNotFound if no matching row exists.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
