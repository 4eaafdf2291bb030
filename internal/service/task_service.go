package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/store"
)

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskService provides the task CRUD use cases, all scoped to the
// requesting user. Operations on tasks that do not exist or belong to
// another user fail with store.ErrTaskNotFound; the two cases are
// indistinguishable.
type TaskService interface {
	// Create persists a new task owned by userID. The status is always
	// TODO regardless of caller input.
	Create(ctx context.Context, userID uuid.UUID, title, description string) (*domain.Task, error)

	// List returns the user's tasks, newest-created first. A nil status
	// returns all of them; a non-nil status only the matching ones.
	List(ctx context.Context, userID uuid.UUID, status *domain.TaskStatus) ([]domain.Task, error)

	// Get returns the task only if it belongs to userID.
	Get(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error)

	// Update re-fetches the task by (taskID, userID) to confirm
	// ownership, applies the partial patch, and saves it.
	Update(ctx context.Context, taskID, userID uuid.UUID, patch TaskPatch) (*domain.Task, error)

	// Delete removes the task after the same ownership re-check.
	Delete(ctx context.Context, taskID, userID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// Ensure TaskServiceImpl implements TaskService
var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// Create persists a new task with status forced to TODO.
func (s *TaskServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, description)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// List returns the user's tasks filtered by optional status.
func (s *TaskServiceImpl) List(
	ctx context.Context,
	userID uuid.UUID,
	status *domain.TaskStatus,
) ([]domain.Task, error) {
	tasks, err := s.taskStore.ListByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Get returns the task scoped by (taskID, userID).
func (s *TaskServiceImpl) Get(ctx context.Context, taskID, userID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// Update applies a partial patch to the task after re-fetching it to
// confirm ownership. The re-fetch and the save are separate statements:
// a concurrent delete in between is reported as not-found by the scoped
// store update rather than silently recreating the row.
func (s *TaskServiceImpl) Update(
	ctx context.Context,
	taskID, userID uuid.UUID,
	patch TaskPatch,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get task for update", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("task updated", "task_id", taskID, "user_id", userID)
	return task, nil
}

// Delete removes the task after confirming ownership via the same
// scoped lookup used by Get.
func (s *TaskServiceImpl) Delete(ctx context.Context, taskID, userID uuid.UUID) error {
	if _, err := s.taskStore.GetByID(ctx, taskID, userID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		s.logger.Error("failed to get task for delete", "error", err, "task_id", taskID)
		return fmt.Errorf("failed to retrieve task: %w", err)
	}

	if err := s.taskStore.Delete(ctx, taskID, userID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		s.logger.Error("failed to delete task", "error", err, "task_id", taskID)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
