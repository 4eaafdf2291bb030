package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates task with status TODO", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(userID, "Buy milk", "2% if they have it")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, userID, task.UserID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, "2% if they have it", task.Description)
		assert.Equal(t, TaskStatusTodo, task.Status)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(userID, "Buy milk", "")
		require.NoError(t, err)
		assert.Empty(t, task.Description)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(userID, "", "description")
		assert.ErrorIs(t, err, ErrEmptyTitle)
		assert.Nil(t, task)
	})

	t.Run("missing owner is rejected", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(uuid.Nil, "Buy milk", "")
		assert.ErrorIs(t, err, ErrEmptyUserID)
		assert.Nil(t, task)
	})
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Task {
		return &Task{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Title:  "Buy milk",
			Status: TaskStatusInProgress,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{
			name:    "valid task",
			mutate:  func(*Task) {},
			wantErr: nil,
		},
		{
			name:    "nil ID",
			mutate:  func(task *Task) { task.ID = uuid.Nil },
			wantErr: ErrInvalidID,
		},
		{
			name:    "nil user ID",
			mutate:  func(task *Task) { task.UserID = uuid.Nil },
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "empty title",
			mutate:  func(task *Task) { task.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown status",
			mutate:  func(task *Task) { task.Status = TaskStatus("SHIPPED") },
			wantErr: ErrInvalidTaskStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			task := valid()
			tt.mutate(task)

			err := task.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{input: "TODO", want: TaskStatusTodo},
		{input: "IN_PROGRESS", want: TaskStatusInProgress},
		{input: "DONE", want: TaskStatusDone},
		{input: "todo", wantErr: true},
		{input: "All", wantErr: true},
		{input: "", wantErr: true},
		{input: "SHIPPED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTaskStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaskStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
