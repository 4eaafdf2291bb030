package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/mocks"
	"github.com/taskhub/taskhub-api/internal/service"
)

// newTaskTestRouter mounts the task routes behind a middleware that
// injects the given user ID, standing in for the auth middleware.
func newTaskTestRouter(userID uuid.UUID) (chi.Router, *mocks.MockTaskStore) {
	taskStore := mocks.NewMockTaskStore()
	handler := NewTaskHandler(service.NewTaskService(taskStore, nil))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})

	return r, taskStore
}

func doRequest(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func seedStoredTask(taskStore *mocks.MockTaskStore, userID uuid.UUID, title string, status domain.TaskStatus, createdAt time.Time) *domain.Task {
	task := &domain.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	taskStore.Tasks[task.ID] = task
	return task
}

func TestTaskHandlerCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates task with status TODO", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodPost, "/api/tasks",
			`{"title":"Buy milk","description":"2%"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Buy milk", resp.Title)
		assert.Equal(t, "2%", resp.Description)
		assert.Equal(t, "TODO", resp.Status)
		assert.Equal(t, userID.String(), resp.UserID)
	})

	t.Run("client-supplied status is ignored", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodPost, "/api/tasks",
			`{"title":"Buy milk","status":"DONE"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "TODO", resp.Status)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodPost, "/api/tasks", `{"description":"no title"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodPost, "/api/tasks", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTaskHandlerList(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	seed := func(taskStore *mocks.MockTaskStore) {
		seedStoredTask(taskStore, userID, "done task", domain.TaskStatusDone, base)
		seedStoredTask(taskStore, userID, "todo task", domain.TaskStatusTodo, base.Add(time.Minute))
		seedStoredTask(taskStore, uuid.New(), "foreign", domain.TaskStatusTodo, base.Add(2*time.Minute))
	}

	t.Run("no filter returns own tasks newest first", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		seed(taskStore)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Tasks, 2)
		assert.Equal(t, "todo task", resp.Tasks[0].Title)
		assert.Equal(t, "done task", resp.Tasks[1].Title)
	})

	t.Run("All filter behaves like no filter", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		seed(taskStore)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks?status=All", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Tasks, 2)
	})

	t.Run("status filter narrows the result", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		seed(taskStore)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks?status=DONE", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "done task", resp.Tasks[0].Title)
	})

	t.Run("unknown status value returns 400", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		seed(taskStore)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks?status=SHIPPED", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid task status")
	})

	t.Run("empty result is an empty array, not null", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"tasks":[]`)
	})
}

func TestTaskHandlerGet(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns own task", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, userID, "mine", domain.TaskStatusTodo, time.Now().UTC())

		rr := doRequest(t, router, http.MethodGet, "/api/tasks/"+task.ID.String(), "")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, task.ID.String(), resp.ID)
	})

	t.Run("another user's task returns 404", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, uuid.New(), "foreign", domain.TaskStatusTodo, time.Now().UTC())

		rr := doRequest(t, router, http.MethodGet, "/api/tasks/"+task.ID.String(), "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task not found")
	})

	t.Run("unknown ID returns 404", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed ID returns 400", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodGet, "/api/tasks/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestTaskHandlerUpdate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("partial patch changes only the sent fields", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, userID, "original", domain.TaskStatusTodo, time.Now().UTC())
		task.Description = "keep me"

		rr := doRequest(t, router, http.MethodPut, "/api/tasks/"+task.ID.String(),
			`{"status":"IN_PROGRESS"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "original", resp.Title)
		assert.Equal(t, "keep me", resp.Description)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
	})

	t.Run("invalid status value returns 400", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, userID, "original", domain.TaskStatusTodo, time.Now().UTC())

		rr := doRequest(t, router, http.MethodPut, "/api/tasks/"+task.ID.String(),
			`{"status":"SHIPPED"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("another user's task returns 404 and stays unchanged", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, uuid.New(), "foreign", domain.TaskStatusTodo, time.Now().UTC())

		rr := doRequest(t, router, http.MethodPut, "/api/tasks/"+task.ID.String(),
			`{"title":"hijacked"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "foreign", taskStore.Tasks[task.ID].Title)
	})

	t.Run("unknown ID returns 404", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodPut, "/api/tasks/"+uuid.NewString(),
			`{"title":"ghost"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTaskHandlerDelete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns 204 with empty body", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, userID, "doomed", domain.TaskStatusTodo, time.Now().UTC())

		rr := doRequest(t, router, http.MethodDelete, "/api/tasks/"+task.ID.String(), "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.NotContains(t, taskStore.Tasks, task.ID)
	})

	t.Run("another user's task returns 404 and survives", func(t *testing.T) {
		t.Parallel()
		router, taskStore := newTaskTestRouter(userID)
		task := seedStoredTask(taskStore, uuid.New(), "safe", domain.TaskStatusTodo, time.Now().UTC())

		rr := doRequest(t, router, http.MethodDelete, "/api/tasks/"+task.ID.String(), "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, taskStore.Tasks, task.ID)
	})

	t.Run("unknown ID returns 404", func(t *testing.T) {
		t.Parallel()
		router, _ := newTaskTestRouter(userID)

		rr := doRequest(t, router, http.MethodDelete, "/api/tasks/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
