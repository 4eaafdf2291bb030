package api

import (
	"time"

	"github.com/taskhub/taskhub-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the outward-facing user representation. It is built
// from domain.PublicUser, which cannot carry the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse defines the successful response for signup and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// CreateTaskRequest defines the payload for creating a task.
// There is deliberately no status field: new tasks are always TODO.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1"`
	Description string `json:"description" validate:"omitempty"`
}

// UpdateTaskRequest defines the partial-patch payload for updating a
// task. Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

// TaskResponse is the outward-facing task representation.
type TaskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse wraps the task collection endpoint's result.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// userToResponse converts a domain.PublicUser to a UserResponse.
func userToResponse(user domain.PublicUser) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		UserID:      task.UserID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
