package usecase

import "task-manager-backend/internal/task/domain"

// TaskUsecase defines the interface for task business logic. Every
// operation is scoped to the calling user's id.
type TaskUsecase interface {
	// Create validates and persists a new task for the owner
	Create(userID string, input CreateTaskInput) (*domain.Task, error)

	// List returns a filtered, sorted, paginated page of the owner's tasks
	List(userID string, opts ListOptions) (*TaskPage, error)

	// GetByID retrieves an owned task by id
	GetByID(userID, taskID string) (*domain.Task, error)

	// Update applies the whitelisted fields of updates to an owned task
	Update(userID, taskID string, updates UpdateTaskInput) (*domain.Task, error)

	// Delete removes an owned task by id
	Delete(userID, taskID string) error
}

// CreateTaskInput is the payload for creating a task. Dates arrive as
// strings, RFC 3339 or YYYY-MM-DD.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateTaskInput holds the only fields an update may touch. Unknown
// fields in the request body are dropped at decode time and never reach
// the store.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// ListOptions are the raw query options as received from the client.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Status    string
	Priority  string
	DueBefore string
	DueAfter  string
	Search    string
}

// Pagination describes the page that was returned.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TaskPage is one page of a user's tasks.
type TaskPage struct {
	Tasks      []*domain.Task `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}
