package repository

import (
	"time"

	"task-manager-backend/internal/task/domain"
)

// ListQuery captures the filter, sort and pagination options for
// listing a user's tasks. Zero values mean "not supplied".
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Status    domain.Status
	Priority  domain.Priority
	DueBefore *time.Time // inclusive
	DueAfter  *time.Time // inclusive
	Search    string     // case-insensitive substring on title
}

// TaskRepository defines the interface for task data access. Every
// lookup and mutation is scoped to the owning user in a single combined
// query, so "absent" and "owned by someone else" are indistinguishable.
type TaskRepository interface {
	// Create persists a new task
	Create(task *domain.Task) error

	// FindOwned finds a task by id and owner, (nil, nil) when no match
	FindOwned(userID, id string) (*domain.Task, error)

	// ListOwned returns the matching page of the owner's tasks plus the
	// total matching count
	ListOwned(userID string, q ListQuery) ([]*domain.Task, int64, error)

	// Update persists changes to an existing task
	Update(task *domain.Task) error

	// DeleteOwned removes a task by id and owner, reporting whether a
	// row was actually deleted
	DeleteOwned(userID, id string) (bool, error)
}
