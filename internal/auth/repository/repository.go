package repository

import "task-manager-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *domain.User) error

	// FindByEmail finds a user by email, (nil, nil) when absent
	FindByEmail(email string) (*domain.User, error)

	// FindByID finds a user by id, (nil, nil) when absent
	FindByID(id string) (*domain.User, error)

	// Update persists changes to an existing user
	Update(user *domain.User) error
}
