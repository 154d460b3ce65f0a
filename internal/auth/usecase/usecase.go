package usecase

import (
	"task-manager-backend/internal/auth/domain"
	"task-manager-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// SignUp registers a new account and issues an access token
	SignUp(req *dto.SignUpRequest) (*dto.AuthResult, error)

	// Login verifies credentials and issues an access token
	Login(req *dto.LoginRequest) (*dto.AuthResult, error)

	// Logout acknowledges an authenticated logout. Tokens are stateless
	// and stay valid until their natural expiry.
	Logout(userID string) error

	// UpdateUser changes the profile name of an existing user
	UpdateUser(userID string, req *dto.UpdateUserRequest) (*domain.User, error)

	// UpdatePassword replaces the stored password hash after verifying
	// the old password
	UpdatePassword(req *dto.UpdatePasswordRequest) error

	// UpdateEmail moves the account to a new unique email and re-issues
	// the token, since the identity it binds changed
	UpdateEmail(req *dto.UpdateEmailRequest) (*dto.AuthResult, error)
}
