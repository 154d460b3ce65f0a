package dto

import (
	"time"

	"task-manager-backend/internal/auth/domain"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name string `json:"name"`
}

type UpdatePasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateEmailRequest struct {
	CurrentEmail string `json:"currentEmail"`
	NewEmail     string `json:"newEmail"`
	Password     string `json:"password"`
}

// AuthResult is what signup, login and update-email hand back to the
// delivery layer: the user plus a freshly issued access token.
type AuthResult struct {
	User                 *domain.User
	AccessToken          string
	AccessTokenExpiresAt time.Time
}
