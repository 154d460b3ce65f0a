package delivery

import (
	"net/http"

	"task-manager-backend/internal/auth/dto"
	"task-manager-backend/internal/auth/usecase"
	"task-manager-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func respondError(c *gin.Context, err error) {
	e := apperr.From(err)
	c.JSON(e.Status, gin.H{
		"success":      false,
		"message":      e.Message,
		"errorDetails": e.Details,
	})
}

// SignUp registers a new user
// POST /api/auth/sign_up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.authUsecase.SignUp(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "User created successfully",
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

// Login authenticates a user
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Login successful",
		"user":                 result.User,
		"accessToken":          result.AccessToken,
		"accessTokenExpiresAt": result.AccessTokenExpiresAt,
	})
}

// Logout acknowledges a logout
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// UpdateUser updates the authenticated user's profile
// PUT /api/auth/update
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.authUsecase.UpdateUser(c.GetString("userID"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdatePassword changes the user's password
// PUT /api/auth/update-password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	if err := h.authUsecase.UpdatePassword(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// UpdateEmail moves the account to a new email and returns a fresh token
// PUT /api/auth/update-email
func (h *AuthHandler) UpdateEmail(c *gin.Context) {
	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.authUsecase.UpdateEmail(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Email updated successfully",
		"user":                 result.User,
		"accessToken":          result.AccessToken,
		"accessTokenExpiresAt": result.AccessTokenExpiresAt,
	})
}
