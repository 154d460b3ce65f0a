package usecase

import (
	"net/http"
	"strings"

	"task-manager-backend/internal/auth/domain"
	"task-manager-backend/internal/auth/dto"
	"task-manager-backend/internal/auth/repository"
	"task-manager-backend/pkg/apperr"
	"task-manager-backend/pkg/token"
)

// The same message covers an unknown email and a wrong password so a
// caller cannot probe which emails are registered.
const invalidCredentialsMessage = "invalid credentials"

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) SignUp(req *dto.SignUpRequest) (*dto.AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || req.Password == "" {
		return nil, apperr.Validation("name, email, or password is missing")
	}
	if !domain.ValidEmail(email) {
		return nil, apperr.Validation("please enter a valid email")
	}
	if !domain.ValidName(name) {
		return nil, apperr.Validation("name must be 3-30 characters of letters and spaces")
	}

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, http.StatusUnauthorized, "user already exists with this email")
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    email,
		Name:     name,
		Password: hashed,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueFor(user)
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("email or password is missing")
	}

	user, err := u.userRepo.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.InvalidCredentials(invalidCredentialsMessage)
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.InvalidCredentials(invalidCredentialsMessage)
	}

	return u.issueFor(user)
}

func (u *authUsecase) Logout(userID string) error {
	if userID == "" {
		return apperr.Unauthorized("unauthorized request")
	}
	// Stateless tokens: nothing to revoke server-side.
	return nil
}

func (u *authUsecase) UpdateUser(userID string, req *dto.UpdateUserRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name is missing")
	}
	if !domain.ValidName(name) {
		return nil, apperr.Validation("name must be 3-30 characters of letters and spaces")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	user.Name = name
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) UpdatePassword(req *dto.UpdatePasswordRequest) error {
	if req.Email == "" || req.OldPassword == "" || req.NewPassword == "" {
		return apperr.Validation("email, old password, or new password is missing")
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}
	if !repository.CheckPasswordHash(req.OldPassword, user.Password) {
		return apperr.InvalidCredentials("invalid current password")
	}

	hashed, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return u.userRepo.Update(user)
}

func (u *authUsecase) UpdateEmail(req *dto.UpdateEmailRequest) (*dto.AuthResult, error) {
	newEmail := strings.TrimSpace(req.NewEmail)
	if req.CurrentEmail == "" || newEmail == "" || req.Password == "" {
		return nil, apperr.Validation("current email, new email, or password is missing")
	}
	if !domain.ValidEmail(newEmail) {
		return nil, apperr.Validation("please enter a valid email")
	}

	user, err := u.userRepo.FindByEmail(req.CurrentEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.InvalidCredentials("invalid password")
	}

	existing, err := u.userRepo.FindByEmail(newEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("email already in use")
	}

	user.Email = newEmail
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	// The token binds the email, so a new one must be issued.
	return u.issueFor(user)
}

func (u *authUsecase) issueFor(user *domain.User) (*dto.AuthResult, error) {
	accessToken, expiresAt, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{
		User:                 user,
		AccessToken:          accessToken,
		AccessTokenExpiresAt: expiresAt,
	}, nil
}
