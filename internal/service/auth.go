package service

import (
	"errors"
	"fmt"

	"workreport-portal-backend/internal/auth"
	"workreport-portal-backend/internal/database/models"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/logger"
	"workreport-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// AuthUserService handles account authentication and credential management
type AuthUserService struct {
	repo        repository.UserRepositoryInterface
	authService *auth.AuthService
	index       *hierarchy.Index
	validator   *validator.Validate
	log         *logger.Logger
	frontendURL string
}

// NewAuthUserService creates a new account service
func NewAuthUserService(
	repo repository.UserRepositoryInterface,
	authService *auth.AuthService,
	index *hierarchy.Index,
	validator *validator.Validate,
	log *logger.Logger,
	frontendURL string,
) *AuthUserService {
	return &AuthUserService{
		repo:        repo,
		authService: authService,
		index:       index,
		validator:   validator,
		log:         log,
		frontendURL: frontendURL,
	}
}

// LoginRequest represents the credentials for a login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents the data needed to register an account
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChangePasswordRequest represents a password change for the authenticated user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ResetPasswordRequest carries a reset token with the replacement password
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UserResponse represents the response data for an account
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Team       string `json:"team"`
}

// TokenResponse is returned from login and signup
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// Login verifies credentials and issues an access token
func (s *AuthUserService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByEmail(hierarchy.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.authService.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// Signup registers a new account. Department, team and role come from
// the organizational data when the email is known there.
func (s *AuthUserService) Signup(req *SignupRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := hierarchy.NormalizeEmail(req.Email)
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleEmployee,
	}
	if person := s.index.LookupByEmail(email); person != nil {
		user.Name = person.Name
		user.Department = person.Department
		user.Team = person.Team
		if person.Designation.IsManager() {
			user.Role = models.UserRoleManager
		}
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// Me returns the account behind the authenticated email
func (s *AuthUserService) Me(email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(hierarchy.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	resp := s.convertToResponse(user)
	return &resp, nil
}

// ChangePassword replaces the password after verifying the current one
func (s *AuthUserService) ChangePassword(email string, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByEmail(hierarchy.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.authService.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrWrongPassword
	}
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	hash, err := s.authService.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RequestPasswordReset starts the reset flow. Unknown emails are
// silently ignored so the endpoint cannot be used to enumerate accounts.
func (s *AuthUserService) RequestPasswordReset(email string) error {
	user, err := s.repo.GetByEmail(hierarchy.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	raw, hash, expires, err := s.authService.GenerateResetToken()
	if err != nil {
		return err
	}
	if err := s.repo.SetResetToken(user.ID, hash, expires); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	// Mail delivery is not wired up; the link is logged for the operator
	s.log.WithUser(user.Email).WithField("reset_link",
		fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, raw),
	).Info("Password reset requested")
	return nil
}

// ResetPassword completes the reset flow using a raw token from the link
func (s *AuthUserService) ResetPassword(req *ResetPasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	user, err := s.repo.GetByValidResetToken(auth.HashResetToken(req.Token), timeNow())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	hash, err := s.authService.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *AuthUserService) issueToken(user *models.User) (*TokenResponse, error) {
	token, err := s.authService.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        s.convertToResponse(user),
	}, nil
}

func (s *AuthUserService) convertToResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Department: user.Department,
		Team:       user.Team,
	}
}
