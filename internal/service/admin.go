package service

import (
	"errors"
	"fmt"

	"workreport-portal-backend/internal/auth"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService handles account administration
type AdminService struct {
	repo            repository.UserRepositoryInterface
	authService     *auth.AuthService
	defaultPassword string
}

// NewAdminService creates a new admin service
func NewAdminService(repo repository.UserRepositoryInterface, authService *auth.AuthService, defaultPassword string) *AdminService {
	return &AdminService{
		repo:            repo,
		authService:     authService,
		defaultPassword: defaultPassword,
	}
}

// ListUsers returns every account, ordered by name
func (s *AdminService) ListUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, UserResponse{
			ID:         u.ID.String(),
			Name:       u.Name,
			Email:      u.Email,
			Role:       string(u.Role),
			Department: u.Department,
			Team:       u.Team,
		})
	}
	return out, nil
}

// ResetUserPassword puts an account back on the default password and
// invalidates any pending reset token. Admins must use the regular
// change-password flow for their own account.
func (s *AdminService) ResetUserPassword(adminEmail string, id uuid.UUID) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if hierarchy.NormalizeEmail(user.Email) == hierarchy.NormalizeEmail(adminEmail) {
		return apperrors.ErrSelfPasswordReset
	}

	hash, err := s.authService.HashPassword(s.defaultPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(user.ID, hash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
