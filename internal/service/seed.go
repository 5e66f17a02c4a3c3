package service

import (
	"errors"
	"fmt"

	"workreport-portal-backend/internal/auth"
	"workreport-portal-backend/internal/database/models"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/logger"
	"workreport-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// SeedService creates portal accounts from the organizational data
type SeedService struct {
	repo        repository.UserRepositoryInterface
	authService *auth.AuthService
	index       *hierarchy.Index
	log         *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(
	repo repository.UserRepositoryInterface,
	authService *auth.AuthService,
	index *hierarchy.Index,
	log *logger.Logger,
) *SeedService {
	return &SeedService{
		repo:        repo,
		authService: authService,
		index:       index,
		log:         log,
	}
}

// SeedUsers reconciles the accounts table with the organizational data.
// Missing accounts are created on the default password. Existing
// accounts only ever gain: blank department or team fields are filled
// in, and employee accounts of people now designated managers are
// upgraded. Accounts are never demoted or deleted here.
func (s *SeedService) SeedUsers(defaultPassword, adminEmail, adminName string) error {
	hash, err := s.authService.HashPassword(defaultPassword)
	if err != nil {
		return err
	}

	created, updated := 0, 0
	seen := make(map[string]bool)
	for _, person := range s.index.People() {
		email := hierarchy.NormalizeEmail(person.Email)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true

		role := models.UserRoleEmployee
		if person.Designation.IsManager() {
			role = models.UserRoleManager
		}

		existing, err := s.repo.GetByEmail(email)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up user %s: %w", email, err)
			}
			user := &models.User{
				Name:         person.Name,
				Email:        email,
				PasswordHash: hash,
				Role:         role,
				Department:   person.Department,
				Team:         person.Team,
			}
			if err := s.repo.Create(user); err != nil {
				return fmt.Errorf("failed to create user %s: %w", email, err)
			}
			created++
			continue
		}

		changed := false
		if existing.Department == "" && person.Department != "" {
			existing.Department = person.Department
			changed = true
		}
		if existing.Team == "" && person.Team != "" {
			existing.Team = person.Team
			changed = true
		}
		if role == models.UserRoleManager && existing.Role == models.UserRoleEmployee {
			existing.Role = models.UserRoleManager
			changed = true
		}
		if changed {
			if err := s.repo.Update(existing); err != nil {
				return fmt.Errorf("failed to update user %s: %w", email, err)
			}
			updated++
		}
	}

	if err := s.ensureAdmin(hash, adminEmail, adminName); err != nil {
		return err
	}

	s.log.WithField("created", created).WithField("updated", updated).Info("User seeding complete")
	return nil
}

func (s *SeedService) ensureAdmin(passwordHash, adminEmail, adminName string) error {
	email := hierarchy.NormalizeEmail(adminEmail)
	if email == "" {
		return nil
	}

	_, err := s.repo.GetByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	admin := &models.User{
		Name:         adminName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleAdmin,
	}
	if err := s.repo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	return nil
}
