package repository

import (
	"time"

	"workreport-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for portal accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves every account, ordered by name
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count returns the number of accounts
func (r *UserRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdatePassword replaces the password hash and clears any pending reset token
func (r *UserRepository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":          passwordHash,
		"reset_password_token":   nil,
		"reset_password_expires": nil,
	}).Error
}

// SetResetToken stores the hashed reset token with its expiry
func (r *UserRepository) SetResetToken(id uuid.UUID, tokenHash string, expires time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_password_token":   tokenHash,
		"reset_password_expires": expires,
	}).Error
}

// GetByValidResetToken finds the account holding an unexpired reset token
func (r *UserRepository) GetByValidResetToken(tokenHash string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "reset_password_token = ? AND reset_password_expires > ?", tokenHash, now).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ClearResetToken removes any pending reset token
func (r *UserRepository) ClearResetToken(id uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_password_token":   nil,
		"reset_password_expires": nil,
	}).Error
}
