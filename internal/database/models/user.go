package models

import "time"

// User represents a portal account. Accounts are seeded from the
// organizational data on startup and may also be created via signup.
type User struct {
	BaseModel
	Name         string   `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"not null;size:255"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'employee'" validate:"required"`
	Department   string   `json:"department" gorm:"size:100"`
	Team         string   `json:"team" gorm:"size:100"`

	// Password reset flow: only the SHA-256 hash of the token is stored
	ResetPasswordToken   *string    `json:"-" gorm:"size:64;index"`
	ResetPasswordExpires *time.Time `json:"-"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
