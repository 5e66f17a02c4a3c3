package repository

import (
	"time"

	"workreport-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user account operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Count() (int64, error)
	Update(user *models.User) error
	UpdatePassword(id uuid.UUID, passwordHash string) error
	SetResetToken(id uuid.UUID, tokenHash string, expires time.Time) error
	GetByValidResetToken(tokenHash string, now time.Time) (*models.User, error)
	ClearResetToken(id uuid.UUID) error
}

// ReportFilter narrows work report queries. A nil AuthorEmails slice
// means no author restriction; a non-nil empty slice matches nothing.
// Date bounds are inclusive YYYY-MM-DD strings; empty means open.
type ReportFilter struct {
	AuthorEmails []string
	Department   string
	Team         string
	Manager      string
	Date         string
	FromDate     string
	ToDate       string
}

// WorkReportRepositoryInterface defines the interface for work report operations
type WorkReportRepositoryInterface interface {
	Create(report *models.WorkReport) error
	GetByID(id uuid.UUID) (*models.WorkReport, error)
	Find(filter ReportFilter) ([]models.WorkReport, error)
	UpdateTasks(id uuid.UUID, tasks models.TaskList, modifiedBy string, modifiedAt time.Time) error
	Delete(id uuid.UUID) error
}
