package repository

import (
	"time"

	"workreport-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkReportRepository handles database operations for work reports
type WorkReportRepository struct {
	db *gorm.DB
}

// NewWorkReportRepository creates a new work report repository
func NewWorkReportRepository(db *gorm.DB) *WorkReportRepository {
	return &WorkReportRepository{db: db}
}

// Create creates a new work report
func (r *WorkReportRepository) Create(report *models.WorkReport) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a work report by ID
func (r *WorkReportRepository) GetByID(id uuid.UUID) (*models.WorkReport, error) {
	var report models.WorkReport
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Find retrieves work reports matching the filter, newest submissions first
func (r *WorkReportRepository) Find(filter ReportFilter) ([]models.WorkReport, error) {
	// A present-but-empty author set can never match anything
	if filter.AuthorEmails != nil && len(filter.AuthorEmails) == 0 {
		return []models.WorkReport{}, nil
	}

	query := r.db.Model(&models.WorkReport{})
	if filter.AuthorEmails != nil {
		query = query.Where("employee_email IN ?", filter.AuthorEmails)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.Manager != "" {
		query = query.Where("reporting_manager = ?", filter.Manager)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.FromDate != "" {
		query = query.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("date <= ?", filter.ToDate)
	}

	var reports []models.WorkReport
	if err := query.Order("submitted_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateTasks replaces the task list of a report wholesale
func (r *WorkReportRepository) UpdateTasks(id uuid.UUID, tasks models.TaskList, modifiedBy string, modifiedAt time.Time) error {
	result := r.db.Model(&models.WorkReport{}).Where("id = ?", id).Updates(map[string]interface{}{
		"tasks":            tasks,
		"last_modified_by": modifiedBy,
		"last_modified_at": modifiedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a work report
func (r *WorkReportRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.WorkReport{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
