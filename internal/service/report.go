package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"workreport-portal-backend/internal/database/models"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Filter sentinels sent by the frontend meaning "no filter"
const (
	AllDepartments      = "All Departments"
	AllTeams            = "All Teams"
	AllReportingManager = "All Reporting Managers"
)

// ReportService handles business logic for daily work reports
type ReportService struct {
	repo      repository.WorkReportRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	index     *hierarchy.Index
	policy    *hierarchy.AccessPolicy
	validator *validator.Validate
}

// NewReportService creates a new report service
func NewReportService(
	repo repository.WorkReportRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	index *hierarchy.Index,
	policy *hierarchy.AccessPolicy,
	validator *validator.Validate,
) *ReportService {
	return &ReportService{
		repo:      repo,
		userRepo:  userRepo,
		index:     index,
		policy:    policy,
		validator: validator,
	}
}

// TaskInput is one task line in a submitted or edited report
type TaskInput struct {
	ID      string `json:"id"`
	Details string `json:"details" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// CreateReportRequest represents the data needed to submit a daily report
type CreateReportRequest struct {
	Date  string      `json:"date" validate:"required"`
	Tasks []TaskInput `json:"tasks" validate:"required,min=1,dive"`
}

// UpdateReportRequest replaces the task list of an existing report
type UpdateReportRequest struct {
	Tasks []TaskInput `json:"tasks" validate:"required,min=1,dive"`
}

// ListReportsFilter narrows a report listing. Sentinel values like
// "All Departments" are treated the same as an empty filter.
type ListReportsFilter struct {
	Department string
	Team       string
	Manager    string
	Date       string
	FromDate   string
	ToDate     string
}

// WorkReportResponse represents the response data for a work report
type WorkReportResponse struct {
	ID               uuid.UUID       `json:"id"`
	EmployeeName     string          `json:"employee_name"`
	EmployeeEmail    string          `json:"employee_email"`
	Department       string          `json:"department"`
	Team             string          `json:"team"`
	ReportingManager string          `json:"reporting_manager"`
	Date             string          `json:"date"`
	Tasks            models.TaskList `json:"tasks"`
	SubmittedAt      time.Time       `json:"submitted_at"`
	LastModifiedAt   time.Time       `json:"last_modified_at"`
	LastModifiedBy   string          `json:"last_modified_by,omitempty"`
}

// Create submits a daily report for the authenticated user. Department,
// team and reporting manager are snapshotted from the organizational
// data at submission time.
func (s *ReportService) Create(requesterEmail string, req *CreateReportRequest) (*WorkReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !validDate(req.Date) {
		return nil, apperrors.NewValidationError("date", "must be a YYYY-MM-DD date")
	}

	email := hierarchy.NormalizeEmail(requesterEmail)
	now := timeNow()
	report := &models.WorkReport{
		EmployeeEmail:  email,
		Date:           req.Date,
		Tasks:          toTaskList(req.Tasks),
		SubmittedAt:    now,
		LastModifiedAt: now,
	}

	if person := s.index.LookupByEmail(email); person != nil {
		report.EmployeeName = person.Name
		report.Department = person.Department
		report.Team = person.Team
		report.ReportingManager = person.Reviewer
	} else {
		// Not in the organizational table; fall back to the account record
		user, err := s.userRepo.GetByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		report.EmployeeName = user.Name
		report.Department = user.Department
		report.Team = user.Team
	}

	if err := s.repo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return s.convertToResponse(report), nil
}

// List returns the reports visible to the requester, narrowed by filter
func (s *ReportService) List(requesterEmail string, filter ListReportsFilter) ([]WorkReportResponse, error) {
	reports, err := s.repo.Find(s.buildFilter(requesterEmail, filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]WorkReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, *s.convertToResponse(&reports[i]))
	}
	return responses, nil
}

// Get returns a single report if it falls inside the requester's scope.
// Records outside the scope are indistinguishable from missing ones.
func (s *ReportService) Get(requesterEmail string, id uuid.UUID) (*WorkReportResponse, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	scope := s.policy.ReportQueryScope(requesterEmail)
	if !scope.Allows(requesterEmail, report.EmployeeEmail) {
		return nil, apperrors.ErrReportNotFound
	}
	return s.convertToResponse(report), nil
}

// UpdateTasks replaces the task list of a report. Only the author's
// exact reviewer (holding a manager account) or a director may edit.
func (s *ReportService) UpdateTasks(requesterEmail, accountRole string, id uuid.UUID, req *UpdateReportRequest) (*WorkReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if !s.policy.CanModify(accountRole, requesterEmail, report.EmployeeEmail) {
		return nil, apperrors.ErrReportModifyForbidden
	}

	tasks := toTaskList(req.Tasks)
	now := timeNow()
	if err := s.repo.UpdateTasks(id, tasks, hierarchy.NormalizeEmail(requesterEmail), now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	report.Tasks = tasks
	report.LastModifiedAt = now
	report.LastModifiedBy = hierarchy.NormalizeEmail(requesterEmail)
	return s.convertToResponse(report), nil
}

// Delete removes a report under the same authorization rule as editing
func (s *ReportService) Delete(requesterEmail, accountRole string, id uuid.UUID) error {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("failed to get report: %w", err)
	}

	if !s.policy.CanModify(accountRole, requesterEmail, report.EmployeeEmail) {
		return apperrors.ErrReportModifyForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// buildFilter converts the API filter plus the requester's visibility
// scope into a repository query.
func (s *ReportService) buildFilter(requesterEmail string, filter ListReportsFilter) repository.ReportFilter {
	out := repository.ReportFilter{
		Department: dropSentinel(filter.Department, AllDepartments),
		Team:       dropSentinel(filter.Team, AllTeams),
		Manager:    dropSentinel(filter.Manager, AllReportingManager),
	}

	if validDate(filter.Date) {
		out.Date = filter.Date
	}
	out.FromDate, out.ToDate = cleanDateRange(filter.FromDate, filter.ToDate)

	scope := s.policy.ReportQueryScope(requesterEmail)
	switch scope.Kind {
	case hierarchy.ScopeAll:
		out.AuthorEmails = nil
	case hierarchy.ScopeEmails:
		emails := make([]string, 0, len(scope.Emails))
		for e := range scope.Emails {
			emails = append(emails, e)
		}
		sort.Strings(emails)
		out.AuthorEmails = emails
	default:
		out.AuthorEmails = []string{hierarchy.NormalizeEmail(requesterEmail)}
	}
	return out
}

func dropSentinel(value, sentinel string) string {
	if value == sentinel {
		return ""
	}
	return value
}

func toTaskList(inputs []TaskInput) models.TaskList {
	tasks := make(models.TaskList, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = models.NewTaskID()
		}
		tasks = append(tasks, models.Task{
			ID:      id,
			Details: in.Details,
			Status:  models.TaskStatus(in.Status),
		})
	}
	return tasks
}

func (s *ReportService) convertToResponse(report *models.WorkReport) *WorkReportResponse {
	return &WorkReportResponse{
		ID:               report.ID,
		EmployeeName:     report.EmployeeName,
		EmployeeEmail:    report.EmployeeEmail,
		Department:       report.Department,
		Team:             report.Team,
		ReportingManager: report.ReportingManager,
		Date:             report.Date,
		Tasks:            report.Tasks,
		SubmittedAt:      report.SubmittedAt,
		LastModifiedAt:   report.LastModifiedAt,
		LastModifiedBy:   report.LastModifiedBy,
	}
}
