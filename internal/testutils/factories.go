package testutils

import (
	"fmt"
	"time"

	"workreport-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Jane Doe",
		// Unique email per instance to avoid unique-index conflicts
		Email:        fmt.Sprintf("jane.doe+%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$10$wHiJ6qyeXh1iJ0eA0dBqmOJ2mW0m5l3lXyPvR3h9S5uXnVb0z7u1W",
		Role:         models.UserRoleEmployee,
		Department:   "Engineering",
		Team:         "Platform",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithUnit sets the department and team for the user
func (f *UserFactory) WithUnit(department, team string) *models.User {
	user := f.Create()
	user.Department = department
	user.Team = team
	return user
}

// WithResetToken sets a pending password reset token on the user
func (f *UserFactory) WithResetToken(tokenHash string, expires time.Time) *models.User {
	user := f.Create()
	user.ResetPasswordToken = &tokenHash
	user.ResetPasswordExpires = &expires
	return user
}

// WorkReportFactory provides methods to create test WorkReport data
type WorkReportFactory struct{}

// NewWorkReportFactory creates a new WorkReportFactory
func NewWorkReportFactory() *WorkReportFactory {
	return &WorkReportFactory{}
}

// Create creates a test WorkReport with default values
func (f *WorkReportFactory) Create() *models.WorkReport {
	now := time.Now()
	return &models.WorkReport{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		EmployeeName:     "Jane Doe",
		EmployeeEmail:    "jane.doe@test.com",
		Department:       "Engineering",
		Team:             "Platform",
		ReportingManager: "John Smith",
		Date:             now.Format("2006-01-02"),
		Tasks: models.TaskList{
			{ID: models.NewTaskID(), Details: "Reviewed pipeline alerts", Status: models.TaskStatusWIP},
		},
		SubmittedAt:    now,
		LastModifiedAt: now,
	}
}

// WithAuthor sets the author name and email for the report
func (f *WorkReportFactory) WithAuthor(name, email string) *models.WorkReport {
	report := f.Create()
	report.EmployeeName = name
	report.EmployeeEmail = email
	return report
}

// WithUnit sets the department and team for the report
func (f *WorkReportFactory) WithUnit(department, team string) *models.WorkReport {
	report := f.Create()
	report.Department = department
	report.Team = team
	return report
}

// WithManager sets the reporting manager recorded on the report
func (f *WorkReportFactory) WithManager(manager string) *models.WorkReport {
	report := f.Create()
	report.ReportingManager = manager
	return report
}

// WithDate sets the report date (YYYY-MM-DD)
func (f *WorkReportFactory) WithDate(date string) *models.WorkReport {
	report := f.Create()
	report.Date = date
	return report
}

// WithTasks replaces the default task list
func (f *WorkReportFactory) WithTasks(tasks models.TaskList) *models.WorkReport {
	report := f.Create()
	report.Tasks = tasks
	return report
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() models.Task {
	return models.Task{
		ID:      models.NewTaskID(),
		Details: "Test task",
		Status:  models.TaskStatusWIP,
	}
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(status models.TaskStatus) models.Task {
	task := f.Create()
	task.Status = status
	return task
}

// WithDetails sets custom details for the task
func (f *TaskFactory) WithDetails(details string) models.Task {
	task := f.Create()
	task.Details = details
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	WorkReport *WorkReportFactory
	Task       *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		WorkReport: NewWorkReportFactory(),
		Task:       NewTaskFactory(),
	}
}
