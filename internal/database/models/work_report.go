package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is a single line item inside a daily work report
type Task struct {
	ID      string     `json:"id"`
	Details string     `json:"details" validate:"required"`
	Status  TaskStatus `json:"status" validate:"required"`
}

// TaskList is stored as a jsonb column on work_reports
type TaskList []Task

// Value implements driver.Valuer for jsonb storage
func (t TaskList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb storage
func (t *TaskList) Scan(value interface{}) error {
	if value == nil {
		*t = TaskList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported task list column type %T", value)
	}
	return json.Unmarshal(b, t)
}

// WorkReport is one employee's submitted report for one calendar day.
// The reporting_manager value is a snapshot of the manager name at
// submission time and is intentionally never re-resolved afterwards.
// Duplicate (employee_email, date) rows are permitted.
type WorkReport struct {
	BaseModel
	EmployeeName     string    `json:"employee_name" gorm:"not null;size:200" validate:"required,max=200"`
	EmployeeEmail    string    `json:"employee_email" gorm:"not null;size:255;index" validate:"required,email"`
	Department       string    `json:"department" gorm:"not null;size:100;index"`
	Team             string    `json:"team" gorm:"not null;size:100;index"`
	ReportingManager string    `json:"reporting_manager" gorm:"not null;size:200;index"`
	Date             string    `json:"date" gorm:"not null;size:10;index" validate:"required"`
	Tasks            TaskList  `json:"tasks" gorm:"type:jsonb;not null"`
	SubmittedAt      time.Time `json:"submitted_at"`
	LastModifiedAt   time.Time `json:"last_modified_at"`
	LastModifiedBy   string    `json:"last_modified_by" gorm:"size:255"`
}

// TableName returns the table name for WorkReport
func (WorkReport) TableName() string {
	return "work_reports"
}

// NewTaskID generates an identifier for a task line item
func NewTaskID() string {
	return uuid.NewString()
}
