package models

// TaskStatus defines the lifecycle states a reported task can be in
type TaskStatus string

const (
	TaskStatusWIP        TaskStatus = "WIP"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusYetToStart TaskStatus = "Yet to Start"
	TaskStatusDelayed    TaskStatus = "Delayed"

	// TaskStatusOther buckets tasks whose status is not one of the canonical options
	TaskStatusOther TaskStatus = "Other"
)

// StatusOptions is the canonical display order for task statuses.
// Summary views always emit these four keys in this order.
var StatusOptions = []TaskStatus{
	TaskStatusWIP,
	TaskStatusCompleted,
	TaskStatusYetToStart,
	TaskStatusDelayed,
}

// IsValid checks if the TaskStatus is one of the canonical options
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusWIP, TaskStatusCompleted, TaskStatusYetToStart, TaskStatusDelayed:
		return true
	}
	return false
}

// UserRole defines account-level roles
type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleManager  UserRole = "manager"
	UserRoleAdmin    UserRole = "admin"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEmployee, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}
