package service

import (
	"fmt"

	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/repository"
)

// AttendanceService derives per-manager attendance from submitted reports
type AttendanceService struct {
	repo  repository.WorkReportRepositoryInterface
	index *hierarchy.Index
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo repository.WorkReportRepositoryInterface, index *hierarchy.Index) *AttendanceService {
	return &AttendanceService{repo: repo, index: index}
}

// ManagerAttendance is the attendance rollup for one manager on one day
type ManagerAttendance struct {
	ReportingManager string   `json:"reporting_manager"`
	ManagerEmail     string   `json:"manager_email"`
	Department       string   `json:"department"`
	Team             string   `json:"team"`
	TotalEmployees   int      `json:"total_employees"`
	Present          int      `json:"present"`
	Absent           int      `json:"absent"`
	PresentEmployees []string `json:"present_employees"`
}

// AttendanceSummary is the full attendance view for one day
type AttendanceSummary struct {
	Date     string              `json:"date"`
	Managers []ManagerAttendance `json:"managers"`
}

// AttendanceFor computes who submitted a report on the given day,
// grouped under the reporting manager recorded on each report. A
// missing or malformed date defaults to today in the organization
// timezone. Submitting a report is the only signal of presence.
func (s *AttendanceService) AttendanceFor(date string) (*AttendanceSummary, error) {
	if !validDate(date) {
		date = todayIST()
	}

	reports, err := s.repo.Find(repository.ReportFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}

	// Group the day's submitters under the manager name snapshotted on
	// each report, deduplicating repeat submissions.
	submitters := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for i := range reports {
		manager := reports[i].ReportingManager
		name := reports[i].EmployeeEmail
		if person := s.index.LookupByEmail(name); person != nil {
			name = person.Name
		}
		if seen[manager] == nil {
			seen[manager] = make(map[string]bool)
		}
		if seen[manager][name] {
			continue
		}
		seen[manager][name] = true
		submitters[manager] = append(submitters[manager], name)
	}

	summary := &AttendanceSummary{Date: date, Managers: []ManagerAttendance{}}
	for _, manager := range s.index.Managers() {
		total := s.index.SubordinateCount(manager.Email)
		present := submitters[manager.Name]
		if total == 0 && len(present) == 0 {
			continue
		}

		absent := total - len(present)
		if absent < 0 {
			absent = 0
		}
		if present == nil {
			present = []string{}
		}
		summary.Managers = append(summary.Managers, ManagerAttendance{
			ReportingManager: manager.Name,
			ManagerEmail:     hierarchy.NormalizeEmail(manager.Email),
			Department:       manager.Department,
			Team:             manager.Team,
			TotalEmployees:   total,
			Present:          len(present),
			Absent:           absent,
			PresentEmployees: present,
		})
	}
	return summary, nil
}
