package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"workreport-portal-backend/internal/database/models"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/repository"
)

// SummaryService aggregates work reports into per-team rollups
type SummaryService struct {
	repo   repository.WorkReportRepositoryInterface
	index  *hierarchy.Index
	policy *hierarchy.AccessPolicy
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	repo repository.WorkReportRepositoryInterface,
	index *hierarchy.Index,
	policy *hierarchy.AccessPolicy,
) *SummaryService {
	return &SummaryService{
		repo:   repo,
		index:  index,
		policy: policy,
	}
}

// SummaryFilter narrows the team summary view
type SummaryFilter struct {
	Department string
	FromDate   string
	ToDate     string
}

// SummaryTask is one reported task inside a summary bucket
type SummaryTask struct {
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Details      string `json:"details"`
}

// TasksByStatus buckets summary tasks per status. Marshalling always
// emits the four canonical statuses first, in their display order,
// followed by Other when any task carried an unrecognized status.
type TasksByStatus map[models.TaskStatus][]SummaryTask

// NewTasksByStatus returns a bucket map with every canonical status present
func NewTasksByStatus() TasksByStatus {
	buckets := make(TasksByStatus, len(models.StatusOptions)+1)
	for _, status := range models.StatusOptions {
		buckets[status] = []SummaryTask{}
	}
	return buckets
}

// Add places a task in its status bucket, folding unknown statuses into Other
func (t TasksByStatus) Add(status models.TaskStatus, task SummaryTask) {
	if !status.IsValid() {
		status = models.TaskStatusOther
	}
	t[status] = append(t[status], task)
}

// MarshalJSON emits buckets in canonical order; map iteration order
// would otherwise scramble the keys.
func (t TasksByStatus) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	order := append([]models.TaskStatus{}, models.StatusOptions...)
	if len(t[models.TaskStatusOther]) > 0 {
		order = append(order, models.TaskStatusOther)
	}

	for i, status := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(status))
		if err != nil {
			return nil, err
		}
		tasks := t[status]
		if tasks == nil {
			tasks = []SummaryTask{}
		}
		value, err := json.Marshal(tasks)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TeamSummaryGroup is one reporting manager's rollup
type TeamSummaryGroup struct {
	Department       string        `json:"department"`
	Team             string        `json:"team"`
	ReportingManager string        `json:"reporting_manager"`
	Reviewer         string        `json:"reviewer"`
	NoOfResource     int           `json:"no_of_resource"`
	Tasks            TasksByStatus `json:"tasks"`
}

// TeamSummaries builds one group per reporting manager, walking the
// organizational table in source order. Full-view requesters see every
// group and may narrow by department; everyone else sees only the
// groups where they are the reporting manager.
func (s *SummaryService) TeamSummaries(requesterEmail string, filter SummaryFilter) ([]TeamSummaryGroup, error) {
	fullView := s.policy.HasFullView(requesterEmail)
	requesterKey := hierarchy.NormalizeEmail(requesterEmail)

	department := dropSentinel(filter.Department, AllDepartments)
	from, to := cleanDateRange(filter.FromDate, filter.ToDate)

	groups := make([]TeamSummaryGroup, 0)
	for _, dept := range s.index.Departments() {
		if fullView && department != "" && dept.Name != department {
			continue
		}
		for _, team := range dept.Teams {
			for _, rm := range team.Members {
				if rm.Designation != hierarchy.DesignationReportingManager {
					continue
				}
				if !fullView && hierarchy.NormalizeEmail(rm.Email) != requesterKey {
					continue
				}

				emails := teamMemberEmails(team, rm)
				reports, err := s.repo.Find(repository.ReportFilter{
					AuthorEmails: emails,
					Department:   dept.Name,
					Team:         team.Name,
					FromDate:     from,
					ToDate:       to,
				})
				if err != nil {
					return nil, fmt.Errorf("failed to query reports: %w", err)
				}

				buckets := NewTasksByStatus()
				for i := range reports {
					for _, task := range reports[i].Tasks {
						buckets.Add(task.Status, SummaryTask{
							EmployeeName: reports[i].EmployeeName,
							Date:         reports[i].Date,
							Details:      task.Details,
						})
					}
				}

				resources := len(emails)
				if resources < 1 {
					resources = 1
				}
				groups = append(groups, TeamSummaryGroup{
					Department:       dept.Name,
					Team:             team.Name,
					ReportingManager: rm.Name,
					Reviewer:         rm.Reviewer,
					NoOfResource:     resources,
					Tasks:            buckets,
				})
			}
		}
	}
	return groups, nil
}

// PersonalSummary rolls up the requester's own reports into one group
func (s *SummaryService) PersonalSummary(requesterEmail string, fromDate, toDate string) (*TeamSummaryGroup, error) {
	email := hierarchy.NormalizeEmail(requesterEmail)
	from, to := cleanDateRange(fromDate, toDate)

	reports, err := s.repo.Find(repository.ReportFilter{
		AuthorEmails: []string{email},
		FromDate:     from,
		ToDate:       to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}

	group := &TeamSummaryGroup{
		NoOfResource: 1,
		Reviewer:     "N/A",
		Tasks:        NewTasksByStatus(),
	}
	if person := s.index.LookupByEmail(email); person != nil {
		group.Department = person.Department
		group.Team = person.Team
		group.ReportingManager = person.Reviewer
		// The reviewer column shows who the requester's manager reviews to
		if manager := s.personByName(person.Reviewer); manager != nil && manager.Reviewer != "" {
			group.Reviewer = manager.Reviewer
		}
	}

	for i := range reports {
		if group.Department == "" {
			group.Department = reports[i].Department
			group.Team = reports[i].Team
			group.ReportingManager = reports[i].ReportingManager
		}
		for _, task := range reports[i].Tasks {
			group.Tasks.Add(task.Status, SummaryTask{
				EmployeeName: reports[i].EmployeeName,
				Date:         reports[i].Date,
				Details:      task.Details,
			})
		}
	}
	return group, nil
}

// teamMemberEmails resolves the membership set for one reporting
// manager inside one team: the manager, the team's zonal managers who
// review to them, employees reviewing to those zonal managers, and
// employees reviewing directly to the manager.
func teamMemberEmails(team hierarchy.Team, rm hierarchy.Person) []string {
	set := make(map[string]bool)
	if key := hierarchy.NormalizeEmail(rm.Email); key != "" {
		set[key] = true
	}

	zonalNames := make(map[string]bool)
	for _, member := range team.Members {
		if member.Designation == hierarchy.DesignationZonalManager && member.Reviewer == rm.Name {
			zonalNames[member.Name] = true
			if key := hierarchy.NormalizeEmail(member.Email); key != "" {
				set[key] = true
			}
		}
	}
	for _, member := range team.Members {
		if member.Designation != hierarchy.DesignationEmployee {
			continue
		}
		if member.Reviewer == rm.Name || zonalNames[member.Reviewer] {
			if key := hierarchy.NormalizeEmail(member.Email); key != "" {
				set[key] = true
			}
		}
	}

	emails := make([]string, 0, len(set))
	for e := range set {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails
}

func (s *SummaryService) personByName(name string) *hierarchy.Person {
	if name == "" {
		return nil
	}
	for _, p := range s.index.People() {
		if p.Name == name {
			person := p
			return &person
		}
	}
	return nil
}

// cleanDateRange drops malformed bounds and treats a reversed range as open
func cleanDateRange(from, to string) (string, string) {
	if !validDate(from) {
		from = ""
	}
	if !validDate(to) {
		to = ""
	}
	if from != "" && to != "" && from > to {
		return "", ""
	}
	return from, to
}
