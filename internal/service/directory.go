package service

import (
	"sort"

	"workreport-portal-backend/internal/database/models"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/hierarchy"
)

// DirectoryService exposes read-only views over the organizational data
type DirectoryService struct {
	index *hierarchy.Index
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(index *hierarchy.Index) *DirectoryService {
	return &DirectoryService{index: index}
}

// DepartmentInfo is one department with its team names
type DepartmentInfo struct {
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

// PersonInfo is one person from the organizational table
type PersonInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Reviewer    string `json:"reviewer,omitempty"`
	Department  string `json:"department"`
	Team        string `json:"team"`
}

// ManagerResources describes a manager with their resolved subordinates
type ManagerResources struct {
	Manager      PersonInfo   `json:"manager"`
	Subordinates []PersonInfo `json:"subordinates"`
	Count        int          `json:"count"`
}

// Departments lists every department with its teams, in source order
func (s *DirectoryService) Departments() []DepartmentInfo {
	departments := s.index.Departments()
	out := make([]DepartmentInfo, 0, len(departments))
	for _, dept := range departments {
		teams := make([]string, 0, len(dept.Teams))
		for _, team := range dept.Teams {
			teams = append(teams, team.Name)
		}
		out = append(out, DepartmentInfo{Name: dept.Name, Teams: teams})
	}
	return out
}

// Managers lists every reporting and zonal manager, in source order
func (s *DirectoryService) Managers() []PersonInfo {
	managers := s.index.Managers()
	out := make([]PersonInfo, 0, len(managers))
	for _, m := range managers {
		out = append(out, convertPerson(m))
	}
	return out
}

// ManagerResources resolves the subordinate set for one manager.
// Emails missing from the organizational data are an error here, unlike
// report scoping where they quietly restrict visibility.
func (s *DirectoryService) ManagerResources(managerEmail string) (*ManagerResources, error) {
	manager := s.index.LookupByEmail(managerEmail)
	if manager == nil {
		return nil, apperrors.ErrUserNotInHierarchy
	}

	emails := s.index.SubordinateEmails(managerEmail)
	keys := make([]string, 0, len(emails))
	for e := range emails {
		keys = append(keys, e)
	}
	sort.Strings(keys)

	subordinates := make([]PersonInfo, 0, len(keys))
	for _, e := range keys {
		if person := s.index.LookupByEmail(e); person != nil {
			subordinates = append(subordinates, convertPerson(*person))
		}
	}

	return &ManagerResources{
		Manager:      convertPerson(*manager),
		Subordinates: subordinates,
		Count:        len(subordinates),
	}, nil
}

// UserDetails returns the organizational entry for an email
func (s *DirectoryService) UserDetails(email string) (*PersonInfo, error) {
	person := s.index.LookupByEmail(email)
	if person == nil {
		return nil, apperrors.ErrUserNotInHierarchy
	}
	info := convertPerson(*person)
	return &info, nil
}

// StatusOptions returns the canonical task statuses in display order
func (s *DirectoryService) StatusOptions() []string {
	out := make([]string, 0, len(models.StatusOptions))
	for _, status := range models.StatusOptions {
		out = append(out, string(status))
	}
	return out
}

func convertPerson(p hierarchy.Person) PersonInfo {
	return PersonInfo{
		Name:        p.Name,
		Email:       hierarchy.NormalizeEmail(p.Email),
		Designation: string(p.Designation),
		Reviewer:    p.Reviewer,
		Department:  p.Department,
		Team:        p.Team,
	}
}
