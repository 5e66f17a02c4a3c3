package hierarchy

import "strings"

// Designation values as they appear verbatim in the organizational data.
type Designation string

const (
	DesignationReportingManager Designation = "Reporting manager"
	DesignationZonalManager     Designation = "Zonal Managers"
	DesignationEmployee         Designation = "Employee"
)

// IsManager reports whether the designation carries reporting responsibility
func (d Designation) IsManager() bool {
	return d == DesignationReportingManager || d == DesignationZonalManager
}

// Person is one entry in the organizational table. Reviewer is the
// display name of the person they report to, kept as the opaque string
// from the source data: entries listing several reviewers separated by
// commas never match any single manager name.
type Person struct {
	Name        string      `yaml:"name" json:"name"`
	Designation Designation `yaml:"designation" json:"designation"`
	Reviewer    string      `yaml:"reviewer" json:"reviewer"`
	Email       string      `yaml:"email" json:"email"`
	Department  string      `yaml:"-" json:"department"`
	Team        string      `yaml:"-" json:"team"`
}

// NormalizeEmail is the canonical key form for email lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
