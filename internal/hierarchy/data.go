package hierarchy

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed orgdata.yaml
var embeddedOrgData []byte

// Team is one named team inside a department
type Team struct {
	Name    string   `yaml:"name" json:"name"`
	Members []Person `yaml:"members" json:"members"`
}

// Department groups teams; order follows the source data
type Department struct {
	Name  string `yaml:"name" json:"name"`
	Teams []Team `yaml:"teams" json:"teams"`
}

type orgFile struct {
	Departments []Department `yaml:"departments"`
}

// LoadEmbedded parses the organizational table compiled into the binary
func LoadEmbedded() ([]Department, error) {
	return parseOrgData(embeddedOrgData)
}

// LoadFile parses an organizational table from an external YAML file.
// Used when the deployment overrides the embedded table via configuration.
func LoadFile(path string) ([]Department, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read org data file: %w", err)
	}
	return parseOrgData(b)
}

func parseOrgData(b []byte) ([]Department, error) {
	var f orgFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse org data: %w", err)
	}
	if len(f.Departments) == 0 {
		return nil, fmt.Errorf("org data contains no departments")
	}
	// Stamp department/team onto each person so lookups carry unit context
	for di := range f.Departments {
		dept := &f.Departments[di]
		for ti := range dept.Teams {
			team := &dept.Teams[ti]
			for mi := range team.Members {
				team.Members[mi].Department = dept.Name
				team.Members[mi].Team = team.Name
			}
		}
	}
	return f.Departments, nil
}
