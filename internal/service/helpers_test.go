package service_test

import (
	"workreport-portal-backend/internal/hierarchy"
)

// testDepartments mirrors the shape of the production organizational
// table: reporting managers at the top of each team, zonal managers
// reviewing to them, employees reviewing to either level.
func testDepartments() []hierarchy.Department {
	return []hierarchy.Department{
		{
			Name: "Engineering",
			Teams: []hierarchy.Team{
				{
					Name: "Platform",
					Members: []hierarchy.Person{
						{Name: "Asha Rao", Designation: hierarchy.DesignationReportingManager, Reviewer: "Big Boss", Email: "asha@corp.example"},
						{Name: "Vik Mehta", Designation: hierarchy.DesignationZonalManager, Reviewer: "Asha Rao", Email: "vik@corp.example"},
						{Name: "Devi K", Designation: hierarchy.DesignationEmployee, Reviewer: "Vik Mehta", Email: "devi@corp.example"},
						{Name: "Ravi S", Designation: hierarchy.DesignationEmployee, Reviewer: "Asha Rao", Email: "ravi@corp.example"},
					},
				},
			},
		},
		{
			Name: "Operations",
			Teams: []hierarchy.Team{
				{
					Name: "Field",
					Members: []hierarchy.Person{
						{Name: "Nina P", Designation: hierarchy.DesignationReportingManager, Reviewer: "Big Boss", Email: "nina@corp.example"},
						{Name: "Omar F", Designation: hierarchy.DesignationEmployee, Reviewer: "Nina P", Email: "omar@corp.example"},
					},
				},
			},
		},
	}
}

func testIndex() *hierarchy.Index {
	departments := testDepartments()
	for di := range departments {
		for ti := range departments[di].Teams {
			team := &departments[di].Teams[ti]
			for mi := range team.Members {
				team.Members[mi].Department = departments[di].Name
				team.Members[mi].Team = team.Name
			}
		}
	}
	return hierarchy.NewIndex(departments)
}

func testPolicy(index *hierarchy.Index) *hierarchy.AccessPolicy {
	return hierarchy.NewAccessPolicy(
		index,
		[]string{"director@corp.example"},
		[]string{"viewer@corp.example"},
	)
}
