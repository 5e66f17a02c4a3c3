package hierarchy

// Index is a read-only view over the organizational table. It is built
// once at startup and shared by reference; it must never be mutated
// after construction.
type Index struct {
	departments []Department
	people      []Person
	byEmail     map[string]*Person
	byReviewer  map[string][]Person
	managers    []Person
}

// NewIndex builds lookup structures over the given departments.
func NewIndex(departments []Department) *Index {
	idx := &Index{
		departments: departments,
		byEmail:     make(map[string]*Person),
		byReviewer:  make(map[string][]Person),
	}

	for _, dept := range departments {
		for _, team := range dept.Teams {
			for _, p := range team.Members {
				idx.people = append(idx.people, p)
			}
		}
	}

	seenManagers := make(map[string]bool)
	for i := range idx.people {
		p := &idx.people[i]
		if key := NormalizeEmail(p.Email); key != "" {
			if _, dup := idx.byEmail[key]; !dup {
				idx.byEmail[key] = p
			}
		}
		if p.Reviewer != "" {
			idx.byReviewer[p.Reviewer] = append(idx.byReviewer[p.Reviewer], *p)
		}
		if p.Designation.IsManager() {
			key := NormalizeEmail(p.Email)
			if key != "" && !seenManagers[key] {
				idx.managers = append(idx.managers, *p)
				seenManagers[key] = true
			}
		}
	}

	return idx
}

// LookupByEmail finds a person by email, trimming and lowercasing the
// input before comparison. Returns nil when no entry matches.
func (idx *Index) LookupByEmail(email string) *Person {
	key := NormalizeEmail(email)
	if key == "" {
		return nil
	}
	return idx.byEmail[key]
}

// MembersReportingTo returns everyone whose reviewer field equals
// managerName as a whole string. Comma-separated multi-reviewer values
// in the data only match when the query string is byte-identical.
func (idx *Index) MembersReportingTo(managerName string) []Person {
	if managerName == "" {
		return nil
	}
	members := idx.byReviewer[managerName]
	out := make([]Person, len(members))
	copy(out, members)
	return out
}

// Managers returns every person designated Reporting manager or Zonal
// Managers, deduplicated by normalized email, in data order.
func (idx *Index) Managers() []Person {
	out := make([]Person, len(idx.managers))
	copy(out, idx.managers)
	return out
}

// Departments returns the full organizational table in source order.
func (idx *Index) Departments() []Department {
	return idx.departments
}

// People returns every person in the table in source order.
func (idx *Index) People() []Person {
	out := make([]Person, len(idx.people))
	copy(out, idx.people)
	return out
}
