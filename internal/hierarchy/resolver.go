package hierarchy

// maxResolveDepth bounds reviewer-chain traversal. The data is
// hand-maintained, so a reviewer loop must not hang the resolver.
const maxResolveDepth = 10

// SubordinateEmails resolves the full set of employee emails that roll
// up to the given manager: employees reviewing directly to the manager,
// plus employees under zonal managers who review to the manager. Keys
// are normalized emails. Unknown emails and non-manager entries resolve
// to an empty set. The manager's own email is never part of the result.
func (idx *Index) SubordinateEmails(managerEmail string) map[string]bool {
	result := make(map[string]bool)
	visited := make(map[string]bool)
	idx.collectSubordinates(managerEmail, result, visited, 0)
	delete(result, NormalizeEmail(managerEmail))
	return result
}

func (idx *Index) collectSubordinates(managerEmail string, result, visited map[string]bool, depth int) {
	if depth > maxResolveDepth {
		return
	}
	key := NormalizeEmail(managerEmail)
	if key == "" || visited[key] {
		return
	}
	visited[key] = true

	manager := idx.LookupByEmail(managerEmail)
	if manager == nil {
		return
	}

	for _, member := range idx.MembersReportingTo(manager.Name) {
		memberKey := NormalizeEmail(member.Email)
		if memberKey == "" {
			continue
		}
		switch member.Designation {
		case DesignationEmployee:
			result[memberKey] = true
		case DesignationZonalManager:
			idx.collectSubordinates(member.Email, result, visited, depth+1)
		}
	}
}

// SubordinateCount returns the size of the resolved subordinate set.
func (idx *Index) SubordinateCount(managerEmail string) int {
	return len(idx.SubordinateEmails(managerEmail))
}
