package hierarchy

// ScopeKind classifies how wide a requester's report visibility is
type ScopeKind int

const (
	// ScopeSelfOnly restricts queries to the requester's own records
	ScopeSelfOnly ScopeKind = iota
	// ScopeEmails restricts queries to an explicit set of author emails
	ScopeEmails
	// ScopeAll places no author restriction on queries
	ScopeAll
)

// Scope is the computed visibility for one requester
type Scope struct {
	Kind ScopeKind
	// Emails is populated only for ScopeEmails; keys are normalized
	Emails map[string]bool
}

// Allows reports whether a record authored by email falls inside the scope
func (s Scope) Allows(requesterEmail, authorEmail string) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeEmails:
		return s.Emails[NormalizeEmail(authorEmail)]
	default:
		return NormalizeEmail(requesterEmail) == NormalizeEmail(authorEmail)
	}
}

// AccessPolicy decides report visibility and modification rights from
// the hierarchy index plus configured allow-lists.
type AccessPolicy struct {
	index     *Index
	directors map[string]bool
	fullView  map[string]bool
}

// NewAccessPolicy builds a policy. directorEmails get unrestricted
// visibility and modification rights over every report; fullViewEmails
// get unrestricted visibility only.
func NewAccessPolicy(index *Index, directorEmails, fullViewEmails []string) *AccessPolicy {
	p := &AccessPolicy{
		index:     index,
		directors: make(map[string]bool),
		fullView:  make(map[string]bool),
	}
	for _, e := range directorEmails {
		if key := NormalizeEmail(e); key != "" {
			p.directors[key] = true
		}
	}
	for _, e := range fullViewEmails {
		if key := NormalizeEmail(e); key != "" {
			p.fullView[key] = true
		}
	}
	return p
}

// IsDirector reports whether the email is on the director allow-list
func (p *AccessPolicy) IsDirector(email string) bool {
	return p.directors[NormalizeEmail(email)]
}

// HasFullView reports whether the email may see every report
// (directors plus the configured view-only exceptions)
func (p *AccessPolicy) HasFullView(email string) bool {
	key := NormalizeEmail(email)
	return p.directors[key] || p.fullView[key]
}

// ReportQueryScope computes the visibility scope for a requester.
// Anyone absent from the hierarchy falls back to seeing only their own
// records; absence is a restriction, never an error.
func (p *AccessPolicy) ReportQueryScope(requesterEmail string) Scope {
	if p.HasFullView(requesterEmail) {
		return Scope{Kind: ScopeAll}
	}

	person := p.index.LookupByEmail(requesterEmail)
	if person == nil {
		return Scope{Kind: ScopeSelfOnly}
	}

	switch person.Designation {
	case DesignationReportingManager, DesignationZonalManager:
		emails := p.index.SubordinateEmails(requesterEmail)
		emails[NormalizeEmail(requesterEmail)] = true
		return Scope{Kind: ScopeEmails, Emails: emails}
	default:
		return Scope{Kind: ScopeSelfOnly}
	}
}

// CanModify decides edit/delete rights over a report authored by
// authorEmail. The account must carry the manager role; beyond that the
// requester must either be on the director allow-list or be the exact
// whole-string reviewer of the author. Requesters missing from the
// hierarchy are always denied unless directors.
func (p *AccessPolicy) CanModify(accountRole, requesterEmail, authorEmail string) bool {
	if accountRole != "manager" {
		return false
	}
	if p.IsDirector(requesterEmail) {
		return true
	}
	requester := p.index.LookupByEmail(requesterEmail)
	author := p.index.LookupByEmail(authorEmail)
	if requester == nil || author == nil {
		return false
	}
	return author.Reviewer == requester.Name
}
