package aggregate

import "github.com/openparl/epscore/internal/ep"

// RoleRecord is one flattened office entry with its derived term and
// canonical role. Records with an unclassifiable title keep
// ep.RoleUnclassified as their Role; they are preserved for audit but
// never counted.
type RoleRecord struct {
	MemberID     int64            `json:"member_id"`
	Term         ep.Term          `json:"term"`
	Type         ep.RoleType      `json:"role_type"`
	Organization string           `json:"organization"`
	Abbr         string           `json:"organization_abbr,omitempty"`
	Title        string           `json:"title"`
	Role         ep.CanonicalRole `json:"canonical_role,omitempty"`
	Start        string           `json:"start,omitempty"`
	End          string           `json:"end,omitempty"`
}

// BuildRoleRecords flattens the per-MEP role trees into RoleRecords. The
// term is derived from the office start date, falling back to the end
// date; entries with no derivable term are dropped and tallied in the
// returned skip count.
func BuildRoleRecords(trees []ep.MemberRoles, terms ep.TermSet) ([]RoleRecord, int) {
	var records []RoleRecord
	skipped := 0
	for _, tree := range trees {
		for _, branch := range []struct {
			typ     ep.RoleType
			entries []ep.OfficeEntry
		}{
			{ep.RoleTypeCommittee, tree.Committees},
			{ep.RoleTypeDelegation, tree.Delegations},
			{ep.RoleTypeStaff, tree.Staff},
		} {
			for _, entry := range branch.entries {
				term := terms.Classify(entry.Start)
				if term == ep.TermNone {
					term = terms.Classify(entry.End)
				}
				if term == ep.TermNone {
					skipped++
					continue
				}
				role, _ := ep.ClassifyRole(branch.typ, entry.Organization, entry.Role)
				records = append(records, RoleRecord{
					MemberID:     tree.MemberID,
					Term:         term,
					Type:         branch.typ,
					Organization: entry.Organization,
					Abbr:         entry.Abbr,
					Title:        entry.Role,
					Role:         role,
					Start:        entry.Start,
					End:          entry.End,
				})
			}
		}
	}
	return records, skipped
}

// RoleCounts holds the eleven canonical-role counters for one key.
type RoleCounts struct {
	ChamberPresident     int `json:"chamber_president"`
	ChamberVicePresident int `json:"chamber_vice_president"`
	Quaestor             int `json:"quaestor"`
	CommitteeChair       int `json:"committee_chair"`
	CommitteeViceChair   int `json:"committee_vice_chair"`
	CommitteeMember      int `json:"committee_member"`
	CommitteeSubstitute  int `json:"committee_substitute"`
	DelegationChair      int `json:"delegation_chair"`
	DelegationViceChair  int `json:"delegation_vice_chair"`
	DelegationMember     int `json:"delegation_member"`
	DelegationSubstitute int `json:"delegation_substitute"`
}

// add bumps the counter for one canonical role. Unclassified roles are
// ignored.
func (c *RoleCounts) add(role ep.CanonicalRole) {
	switch role {
	case ep.RoleChamberPresident:
		c.ChamberPresident++
	case ep.RoleChamberVicePresident:
		c.ChamberVicePresident++
	case ep.RoleQuaestor:
		c.Quaestor++
	case ep.RoleCommitteeChair:
		c.CommitteeChair++
	case ep.RoleCommitteeViceChair:
		c.CommitteeViceChair++
	case ep.RoleCommitteeMember:
		c.CommitteeMember++
	case ep.RoleCommitteeSubstitute:
		c.CommitteeSubstitute++
	case ep.RoleDelegationChair:
		c.DelegationChair++
	case ep.RoleDelegationViceChair:
		c.DelegationViceChair++
	case ep.RoleDelegationMember:
		c.DelegationMember++
	case ep.RoleDelegationSubstitute:
		c.DelegationSubstitute++
	}
}

// Held returns the distinct canonical roles with a non-zero counter, in
// the stable ep.CanonicalRoles order.
func (c RoleCounts) Held() []ep.CanonicalRole {
	counters := map[ep.CanonicalRole]int{
		ep.RoleChamberPresident:     c.ChamberPresident,
		ep.RoleChamberVicePresident: c.ChamberVicePresident,
		ep.RoleQuaestor:             c.Quaestor,
		ep.RoleCommitteeChair:       c.CommitteeChair,
		ep.RoleCommitteeViceChair:   c.CommitteeViceChair,
		ep.RoleCommitteeMember:      c.CommitteeMember,
		ep.RoleCommitteeSubstitute:  c.CommitteeSubstitute,
		ep.RoleDelegationChair:      c.DelegationChair,
		ep.RoleDelegationViceChair:  c.DelegationViceChair,
		ep.RoleDelegationMember:     c.DelegationMember,
		ep.RoleDelegationSubstitute: c.DelegationSubstitute,
	}
	var held []ep.CanonicalRole
	for _, role := range ep.CanonicalRoles {
		if counters[role] > 0 {
			held = append(held, role)
		}
	}
	return held
}

// CountRoles tallies classified role records per (member, term).
// Unclassified records pass through untouched.
func CountRoles(records []RoleRecord) map[Key]RoleCounts {
	out := make(map[Key]RoleCounts)
	for _, r := range records {
		if r.Role == ep.RoleUnclassified {
			continue
		}
		c := out[Key{MemberID: r.MemberID, Term: r.Term}]
		c.add(r.Role)
		out[Key{MemberID: r.MemberID, Term: r.Term}] = c
	}
	return out
}
