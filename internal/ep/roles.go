package ep

import "strings"

// RoleType distinguishes where in the role tree an office entry came from.
type RoleType string

// Role tree branches.
const (
	RoleTypeCommittee  RoleType = "committee"
	RoleTypeDelegation RoleType = "delegation"
	RoleTypeStaff      RoleType = "staff"
	RoleTypeChamber    RoleType = "chamber"
)

// CanonicalRole is a normalized role key derived from a free-text office
// title. RoleUnclassified marks titles that match nothing; those stay
// visible as raw records but are never counted or scored.
type CanonicalRole string

// The closed set of canonical role keys.
const (
	RoleUnclassified         CanonicalRole = ""
	RoleChamberPresident     CanonicalRole = "chamber_president"
	RoleChamberVicePresident CanonicalRole = "chamber_vice_president"
	RoleQuaestor             CanonicalRole = "quaestor"
	RoleCommitteeChair       CanonicalRole = "committee_chair"
	RoleCommitteeViceChair   CanonicalRole = "committee_vice_chair"
	RoleCommitteeMember      CanonicalRole = "committee_member"
	RoleCommitteeSubstitute  CanonicalRole = "committee_substitute"
	RoleDelegationChair      CanonicalRole = "delegation_chair"
	RoleDelegationViceChair  CanonicalRole = "delegation_vice_chair"
	RoleDelegationMember     CanonicalRole = "delegation_member"
	RoleDelegationSubstitute CanonicalRole = "delegation_substitute"
)

// CanonicalRoles lists every countable role key in a stable order.
var CanonicalRoles = []CanonicalRole{
	RoleChamberPresident,
	RoleChamberVicePresident,
	RoleQuaestor,
	RoleCommitteeChair,
	RoleCommitteeViceChair,
	RoleCommitteeMember,
	RoleCommitteeSubstitute,
	RoleDelegationChair,
	RoleDelegationViceChair,
	RoleDelegationMember,
	RoleDelegationSubstitute,
}

// chamberOrg is the organization name under which chamber-level offices
// (President, Vice-President, Quaestor) are published.
const chamberOrg = "european parliament"

// ClassifyRole maps a free-text office title to its canonical role key.
// Matching is case-insensitive substring matching over the title.
//
// Chamber leadership titles only count when the organization is the
// Parliament itself, and only when the title does not also mention a
// committee or delegation: a delegation's internal "Vice-President" office
// is a delegation office, not a chamber vice-presidency. Within committees
// and delegations, "president" and "chair" are synonyms, and "vice" turns
// either into the vice-chair key.
//
// The second return value is false for titles that match nothing; such
// entries are kept as raw records for audit but excluded from counting.
func ClassifyRole(roleType RoleType, organization, title string) (CanonicalRole, bool) {
	t := strings.ToLower(title)
	org := strings.ToLower(strings.TrimSpace(organization))
	vice := strings.Contains(t, "vice")

	mentionsBody := strings.Contains(t, "committee") || strings.Contains(t, "delegation")

	switch roleType {
	case RoleTypeStaff, RoleTypeChamber:
		if org != chamberOrg || mentionsBody {
			return RoleUnclassified, false
		}
		switch {
		case strings.Contains(t, "quaestor"):
			return RoleQuaestor, true
		case strings.Contains(t, "president") && vice:
			return RoleChamberVicePresident, true
		case strings.Contains(t, "president"):
			return RoleChamberPresident, true
		}
		return RoleUnclassified, false

	case RoleTypeCommittee:
		return classifyBodyRole(t, vice, RoleCommitteeChair, RoleCommitteeViceChair, RoleCommitteeMember, RoleCommitteeSubstitute)

	case RoleTypeDelegation:
		return classifyBodyRole(t, vice, RoleDelegationChair, RoleDelegationViceChair, RoleDelegationMember, RoleDelegationSubstitute)
	}

	return RoleUnclassified, false
}

func classifyBodyRole(title string, vice bool, chair, viceChair, member, substitute CanonicalRole) (CanonicalRole, bool) {
	switch {
	case strings.Contains(title, "chair") || strings.Contains(title, "president"):
		if vice {
			return viceChair, true
		}
		return chair, true
	case strings.Contains(title, "substitute") || strings.Contains(title, "deputy"):
		return substitute, true
	case strings.Contains(title, "member"):
		return member, true
	}
	return RoleUnclassified, false
}
