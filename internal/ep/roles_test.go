package ep

import "testing"

func TestClassifyRole_CommitteeAndDelegation(t *testing.T) {
	cases := []struct {
		typ   RoleType
		org   string
		title string
		want  CanonicalRole
		ok    bool
	}{
		{RoleTypeCommittee, "Committee on Budgets", "Chair", RoleCommitteeChair, true},
		{RoleTypeCommittee, "Committee on Budgets", "Vice-Chair", RoleCommitteeViceChair, true},
		{RoleTypeCommittee, "Committee on Budgets", "Member", RoleCommitteeMember, true},
		{RoleTypeCommittee, "Committee on Budgets", "Substitute", RoleCommitteeSubstitute, true},
		{RoleTypeCommittee, "Committee on Budgets", "Substitute member", RoleCommitteeSubstitute, true},
		{RoleTypeDelegation, "Delegation for relations with Japan", "Chair", RoleDelegationChair, true},
		{RoleTypeDelegation, "Delegation for relations with Japan", "Vice-Chair", RoleDelegationViceChair, true},
		{RoleTypeDelegation, "Delegation for relations with Japan", "Member", RoleDelegationMember, true},
		{RoleTypeDelegation, "Delegation for relations with Japan", "Deputy Member", RoleDelegationSubstitute, true},
		// "president" inside a committee or delegation is its internal
		// chair, never a chamber office.
		{RoleTypeDelegation, "Delegation to the ACP-EU JPA", "President", RoleDelegationChair, true},
		{RoleTypeDelegation, "Delegation to the ACP-EU JPA", "Vice-President", RoleDelegationViceChair, true},
		{RoleTypeCommittee, "Committee of Inquiry", "Observer", RoleUnclassified, false},
	}
	for _, tc := range cases {
		got, ok := ClassifyRole(tc.typ, tc.org, tc.title)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ClassifyRole(%s, %q, %q) = (%q, %v), want (%q, %v)",
				tc.typ, tc.org, tc.title, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassifyRole_ChamberOffices(t *testing.T) {
	cases := []struct {
		org   string
		title string
		want  CanonicalRole
		ok    bool
	}{
		{"European Parliament", "President", RoleChamberPresident, true},
		{"European Parliament", "Vice-President", RoleChamberVicePresident, true},
		{"European Parliament", "Quaestor", RoleQuaestor, true},
		// Chamber titles only count under the Parliament itself.
		{"Conference of Presidents", "President", RoleUnclassified, false},
		{"Renew Europe Group", "Co-President", RoleUnclassified, false},
		// A title mentioning a committee or delegation is not a chamber
		// office even when filed under the Parliament.
		{"European Parliament", "Vice-President of the Delegation for relations with Canada", RoleUnclassified, false},
		{"European Parliament", "President of the Committee on Budgets", RoleUnclassified, false},
	}
	for _, tc := range cases {
		got, ok := ClassifyRole(RoleTypeStaff, tc.org, tc.title)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ClassifyRole(staff, %q, %q) = (%q, %v), want (%q, %v)",
				tc.org, tc.title, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassifyRole_CaseInsensitive(t *testing.T) {
	if got, ok := ClassifyRole(RoleTypeCommittee, "committee on budgets", "CHAIR"); !ok || got != RoleCommitteeChair {
		t.Errorf("upper-case title = (%q, %v), want (committee_chair, true)", got, ok)
	}
	if got, ok := ClassifyRole(RoleTypeStaff, "EUROPEAN PARLIAMENT", "quaestor"); !ok || got != RoleQuaestor {
		t.Errorf("mixed-case org = (%q, %v), want (quaestor, true)", got, ok)
	}
}
