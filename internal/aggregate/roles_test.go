package aggregate

import (
	"testing"

	"github.com/openparl/epscore/internal/ep"
)

func TestBuildRoleRecords_TermDerivation(t *testing.T) {
	terms := ep.DefaultTermSet()
	trees := []ep.MemberRoles{
		{
			MemberID: 1,
			Committees: []ep.OfficeEntry{
				{Organization: "Committee on Budgets", Role: "Chair", Start: "2019-07-02", End: "2022-01-01"},
				// No start date: term falls back to the end date.
				{Organization: "Committee on Budgets", Role: "Member", End: "2016-06-30"},
				// Neither date usable: dropped.
				{Organization: "Committee on Budgets", Role: "Member"},
			},
			Staff: []ep.OfficeEntry{
				{Organization: "European Parliament", Role: "Vice-President", Start: "2019-07-03"},
			},
		},
	}

	records, skipped := BuildRoleRecords(trees, terms)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	byTitle := make(map[string]RoleRecord)
	for _, r := range records {
		byTitle[r.Title+"/"+string(r.Type)] = r
	}
	if r := byTitle["Chair/committee"]; r.Term != 9 || r.Role != ep.RoleCommitteeChair {
		t.Errorf("chair record = %+v", r)
	}
	if r := byTitle["Member/committee"]; r.Term != 8 || r.Role != ep.RoleCommitteeMember {
		t.Errorf("member record = %+v", r)
	}
	if r := byTitle["Vice-President/staff"]; r.Term != 9 || r.Role != ep.RoleChamberVicePresident {
		t.Errorf("vice-president record = %+v", r)
	}
}

func TestCountRoles_SkipsUnclassified(t *testing.T) {
	records := []RoleRecord{
		{MemberID: 1, Term: 9, Role: ep.RoleCommitteeChair},
		{MemberID: 1, Term: 9, Role: ep.RoleDelegationMember},
		{MemberID: 1, Term: 9, Role: ep.RoleDelegationMember},
		{MemberID: 1, Term: 9, Role: ep.RoleUnclassified, Title: "Observer"},
		{MemberID: 2, Term: 8, Role: ep.RoleQuaestor},
	}

	counts := CountRoles(records)
	c := counts[Key{1, 9}]
	if c.CommitteeChair != 1 || c.DelegationMember != 2 {
		t.Errorf("member 1 counts = %+v", c)
	}
	if counts[Key{2, 8}].Quaestor != 1 {
		t.Errorf("member 2 counts = %+v", counts[Key{2, 8}])
	}

	held := c.Held()
	want := []ep.CanonicalRole{ep.RoleCommitteeChair, ep.RoleDelegationMember}
	if len(held) != len(want) || held[0] != want[0] || held[1] != want[1] {
		t.Errorf("Held() = %v, want %v", held, want)
	}
}
