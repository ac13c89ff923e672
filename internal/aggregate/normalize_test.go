package aggregate

import (
	"testing"

	"github.com/openparl/epscore/internal/ep"
)

func TestCountsFromBundles_VerbatimTerms(t *testing.T) {
	bundles := []ep.MemberActivity{
		{MemberID: 7, Activities: map[string][]ep.ActivityItem{
			ep.TagSpeech:            {{Term: 9}, {Term: 9}, {Term: 10}},
			ep.TagMotion:            {{Term: 9}},
			ep.TagOpinionRapporteur: {{Term: 8}},
			// Term carried on the item is trusted even when the item
			// has a contradicting date.
			ep.TagExplanationOfVote: {{Term: 8, Date: "2021-01-01"}},
		}},
	}

	got, skipped := CountsFromBundles(bundles)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if c := got[Key{7, 9}]; c.Speeches != 2 || c.Motions != 1 {
		t.Errorf("term 9 = %+v", c)
	}
	if c := got[Key{7, 10}]; c.Speeches != 1 {
		t.Errorf("term 10 = %+v", c)
	}
	if c := got[Key{7, 8}]; c.OpinionsRapporteur != 1 || c.Explanations != 1 {
		t.Errorf("term 8 = %+v", c)
	}
}

func TestCountsFromBundles_SkipsUnusableItems(t *testing.T) {
	bundles := []ep.MemberActivity{
		{MemberID: 7, Activities: map[string][]ep.ActivityItem{
			ep.TagSpeech: {{Term: 0}, {Term: 9}},
			"UNKNOWN":    {{Term: 9}},
		}},
	}

	got, skipped := CountsFromBundles(bundles)
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if c := got[Key{7, 9}]; c.Speeches != 1 {
		t.Errorf("counts = %+v, want 1 speech", c)
	}
}

func TestCountsFromAmendments_DoubleListing(t *testing.T) {
	terms := ep.DefaultTermSet()
	ams := []ep.Amendment{
		// Member 3 listed twice on one amendment counts twice; the dump
		// is taken as published.
		{Date: "2020-02-01", MemberIDs: []int64{3, 3, 4}},
		{Date: "2016-05-01", MemberIDs: []int64{3}},
		{Date: "", MemberIDs: []int64{3}},           // no date
		{Date: "2001-01-01", MemberIDs: []int64{3}}, // before every window
	}

	got, skipped := CountsFromAmendments(ams, terms)
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if c := got[Key{3, 9}]; c.Amendments != 2 {
		t.Errorf("member 3 term 9 amendments = %d, want 2", c.Amendments)
	}
	if c := got[Key{4, 9}]; c.Amendments != 1 {
		t.Errorf("member 4 term 9 amendments = %d, want 1", c.Amendments)
	}
	if c := got[Key{3, 8}]; c.Amendments != 1 {
		t.Errorf("member 3 term 8 amendments = %d, want 1", c.Amendments)
	}
}

func TestCountsFromVotes_RapporteurAndShadow(t *testing.T) {
	terms := ep.DefaultTermSet()
	votes := []ep.Vote{
		{
			VoteID:     1,
			Timestamp:  "2020-06-01T12:00:00",
			Rapporteur: []ep.VoteMember{{MemberID: 5}},
			Shadows:    []ep.VoteMember{{MemberID: 6}, {MemberID: 7}},
		},
		{
			VoteID:    2,
			Timestamp: "not-a-date",
			Shadows:   []ep.VoteMember{{MemberID: 6}},
		},
	}

	got, skipped := CountsFromVotes(votes, terms)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if c := got[Key{5, 9}]; c.ReportsRapporteur != 1 || c.ReportsShadow != 0 {
		t.Errorf("member 5 = %+v", c)
	}
	if c := got[Key{6, 9}]; c.ReportsShadow != 1 {
		t.Errorf("member 6 = %+v", c)
	}
	if c := got[Key{7, 9}]; c.ReportsShadow != 1 {
		t.Errorf("member 7 = %+v", c)
	}
}
