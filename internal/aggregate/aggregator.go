package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/openparl/epscore/internal/ep"
)

// Sources bundles the raw inputs of one aggregation run. Every slice may
// be nil; a missing source degrades to a zero contribution rather than an
// error.
type Sources struct {
	Bundles    []ep.MemberActivity
	Amendments []ep.Amendment
	Votes      []ep.Vote
	Roles      []ep.MemberRoles
}

// Stats counts records skipped during a run, for caller-side logging.
// Skips are expected data sparsity, not failures.
type Stats struct {
	BundleItems int `json:"bundle_items_skipped"`
	Amendments  int `json:"amendments_skipped"`
	Votes       int `json:"votes_skipped"`
	RoleEntries int `json:"role_entries_skipped"`
	Ballots     int `json:"ballot_votes_skipped"`
}

// Result is the complete output of one aggregation run.
type Result struct {
	Counts      map[Key]ActivityCounts
	RoleCounts  map[Key]RoleCounts
	RoleRecords []RoleRecord
	Attendance  Attendance
	Stats       Stats
}

// Run aggregates all sources into per-(member, term) counts. The three
// activity sources cover disjoint counters, so the merge is a plain
// field-wise sum and re-running on the same inputs reproduces the same
// result. The per-source passes share nothing until the final merge, so
// they run concurrently; each pass itself stays single-writer.
func Run(ctx context.Context, src Sources, terms ep.TermSet) (Result, error) {
	var (
		res                             Result
		fromBundles, fromAms, fromVotes map[Key]ActivityCounts
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		fromBundles, res.Stats.BundleItems = CountsFromBundles(src.Bundles)
		return nil
	})
	g.Go(func() error {
		fromAms, res.Stats.Amendments = CountsFromAmendments(src.Amendments, terms)
		return nil
	})
	g.Go(func() error {
		fromVotes, res.Stats.Votes = CountsFromVotes(src.Votes, terms)
		return nil
	})
	g.Go(func() error {
		res.RoleRecords, res.Stats.RoleEntries = BuildRoleRecords(src.Roles, terms)
		return nil
	})
	g.Go(func() error {
		res.Attendance, res.Stats.Ballots = SummarizeAttendance(src.Votes, terms)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res.Counts = Merge(fromBundles, fromAms, fromVotes)
	res.RoleCounts = CountRoles(res.RoleRecords)
	return res, nil
}

// MembersInTerm returns the distinct member IDs present in either count
// map for the given term. This is the scoring cohort for that term.
func (r Result) MembersInTerm(term ep.Term) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for k := range r.Counts {
		if k.Term == term && !seen[k.MemberID] {
			seen[k.MemberID] = true
			ids = append(ids, k.MemberID)
		}
	}
	for k := range r.RoleCounts {
		if k.Term == term && !seen[k.MemberID] {
			seen[k.MemberID] = true
			ids = append(ids, k.MemberID)
		}
	}
	return ids
}
