package app

import (
	"fmt"
	"sort"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/config"
	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/output"
	"github.com/openparl/epscore/internal/scoring"
	"github.com/openparl/epscore/internal/store"
)

// loadSources reads every dump file from the data directory. Each source
// is optional; missing files leave their slice nil and the run degrades
// to whatever data is present.
func loadSources(dataDir string) (aggregate.Sources, ep.Roster, error) {
	var src aggregate.Sources

	bundles, err := ep.LoadMemberActivities(dataDir)
	if err != nil {
		return src, nil, fmt.Errorf("loading activity bundles: %w", err)
	}
	src.Bundles = bundles

	ams, err := ep.LoadAmendments(dataDir)
	if err != nil {
		return src, nil, fmt.Errorf("loading amendments: %w", err)
	}
	src.Amendments = ams

	votes, skipped, err := ep.LoadVotes(dataDir)
	if err != nil {
		return src, nil, fmt.Errorf("loading votes: %w", err)
	}
	if flagVerbose && skipped > 0 {
		fmt.Printf("votes: skipped %d malformed lines\n", skipped)
	}
	src.Votes = votes

	roles, err := ep.LoadRoles(dataDir)
	if err != nil {
		return src, nil, fmt.Errorf("loading roles: %w", err)
	}
	src.Roles = roles

	roster, err := ep.LoadRoster(dataDir)
	if err != nil {
		return src, nil, fmt.Errorf("loading roster: %w", err)
	}
	return src, roster, nil
}

// buildCohort assembles the scoring inputs for one term from aggregated
// counts, role counts, attendance and the roster. The cohort is every
// member with any counted activity or role in the term, in ascending
// member-ID order so runs are reproducible.
func buildCohort(
	term ep.Term,
	counts map[aggregate.Key]aggregate.ActivityCounts,
	roleCounts map[aggregate.Key]aggregate.RoleCounts,
	att aggregate.Attendance,
	roster ep.Roster,
) []scoring.MemberInput {
	seen := make(map[int64]bool)
	var ids []int64
	for k := range counts {
		if k.Term == term && !seen[k.MemberID] {
			seen[k.MemberID] = true
			ids = append(ids, k.MemberID)
		}
	}
	for k := range roleCounts {
		if k.Term == term && !seen[k.MemberID] {
			seen[k.MemberID] = true
			ids = append(ids, k.MemberID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := att.TotalVotes[term]
	cohort := make([]scoring.MemberInput, 0, len(ids))
	for _, id := range ids {
		key := aggregate.Key{MemberID: id, Term: term}
		in := scoring.MemberInput{
			MemberID:      id,
			Counts:        counts[key],
			Roles:         roleCounts[key].Held(),
			VotesAttended: att.Attended(term, id),
			TotalVotes:    total,
		}
		if m, ok := roster[id]; ok {
			in.FullName = m.FullName
			in.Country = m.Country
			in.Group = m.Group
		}
		cohort = append(cohort, in)
	}
	return cohort
}

// openStore opens the configured (or default) database.
func openStore() (*store.DB, error) {
	path := flagDB
	if path == "" {
		path = config.DBPath()
	}
	return store.Open(path)
}

// applyOutputFlags reconciles config and flags for terminal styling.
func applyOutputFlags(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
}
