package aggregate

import "github.com/openparl/epscore/internal/ep"

// Attendance is the compact reduction of the roll-call vote dump used by
// the engagement axis: how many votes each member took part in per term,
// and how many distinct votes each term held in total.
type Attendance struct {
	ByTerm     map[ep.Term]map[int64]int `json:"by_term"`
	TotalVotes map[ep.Term]int           `json:"total_votes"`
}

// Attended returns the attendance count for one member in one term.
func (a Attendance) Attended(term ep.Term, memberID int64) int {
	return a.ByTerm[term][memberID]
}

// SummarizeAttendance reduces the vote stream. Votes whose timestamp does
// not classify into a term are dropped. The per-term total counts distinct
// vote identifiers, and a member is credited at most once per vote no
// matter how many ballot groups list them; the dump occasionally carries
// duplicate entries and those must not inflate attendance.
func SummarizeAttendance(votes []ep.Vote, terms ep.TermSet) (Attendance, int) {
	att := Attendance{
		ByTerm:     make(map[ep.Term]map[int64]int),
		TotalVotes: make(map[ep.Term]int),
	}
	seenVotes := make(map[ep.Term]map[int64]bool)
	skipped := 0

	for _, v := range votes {
		term := terms.Classify(v.Timestamp)
		if term == ep.TermNone {
			skipped++
			continue
		}

		if seenVotes[term] == nil {
			seenVotes[term] = make(map[int64]bool)
		}
		if !seenVotes[term][v.VoteID] {
			seenVotes[term][v.VoteID] = true
			att.TotalVotes[term]++
		}

		if att.ByTerm[term] == nil {
			att.ByTerm[term] = make(map[int64]int)
		}
		voted := make(map[int64]bool)
		for _, outcome := range []string{"+", "-", "0"} {
			side, ok := v.Ballots[outcome]
			if !ok {
				continue
			}
			for _, group := range side.Groups {
				for _, m := range group {
					if voted[m.MemberID] {
						continue
					}
					voted[m.MemberID] = true
					att.ByTerm[term][m.MemberID]++
				}
			}
		}
	}
	return att, skipped
}
