package aggregate

import (
	"testing"

	"github.com/openparl/epscore/internal/ep"
)

func vote(id int64, ts string, ballots map[string][]ep.VoteMember) ep.Vote {
	v := ep.Vote{VoteID: id, Timestamp: ts, Ballots: make(map[string]ep.BallotSide)}
	for outcome, members := range ballots {
		v.Ballots[outcome] = ep.BallotSide{
			Total:  len(members),
			Groups: map[string][]ep.VoteMember{"GRP": members},
		}
	}
	return v
}

func TestSummarizeAttendance_Basics(t *testing.T) {
	terms := ep.DefaultTermSet()
	votes := []ep.Vote{
		vote(1, "2020-01-01T12:00:00", map[string][]ep.VoteMember{
			"+": {{MemberID: 1}, {MemberID: 2}},
			"-": {{MemberID: 3}},
		}),
		vote(2, "2020-01-02T12:00:00", map[string][]ep.VoteMember{
			"+": {{MemberID: 1}},
			"0": {{MemberID: 2}},
		}),
		vote(3, "2016-01-01T12:00:00", map[string][]ep.VoteMember{
			"+": {{MemberID: 1}},
		}),
	}

	att, skipped := SummarizeAttendance(votes, terms)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if att.TotalVotes[9] != 2 || att.TotalVotes[8] != 1 {
		t.Errorf("totals = %+v", att.TotalVotes)
	}
	if got := att.Attended(9, 1); got != 2 {
		t.Errorf("member 1 term 9 = %d, want 2", got)
	}
	if got := att.Attended(9, 2); got != 2 {
		t.Errorf("member 2 term 9 = %d, want 2", got)
	}
	if got := att.Attended(9, 3); got != 1 {
		t.Errorf("member 3 term 9 = %d, want 1", got)
	}
	if got := att.Attended(8, 1); got != 1 {
		t.Errorf("member 1 term 8 = %d, want 1", got)
	}
}

func TestSummarizeAttendance_DedupesWithinVote(t *testing.T) {
	terms := ep.DefaultTermSet()
	// Member 1 shows up in two outcome groups of the same vote; they
	// still attended it exactly once.
	v := ep.Vote{
		VoteID:    1,
		Timestamp: "2020-01-01T12:00:00",
		Ballots: map[string]ep.BallotSide{
			"+": {Groups: map[string][]ep.VoteMember{
				"A": {{MemberID: 1}},
				"B": {{MemberID: 1}},
			}},
			"0": {Groups: map[string][]ep.VoteMember{
				"A": {{MemberID: 1}},
			}},
		},
	}

	att, _ := SummarizeAttendance([]ep.Vote{v}, terms)
	if got := att.Attended(9, 1); got != 1 {
		t.Errorf("attendance = %d, want 1", got)
	}
}

func TestSummarizeAttendance_DiscardsUnclassified(t *testing.T) {
	terms := ep.DefaultTermSet()
	votes := []ep.Vote{
		vote(1, "1990-01-01T12:00:00", map[string][]ep.VoteMember{"+": {{MemberID: 1}}}),
		vote(2, "", nil),
	}

	att, skipped := SummarizeAttendance(votes, terms)
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(att.TotalVotes) != 0 {
		t.Errorf("totals = %+v, want empty", att.TotalVotes)
	}
}
