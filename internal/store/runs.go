package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/openparl/epscore/internal/aggregate"
	"github.com/openparl/epscore/internal/ep"
)

// Run identifies one aggregation run.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Command   string    `json:"command"`
	Version   string    `json:"version"`
}

// CreateRun inserts a new run and returns its ID.
func (db *DB) CreateRun(command, version string) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, created_at, command, version) VALUES (?, ?, ?, ?)",
		id, time.Now().UTC().Format(time.RFC3339), command, version,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// LatestRun returns the most recent run, or nil if none exist.
func (db *DB) LatestRun() (*Run, error) {
	// rowid preserves insertion order even when two runs share a
	// created_at second.
	row := db.conn.QueryRow("SELECT id, created_at, command, version FROM runs ORDER BY rowid DESC LIMIT 1")
	var r Run
	var createdAt string
	err := row.Scan(&r.ID, &createdAt, &r.Command, &r.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &r, nil
}

// SaveAggregation writes a full aggregation result under one run in a
// single transaction.
func (db *DB) SaveAggregation(runID string, res aggregate.Result) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for k, c := range res.Counts {
		if _, err := tx.Exec(
			`INSERT INTO activity_counts
			(run_id, member_id, term, speeches, reports_rapporteur, reports_shadow,
			 amendments, written_questions, oral_questions, major_interpellations,
			 motions, individual_motions, opinions_rapporteur, opinions_shadow,
			 declarations, explanations)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, k.MemberID, k.Term, c.Speeches, c.ReportsRapporteur, c.ReportsShadow,
			c.Amendments, c.WrittenQuestions, c.OralQuestions, c.MajorInterpellations,
			c.Motions, c.IndividualMotions, c.OpinionsRapporteur, c.OpinionsShadow,
			c.Declarations, c.Explanations,
		); err != nil {
			return err
		}
	}

	for k, c := range res.RoleCounts {
		if _, err := tx.Exec(
			`INSERT INTO role_counts
			(run_id, member_id, term, chamber_president, chamber_vice_president,
			 quaestor, committee_chair, committee_vice_chair, committee_member,
			 committee_substitute, delegation_chair, delegation_vice_chair,
			 delegation_member, delegation_substitute)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, k.MemberID, k.Term, c.ChamberPresident, c.ChamberVicePresident,
			c.Quaestor, c.CommitteeChair, c.CommitteeViceChair, c.CommitteeMember,
			c.CommitteeSubstitute, c.DelegationChair, c.DelegationViceChair,
			c.DelegationMember, c.DelegationSubstitute,
		); err != nil {
			return err
		}
	}

	for term, byMember := range res.Attendance.ByTerm {
		for memberID, attended := range byMember {
			if _, err := tx.Exec(
				"INSERT INTO attendance (run_id, term, member_id, attended) VALUES (?, ?, ?, ?)",
				runID, term, memberID, attended,
			); err != nil {
				return err
			}
		}
	}
	for term, total := range res.Attendance.TotalVotes {
		if _, err := tx.Exec(
			"INSERT INTO term_totals (run_id, term, total_votes) VALUES (?, ?, ?)",
			runID, term, total,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadCounts reads the activity counters saved under a run.
func (db *DB) LoadCounts(runID string) (map[aggregate.Key]aggregate.ActivityCounts, error) {
	rows, err := db.conn.Query(
		`SELECT member_id, term, speeches, reports_rapporteur, reports_shadow,
		        amendments, written_questions, oral_questions, major_interpellations,
		        motions, individual_motions, opinions_rapporteur, opinions_shadow,
		        declarations, explanations
		 FROM activity_counts WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[aggregate.Key]aggregate.ActivityCounts)
	for rows.Next() {
		var k aggregate.Key
		var c aggregate.ActivityCounts
		if err := rows.Scan(
			&k.MemberID, &k.Term, &c.Speeches, &c.ReportsRapporteur, &c.ReportsShadow,
			&c.Amendments, &c.WrittenQuestions, &c.OralQuestions, &c.MajorInterpellations,
			&c.Motions, &c.IndividualMotions, &c.OpinionsRapporteur, &c.OpinionsShadow,
			&c.Declarations, &c.Explanations,
		); err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, rows.Err()
}

// LoadRoleCounts reads the role counters saved under a run.
func (db *DB) LoadRoleCounts(runID string) (map[aggregate.Key]aggregate.RoleCounts, error) {
	rows, err := db.conn.Query(
		`SELECT member_id, term, chamber_president, chamber_vice_president, quaestor,
		        committee_chair, committee_vice_chair, committee_member,
		        committee_substitute, delegation_chair, delegation_vice_chair,
		        delegation_member, delegation_substitute
		 FROM role_counts WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[aggregate.Key]aggregate.RoleCounts)
	for rows.Next() {
		var k aggregate.Key
		var c aggregate.RoleCounts
		if err := rows.Scan(
			&k.MemberID, &k.Term, &c.ChamberPresident, &c.ChamberVicePresident, &c.Quaestor,
			&c.CommitteeChair, &c.CommitteeViceChair, &c.CommitteeMember,
			&c.CommitteeSubstitute, &c.DelegationChair, &c.DelegationViceChair,
			&c.DelegationMember, &c.DelegationSubstitute,
		); err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, rows.Err()
}

// LoadAttendance reads the attendance summary saved under a run.
func (db *DB) LoadAttendance(runID string) (aggregate.Attendance, error) {
	att := aggregate.Attendance{
		ByTerm:     make(map[ep.Term]map[int64]int),
		TotalVotes: make(map[ep.Term]int),
	}

	rows, err := db.conn.Query("SELECT term, member_id, attended FROM attendance WHERE run_id = ?", runID)
	if err != nil {
		return att, err
	}
	defer rows.Close()
	for rows.Next() {
		var term ep.Term
		var memberID int64
		var attended int
		if err := rows.Scan(&term, &memberID, &attended); err != nil {
			return att, err
		}
		if att.ByTerm[term] == nil {
			att.ByTerm[term] = make(map[int64]int)
		}
		att.ByTerm[term][memberID] = attended
	}
	if err := rows.Err(); err != nil {
		return att, err
	}

	totals, err := db.conn.Query("SELECT term, total_votes FROM term_totals WHERE run_id = ?", runID)
	if err != nil {
		return att, err
	}
	defer totals.Close()
	for totals.Next() {
		var term ep.Term
		var total int
		if err := totals.Scan(&term, &total); err != nil {
			return att, err
		}
		att.TotalVotes[term] = total
	}
	return att, totals.Err()
}
