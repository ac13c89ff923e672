package store

import (
	"encoding/json"

	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/scoring"
)

// SaveScores writes a ranked score list for one term under a run. The
// full per-indicator breakdown is stored as JSON alongside the axis
// columns so downstream consumers can audit every intermediate value.
func (db *DB) SaveScores(runID string, results []scoring.Result) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range results {
		breakdown, err := json.Marshal(r.Indicators)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO scores
			(run_id, member_id, term, full_name, country, party_group,
			 legislative_production, control_transparency, engagement_presence,
			 institutional_roles, final_raw, final_score, rank, breakdown)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.MemberID, r.Term, r.FullName, r.Country, r.Group,
			r.Axes.LegislativeProduction, r.Axes.ControlTransparency,
			r.Axes.EngagementPresence, r.Axes.InstitutionalRoles,
			r.FinalRaw, r.FinalScore, r.Rank, string(breakdown),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadScores reads the ranked score list for one term under a run,
// ordered by rank.
func (db *DB) LoadScores(runID string, term ep.Term) ([]scoring.Result, error) {
	rows, err := db.conn.Query(
		`SELECT member_id, full_name, country, party_group,
		        legislative_production, control_transparency, engagement_presence,
		        institutional_roles, final_raw, final_score, rank, breakdown
		 FROM scores WHERE run_id = ? AND term = ? ORDER BY rank`, runID, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []scoring.Result
	for rows.Next() {
		r := scoring.Result{Term: term}
		var breakdown string
		if err := rows.Scan(
			&r.MemberID, &r.FullName, &r.Country, &r.Group,
			&r.Axes.LegislativeProduction, &r.Axes.ControlTransparency,
			&r.Axes.EngagementPresence, &r.Axes.InstitutionalRoles,
			&r.FinalRaw, &r.FinalScore, &r.Rank, &breakdown,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(breakdown), &r.Indicators); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SaveRoster upserts the member roster.
func (db *DB) SaveRoster(roster ep.Roster) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range roster {
		if _, err := tx.Exec(
			`INSERT INTO members (member_id, full_name, country, party_group)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(member_id) DO UPDATE SET
			   full_name = excluded.full_name,
			   country = excluded.country,
			   party_group = excluded.party_group`,
			m.ID, m.FullName, m.Country, m.Group,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadRoster reads the member roster.
func (db *DB) LoadRoster() (ep.Roster, error) {
	rows, err := db.conn.Query("SELECT member_id, full_name, country, party_group FROM members")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make(ep.Roster)
	for rows.Next() {
		var m ep.Member
		if err := rows.Scan(&m.ID, &m.FullName, &m.Country, &m.Group); err != nil {
			return nil, err
		}
		roster[m.ID] = m
	}
	return roster, rows.Err()
}
