package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			created_at  TEXT NOT NULL,
			command     TEXT NOT NULL,
			version     TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS activity_counts (
			run_id                TEXT NOT NULL REFERENCES runs(id),
			member_id             INTEGER NOT NULL,
			term                  INTEGER NOT NULL,
			speeches              INTEGER NOT NULL DEFAULT 0,
			reports_rapporteur    INTEGER NOT NULL DEFAULT 0,
			reports_shadow        INTEGER NOT NULL DEFAULT 0,
			amendments            INTEGER NOT NULL DEFAULT 0,
			written_questions     INTEGER NOT NULL DEFAULT 0,
			oral_questions        INTEGER NOT NULL DEFAULT 0,
			major_interpellations INTEGER NOT NULL DEFAULT 0,
			motions               INTEGER NOT NULL DEFAULT 0,
			individual_motions    INTEGER NOT NULL DEFAULT 0,
			opinions_rapporteur   INTEGER NOT NULL DEFAULT 0,
			opinions_shadow       INTEGER NOT NULL DEFAULT 0,
			declarations          INTEGER NOT NULL DEFAULT 0,
			explanations          INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, member_id, term)
		)`,

		`CREATE TABLE IF NOT EXISTS role_counts (
			run_id                 TEXT NOT NULL REFERENCES runs(id),
			member_id              INTEGER NOT NULL,
			term                   INTEGER NOT NULL,
			chamber_president      INTEGER NOT NULL DEFAULT 0,
			chamber_vice_president INTEGER NOT NULL DEFAULT 0,
			quaestor               INTEGER NOT NULL DEFAULT 0,
			committee_chair        INTEGER NOT NULL DEFAULT 0,
			committee_vice_chair   INTEGER NOT NULL DEFAULT 0,
			committee_member       INTEGER NOT NULL DEFAULT 0,
			committee_substitute   INTEGER NOT NULL DEFAULT 0,
			delegation_chair       INTEGER NOT NULL DEFAULT 0,
			delegation_vice_chair  INTEGER NOT NULL DEFAULT 0,
			delegation_member      INTEGER NOT NULL DEFAULT 0,
			delegation_substitute  INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, member_id, term)
		)`,

		`CREATE TABLE IF NOT EXISTS attendance (
			run_id    TEXT NOT NULL REFERENCES runs(id),
			term      INTEGER NOT NULL,
			member_id INTEGER NOT NULL,
			attended  INTEGER NOT NULL,
			PRIMARY KEY (run_id, term, member_id)
		)`,

		`CREATE TABLE IF NOT EXISTS term_totals (
			run_id      TEXT NOT NULL REFERENCES runs(id),
			term        INTEGER NOT NULL,
			total_votes INTEGER NOT NULL,
			PRIMARY KEY (run_id, term)
		)`,

		`CREATE TABLE IF NOT EXISTS members (
			member_id   INTEGER PRIMARY KEY,
			full_name   TEXT NOT NULL,
			country     TEXT,
			party_group TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS scores (
			run_id                 TEXT NOT NULL REFERENCES runs(id),
			member_id              INTEGER NOT NULL,
			term                   INTEGER NOT NULL,
			full_name              TEXT,
			country                TEXT,
			party_group            TEXT,
			legislative_production REAL NOT NULL,
			control_transparency   REAL NOT NULL,
			engagement_presence    REAL NOT NULL,
			institutional_roles    REAL NOT NULL,
			final_raw              REAL NOT NULL,
			final_score            REAL NOT NULL,
			rank                   INTEGER NOT NULL,
			breakdown              TEXT NOT NULL,
			PRIMARY KEY (run_id, member_id, term)
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_activity_counts_term ON activity_counts(run_id, term)`,
		`CREATE INDEX IF NOT EXISTS idx_role_counts_term ON role_counts(run_id, term)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_term_rank ON scores(run_id, term, rank)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
