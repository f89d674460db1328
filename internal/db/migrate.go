package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Column additions re-run against already-upgraded tables.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL UNIQUE COLLATE NOCASE,
		category          TEXT NOT NULL DEFAULT '',
		primary_muscle    TEXT NOT NULL,
		secondary_muscles TEXT NOT NULL DEFAULT '',
		equipment_type    TEXT NOT NULL DEFAULT '',
		stretch_bonus     INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	// Catalogs created before tagging existed lack this column.
	`ALTER TABLE exercises ADD COLUMN tags TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_exercises_muscle ON exercises(primary_muscle COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS machine_specs (
		exercise_id        TEXT PRIMARY KEY REFERENCES exercises(id) ON DELETE CASCADE,
		brand              TEXT NOT NULL,
		resistance_profile TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS programs (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL,
		goal_name   TEXT NOT NULL DEFAULT '',
		frequency   TEXT NOT NULL,
		sex         TEXT NOT NULL DEFAULT 'other',
		morphotype  TEXT NOT NULL DEFAULT '',
		weekly_sets INTEGER NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS periods (
		program_id         TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		number             INTEGER NOT NULL CHECK(number BETWEEN 1 AND 12),
		type               TEXT NOT NULL CHECK(type IN ('ramp','normal','overload','deload')),
		volume_modifier    REAL NOT NULL,
		intensity_modifier REAL NOT NULL,
		start_date         TEXT NOT NULL,
		PRIMARY KEY (program_id, number)
	)`,

	`CREATE TABLE IF NOT EXISTS days (
		program_id        TEXT NOT NULL,
		period_number     INTEGER NOT NULL,
		day_index         INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 6),
		label             TEXT NOT NULL,
		rest              INTEGER NOT NULL DEFAULT 0,
		session_sets      INTEGER NOT NULL DEFAULT 0,
		priority_sets     INTEGER NOT NULL DEFAULT 0,
		maintenance_sets  INTEGER NOT NULL DEFAULT 0,
		estimated_minutes INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (program_id, period_number, day_index),
		FOREIGN KEY (program_id, period_number) REFERENCES periods(program_id, number) ON DELETE CASCADE
	)`,

	// exercise_name is a snapshot; catalog edits never rewrite a template.
	`CREATE TABLE IF NOT EXISTS prescribed_exercises (
		program_id             TEXT NOT NULL,
		period_number          INTEGER NOT NULL,
		day_index              INTEGER NOT NULL,
		exercise_order         INTEGER NOT NULL,
		exercise_id            TEXT NOT NULL,
		exercise_name          TEXT NOT NULL,
		muscle                 TEXT NOT NULL DEFAULT '',
		sets                   INTEGER NOT NULL,
		rep_range              TEXT NOT NULL,
		rpe                    REAL NOT NULL,
		rest_seconds           INTEGER NOT NULL,
		tempo                  TEXT NOT NULL,
		is_priority            INTEGER NOT NULL DEFAULT 0,
		why                    TEXT NOT NULL DEFAULT '',
		priority_justification TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (program_id, period_number, day_index, exercise_order),
		FOREIGN KEY (program_id, period_number, day_index)
			REFERENCES days(program_id, period_number, day_index) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS set_logs (
		id                TEXT PRIMARY KEY,
		program_id        TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		period_number     INTEGER NOT NULL,
		day_index         INTEGER NOT NULL,
		exercise_order    INTEGER NOT NULL,
		set_number        INTEGER NOT NULL CHECK(set_number > 0),
		reps              INTEGER NOT NULL DEFAULT 0,
		rpe               REAL,
		velocity_loss_pct REAL,
		autostopped       INTEGER NOT NULL DEFAULT 0,
		logged_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_set_logs_day ON set_logs(program_id, period_number, day_index)`,
	`CREATE INDEX IF NOT EXISTS idx_programs_created ON programs(created_at)`,
}
