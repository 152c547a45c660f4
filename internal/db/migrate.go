package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'pending'
		              CHECK(status IN ('pending','in_progress','done','blocked')),
		priority      INTEGER CHECK(priority BETWEEN 1 AND 5),
		energy        TEXT CHECK(energy IN ('HIGH','MEDIUM','LOW')),
		focus         TEXT CHECK(focus IN ('CREATIVE','TECHNICAL','ADMINISTRATIVE','SOCIAL')),
		estimated_min INTEGER NOT NULL DEFAULT 0,
		hard_deadline TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		task_id            TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		PRIMARY KEY (task_id, depends_on_task_id),
		CHECK (task_id <> depends_on_task_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_prereq ON dependencies(depends_on_task_id)`,

	`CREATE TABLE IF NOT EXISTS scheduling_prefs (
		id                TEXT PRIMARY KEY,
		morning_energy    TEXT NOT NULL DEFAULT 'MEDIUM'
		                  CHECK(morning_energy IN ('HIGH','MEDIUM','LOW')),
		afternoon_energy  TEXT NOT NULL DEFAULT 'MEDIUM'
		                  CHECK(afternoon_energy IN ('HIGH','MEDIUM','LOW')),
		work_start        TEXT NOT NULL DEFAULT '09:00',
		work_end          TEXT NOT NULL DEFAULT '17:00',
		focus_session_min INTEGER NOT NULL DEFAULT 90,
		preferred_focus   TEXT NOT NULL DEFAULT ''
	)`,
}
