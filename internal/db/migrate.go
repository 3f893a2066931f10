package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	if err := migrateBackfillMilestoneStatus(db); err != nil {
		return fmt.Errorf("backfilling milestone status: %w", err)
	}
	return nil
}

// migrateBackfillMilestoneStatus repairs rows written before status was
// tracked: an achieved milestone is completed regardless of the stored status.
func migrateBackfillMilestoneStatus(db *sql.DB) error {
	_, err := db.Exec(`UPDATE milestone_progress
		SET status = 'completed'
		WHERE achieved_at IS NOT NULL AND status != 'completed'`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		session_id     TEXT PRIMARY KEY,
		semester       INTEGER NOT NULL DEFAULT 1
		               CHECK(semester BETWEEN 1 AND 8),
		career_path_id TEXT,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completions (
		session_id   TEXT NOT NULL,
		module_code  TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		PRIMARY KEY (session_id, module_code)
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id                   TEXT PRIMARY KEY,
		session_id           TEXT NOT NULL,
		type                 TEXT NOT NULL
		                     CHECK(type IN ('milestone_reminder','deadline_warning','milestone_achieved','recommendation','support_service','system')),
		priority             TEXT NOT NULL DEFAULT 'medium'
		                     CHECK(priority IN ('low','medium','high')),
		title                TEXT NOT NULL,
		message              TEXT NOT NULL DEFAULT '',
		due_at               TEXT,
		read_at              TEXT,
		related_milestone_id INTEGER,
		created_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_session ON notifications(session_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications(session_id, read_at)`,

	`CREATE TABLE IF NOT EXISTS milestone_progress (
		session_id   TEXT NOT NULL,
		milestone_id INTEGER NOT NULL,
		status       TEXT NOT NULL DEFAULT 'locked'
		             CHECK(status IN ('locked','in_progress','completed')),
		achieved_at  TEXT,
		updated_at   TEXT NOT NULL,
		PRIMARY KEY (session_id, milestone_id)
	)`,

	// Notification deep links.
	`ALTER TABLE notifications ADD COLUMN action_url TEXT NOT NULL DEFAULT ''`,
}
