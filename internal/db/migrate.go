package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so the
// whole list re-runs on each startup.
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
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		discord_id TEXT NOT NULL UNIQUE,
		username   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_users_discord_id ON users(discord_id)`,

	`CREATE TABLE IF NOT EXISTS attendance_types (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		is_active   INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS attendance_records (
		id                 TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		record_type        TEXT NOT NULL
		                   CHECK(record_type IN ('clock_in','clock_out')),
		attendance_type_id TEXT REFERENCES attendance_types(id),
		timestamp          TEXT NOT NULL,
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attendance_records_user ON attendance_records(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_timestamp ON attendance_records(timestamp)`,

	// Notes arrived after the initial schema.
	`ALTER TABLE attendance_records ADD COLUMN note TEXT NOT NULL DEFAULT ''`,

	// Seed the default attendance-type catalog.
	`INSERT OR IGNORE INTO attendance_types (id, name, description, is_active, created_at) VALUES
		('type-regular',  'Regular Work', 'Standard work hours',              1, '2024-01-01T00:00:00Z'),
		('type-remote',   'Remote Work',  'Working from home',                1, '2024-01-01T00:00:00Z'),
		('type-overtime', 'Overtime',     'Work beyond regular hours',        1, '2024-01-01T00:00:00Z'),
		('type-meeting',  'Meeting',      'Attending meetings',               1, '2024-01-01T00:00:00Z'),
		('type-training', 'Training',     'Training or learning activities',  1, '2024-01-01T00:00:00Z')`,
}
