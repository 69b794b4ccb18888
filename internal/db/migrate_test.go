package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Re-running the full migration list must succeed; the ALTER TABLE
	// statements hit duplicate-column errors that Migrate tolerates.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"users", "attendance_types", "attendance_records"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_users_discord_id",
		"idx_attendance_records_user",
		"idx_attendance_records_timestamp",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SeedsDefaultTypes(t *testing.T) {
	db := openTestDB(t)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM attendance_types WHERE is_active = 1`).Scan(&count))
	assert.Equal(t, 5, count)

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM attendance_types WHERE id = 'type-regular'`).Scan(&name))
	assert.Equal(t, "Regular Work", name)

	// Seeding is INSERT OR IGNORE; a second run must not duplicate.
	require.NoError(t, Migrate(db))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM attendance_types`).Scan(&count))
	assert.Equal(t, 5, count)
}

func TestMigrate_RecordTypeConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, discord_id, username, created_at)
		VALUES ('u1', '42', 'tester', '2025-06-16T09:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO attendance_records (id, user_id, record_type, timestamp, created_at)
		VALUES ('r1', 'u1', 'nap', '2025-06-16T09:00:00Z', '2025-06-16T09:00:00Z')`)
	require.Error(t, err, "record_type outside clock_in/clock_out must be rejected")
}
