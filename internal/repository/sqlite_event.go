package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/felixgrant/punchcard/internal/db"
	"github.com/felixgrant/punchcard/internal/domain"
)

const eventColumns = `id, user_id, record_type, attendance_type_id, timestamp, note, created_at`

// eventOrder keeps equal timestamps in insertion order, which is the stable
// tie-break the aggregation core expects.
const eventOrder = `ORDER BY timestamp, created_at, id`

// SQLiteEventRepo implements EventRepo on SQLite.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(dbtx db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: dbtx}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.AttendanceEvent) error {
	// Mirrors the record_type CHECK constraint.
	if !domain.ValidRecordKinds[string(e.Kind)] {
		return fmt.Errorf("invalid record kind %q", e.Kind)
	}
	query := `INSERT INTO attendance_records (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	var categoryID any
	if e.CategoryID != "" {
		categoryID = e.CategoryID
	}
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		string(e.Kind),
		categoryID,
		formatTime(e.Timestamp),
		e.Note,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting attendance record: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) Latest(ctx context.Context, userID string) (*domain.AttendanceEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_records
		WHERE user_id = ?
		ORDER BY timestamp DESC, created_at DESC, id DESC
		LIMIT 1`
	return r.scanEvent(r.db.QueryRowContext(ctx, query, userID))
}

func (r *SQLiteEventRepo) LatestOfKind(ctx context.Context, userID string, kind domain.RecordKind) (*domain.AttendanceEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_records
		WHERE user_id = ? AND record_type = ?
		ORDER BY timestamp DESC, created_at DESC, id DESC
		LIMIT 1`
	return r.scanEvent(r.db.QueryRowContext(ctx, query, userID, string(kind)))
}

func (r *SQLiteEventRepo) ListInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_records
		WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?
		` + eventOrder
	rows, err := r.db.QueryContext(ctx, query, userID, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("listing records in range: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListRecent(ctx context.Context, userID string, limit int) ([]domain.AttendanceEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM attendance_records
		WHERE user_id = ?
		ORDER BY timestamp DESC, created_at DESC, id DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent records: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.AttendanceEvent, error) {
	var e domain.AttendanceEvent
	var categoryID sql.NullString
	var tsStr, createdAtStr string

	err := row.Scan(&e.ID, &e.UserID, (*string)(&e.Kind), &categoryID, &tsStr, &e.Note, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("attendance record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning attendance record: %w", err)
	}
	return r.populateEvent(&e, categoryID, tsStr, createdAtStr)
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]domain.AttendanceEvent, error) {
	var events []domain.AttendanceEvent
	for rows.Next() {
		var e domain.AttendanceEvent
		var categoryID sql.NullString
		var tsStr, createdAtStr string

		if err := rows.Scan(&e.ID, &e.UserID, (*string)(&e.Kind), &categoryID, &tsStr, &e.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		ev, err := r.populateEvent(&e, categoryID, tsStr, createdAtStr)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) populateEvent(e *domain.AttendanceEvent, categoryID sql.NullString, tsStr, createdAtStr string) (*domain.AttendanceEvent, error) {
	if categoryID.Valid {
		e.CategoryID = categoryID.String
	}
	var err error
	if e.Timestamp, err = parseTime(tsStr); err != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", err)
	}
	if e.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return e, nil
}
