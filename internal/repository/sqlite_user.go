package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felixgrant/punchcard/internal/db"
	"github.com/felixgrant/punchcard/internal/domain"
)

// SQLiteUserRepo implements UserRepo on SQLite. The constructor accepts a
// DBTX so the same repo runs against the pooled handle or inside a
// transaction.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(dbtx db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: dbtx}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, discord_id, username, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.DiscordID,
		u.Username,
		formatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, discord_id, username, created_at FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteUserRepo) GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error) {
	query := `SELECT id, discord_id, username, created_at FROM users WHERE discord_id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, discordID))
}

func (r *SQLiteUserRepo) UpdateUsername(ctx context.Context, id, username string) error {
	query := `UPDATE users SET username = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, username, id); err != nil {
		return fmt.Errorf("updating username: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var createdAtStr string

	err := row.Scan(&u.ID, &u.DiscordID, &u.Username, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	if u.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &u, nil
}
