package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felixgrant/punchcard/internal/db"
	"github.com/felixgrant/punchcard/internal/domain"
)

const categoryColumns = `id, name, description, is_active, created_at`

// SQLiteCategoryRepo implements CategoryRepo on SQLite.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

// NewSQLiteCategoryRepo creates a new SQLiteCategoryRepo.
func NewSQLiteCategoryRepo(dbtx db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: dbtx}
}

func (r *SQLiteCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO attendance_types (id, name, description, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Description,
		boolToInt(c.Active),
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting attendance type: %w", err)
	}
	return nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM attendance_types WHERE id = ?`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM attendance_types WHERE name = ?`
	return r.scanCategory(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteCategoryRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM attendance_types`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing attendance types: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		var active int
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &active, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning attendance type row: %w", err)
		}
		c.Active = intToBool(active)
		if c.CreatedAt, err = parseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attendance types: %w", err)
	}
	return categories, nil
}

func (r *SQLiteCategoryRepo) scanCategory(row *sql.Row) (*domain.Category, error) {
	var c domain.Category
	var active int
	var createdAtStr string

	err := row.Scan(&c.ID, &c.Name, &c.Description, &active, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("attendance type: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning attendance type: %w", err)
	}

	c.Active = intToBool(active)
	if c.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
