package repository

import (
	"context"
	"time"

	"github.com/felixgrant/punchcard/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByDiscordID(ctx context.Context, discordID string) (*domain.User, error)
	UpdateUsername(ctx context.Context, id, username string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	// List returns categories ordered by name. With activeOnly, inactive
	// entries are filtered out.
	List(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
}

// EventRepo is the event store the aggregation core reads from. ListInRange
// returns events sorted ascending by timestamp with insertion order as the
// tie-break, which is the ordering contract the core relies on.
type EventRepo interface {
	Create(ctx context.Context, e *domain.AttendanceEvent) error
	Latest(ctx context.Context, userID string) (*domain.AttendanceEvent, error)
	LatestOfKind(ctx context.Context, userID string, kind domain.RecordKind) (*domain.AttendanceEvent, error)
	ListInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.AttendanceEvent, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.AttendanceEvent, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
