package service

import (
	"context"
	"time"

	"github.com/felixgrant/punchcard/internal/domain"
)

// TransitionError reports a clock-in/clock-out rejected by the state gate.
// The reason is safe to display verbatim.
type TransitionError struct {
	Reason string
}

func (e *TransitionError) Error() string {
	return e.Reason
}

// ValidationError reports rejected user input. The reason is safe to
// display verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// WeeklyReport bundles a weekly summary with the category display names it
// references, resolved once per request so rendering never re-queries the
// catalog per record.
type WeeklyReport struct {
	User          *domain.User
	Summary       *domain.WeeklySummary
	CategoryNames map[string]string
}

// UserSummary is the overall attendance overview behind /my-summary.
type UserSummary struct {
	User           *domain.User
	TotalRecords   int
	Status         domain.CurrentStatus
	LatestClockIn  *time.Time
	LatestClockOut *time.Time
	Recent         []domain.AttendanceEvent
	CategoryNames  map[string]string
}

type AttendanceService interface {
	// ClockIn records a clock-in for the Discord user, creating the user on
	// first contact. Returns the stored event and the resolved category.
	ClockIn(ctx context.Context, discordID, username, categoryName, note string) (*domain.AttendanceEvent, *domain.Category, error)
	ClockOut(ctx context.Context, discordID, username, note string) (*domain.AttendanceEvent, error)
	Status(ctx context.Context, discordID string) (domain.CurrentStatus, error)
}

type CategoryService interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
}

type ReportService interface {
	// Weekly aggregates the week at the given offset from now (0 = current
	// week, -1 = last week).
	Weekly(ctx context.Context, discordID string, weeksOffset int) (*WeeklyReport, error)
	Summary(ctx context.Context, discordID string) (*UserSummary, error)
}
