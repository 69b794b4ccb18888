package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgrant/punchcard/internal/domain"
	"github.com/felixgrant/punchcard/internal/repository"
)

const recentRecordLimit = 5

type reportService struct {
	events     repository.EventRepo
	users      repository.UserRepo
	categories repository.CategoryRepo
	loc        *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

// NewReportService builds the read side of the bot. Week windows are
// computed in loc; timestamps themselves stay UTC.
func NewReportService(
	events repository.EventRepo,
	users repository.UserRepo,
	categories repository.CategoryRepo,
	loc *time.Location,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		events:     events,
		users:      users,
		categories: categories,
		loc:        loc,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Weekly(ctx context.Context, discordID string, weeksOffset int) (*WeeklyReport, error) {
	weekStart, weekEnd := domain.WeekBounds(s.now().In(s.loc), weeksOffset)

	user, err := s.users.GetByDiscordID(ctx, discordID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var events []domain.AttendanceEvent
	if user != nil {
		events, err = s.events.ListInRange(ctx, user.ID, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
	}

	summary, err := domain.AggregateWeek(events, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("weekly report computed",
		"discord_id", discordID,
		"week_start", weekStart.Format("2006-01-02"),
		"total_hours", summary.TotalHours,
	)
	return &WeeklyReport{User: user, Summary: summary, CategoryNames: names}, nil
}

func (s *reportService) Summary(ctx context.Context, discordID string) (*UserSummary, error) {
	user, err := s.users.GetByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &UserSummary{Status: domain.StatusFromLatest(nil)}, nil
		}
		return nil, err
	}

	total, err := s.events.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	latest, err := s.events.Latest(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	summary := &UserSummary{
		User:         user,
		TotalRecords: total,
		Status:       domain.StatusFromLatest(latest),
	}

	if in, err := s.events.LatestOfKind(ctx, user.ID, domain.KindClockIn); err == nil {
		summary.LatestClockIn = &in.Timestamp
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if out, err := s.events.LatestOfKind(ctx, user.ID, domain.KindClockOut); err == nil {
		summary.LatestClockOut = &out.Timestamp
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if summary.Recent, err = s.events.ListRecent(ctx, user.ID, recentRecordLimit); err != nil {
		return nil, err
	}
	if summary.CategoryNames, err = s.categoryNames(ctx); err != nil {
		return nil, err
	}
	return summary, nil
}

// categoryNames resolves the whole catalog to a display-name map in one
// query so renderers never look categories up per record.
func (s *reportService) categoryNames(ctx context.Context) (map[string]string, error) {
	categories, err := s.categories.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}
