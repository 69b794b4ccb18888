package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgrant/punchcard/internal/db"
	"github.com/felixgrant/punchcard/internal/domain"
	"github.com/felixgrant/punchcard/internal/repository"
	"github.com/google/uuid"
)

type attendanceService struct {
	events     repository.EventRepo
	users      repository.UserRepo
	categories repository.CategoryRepo
	uow        db.UnitOfWork
	logger     *slog.Logger
	now        func() time.Time
}

func NewAttendanceService(
	events repository.EventRepo,
	users repository.UserRepo,
	categories repository.CategoryRepo,
	uow db.UnitOfWork,
	logger *slog.Logger,
) AttendanceService {
	return &attendanceService{
		events:     events,
		users:      users,
		categories: categories,
		uow:        uow,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *attendanceService) ClockIn(ctx context.Context, discordID, username, categoryName, note string) (*domain.AttendanceEvent, *domain.Category, error) {
	category, err := s.categories.GetByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, &ValidationError{Reason: fmt.Sprintf("Attendance type '%s' not found.", categoryName)}
		}
		return nil, nil, err
	}
	if !category.Active {
		return nil, nil, &ValidationError{Reason: fmt.Sprintf("Attendance type '%s' is inactive.", categoryName)}
	}

	event, err := s.record(ctx, discordID, username, domain.KindClockIn, category.ID, note)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("clocked in", "discord_id", discordID, "type", category.Name)
	return event, category, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, discordID, username, note string) (*domain.AttendanceEvent, error) {
	event, err := s.record(ctx, discordID, username, domain.KindClockOut, "", note)
	if err != nil {
		return nil, err
	}
	s.logger.Info("clocked out", "discord_id", discordID)
	return event, nil
}

// record runs the gate check and insert inside one transaction. SQLite holds
// a single write lock, so two racing requests from the same user serialize
// and the loser sees the winner's event at the gate.
func (s *attendanceService) record(ctx context.Context, discordID, username string, kind domain.RecordKind, categoryID, note string) (*domain.AttendanceEvent, error) {
	event := &domain.AttendanceEvent{
		ID:         uuid.New().String(),
		Kind:       kind,
		CategoryID: categoryID,
		Timestamp:  s.now(),
		Note:       note,
		CreatedAt:  s.now(),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txEvents := repository.NewSQLiteEventRepo(tx)

		user, err := getOrCreateUser(ctx, txUsers, discordID, username, s.now())
		if err != nil {
			return err
		}
		event.UserID = user.ID

		latest, err := txEvents.Latest(ctx, user.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if decision := domain.Decide(latest, kind); !decision.Allowed {
			return &TransitionError{Reason: decision.Reason}
		}
		return txEvents.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *attendanceService) Status(ctx context.Context, discordID string) (domain.CurrentStatus, error) {
	user, err := s.users.GetByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.StatusFromLatest(nil), nil
		}
		return domain.CurrentStatus{}, err
	}

	latest, err := s.events.Latest(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.StatusFromLatest(nil), nil
		}
		return domain.CurrentStatus{}, err
	}
	return domain.StatusFromLatest(latest), nil
}

// getOrCreateUser looks up a Discord user, creating the row on first contact
// and refreshing a changed display name on later ones.
func getOrCreateUser(ctx context.Context, users repository.UserRepo, discordID, username string, now time.Time) (*domain.User, error) {
	user, err := users.GetByDiscordID(ctx, discordID)
	if err == nil {
		if username != "" && user.Username != username {
			if err := users.UpdateUsername(ctx, user.ID, username); err != nil {
				return nil, err
			}
			user.Username = username
		}
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{
		ID:        uuid.New().String(),
		DiscordID: discordID,
		Username:  username,
		CreatedAt: now,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
