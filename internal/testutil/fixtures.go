package testutil

import (
	"sync/atomic"
	"time"

	"github.com/felixgrant/punchcard/internal/domain"
	"github.com/google/uuid"
)

// NewTestUser builds a user with a unique discord ID.
func NewTestUser(username string) *domain.User {
	return &domain.User{
		ID:        uuid.New().String(),
		DiscordID: uuid.New().String()[:8],
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}

// Event options
type EventOption func(*domain.AttendanceEvent)

func WithCategory(categoryID string) EventOption {
	return func(e *domain.AttendanceEvent) {
		e.CategoryID = categoryID
	}
}

func WithNote(note string) EventOption {
	return func(e *domain.AttendanceEvent) {
		e.Note = note
	}
}

func WithTimestamp(ts time.Time) EventOption {
	return func(e *domain.AttendanceEvent) {
		e.Timestamp = ts
	}
}

var eventSeq atomic.Int64

// NewTestEvent builds an attendance event for the given user. CreatedAt
// advances a full second per call (storage has second resolution) so
// insertion order stays deterministic even when tests reuse a timestamp.
func NewTestEvent(userID string, kind domain.RecordKind, opts ...EventOption) *domain.AttendanceEvent {
	seq := eventSeq.Add(1)
	e := &domain.AttendanceEvent{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestCategory builds an active attendance type.
func NewTestCategory(name string) *domain.Category {
	return &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
}
