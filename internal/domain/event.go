package domain

import "time"

type RecordKind string

const (
	KindClockIn  RecordKind = "clock_in"
	KindClockOut RecordKind = "clock_out"
)

// ValidRecordKinds is the canonical set of accepted record kind strings.
var ValidRecordKinds = map[string]bool{
	"clock_in": true, "clock_out": true,
}

// AttendanceEvent is a single clock-in or clock-out record. CategoryID is
// only meaningful on clock-in events; Note is display-only and never feeds
// aggregation.
type AttendanceEvent struct {
	ID         string
	UserID     string
	Kind       RecordKind
	CategoryID string
	Timestamp  time.Time
	Note       string
	CreatedAt  time.Time
}

type User struct {
	ID        string
	DiscordID string
	Username  string
	CreatedAt time.Time
}

// Category is an attendance type such as "Remote Work". Inactive categories
// stay in the catalog for historical display but are not offered on clock-in.
type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}
