package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/felixgrant/punchcard/internal/domain"
)

// MaxNoteLen is the longest note stored with a record.
const MaxNoteLen = 500

// FormatHours renders fractional hours as "8h 30m". Sub-minute remainders
// round to the nearest minute.
func FormatHours(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	h := totalMinutes / 60
	m := totalMinutes % 60
	switch {
	case totalMinutes == 0:
		return "0h"
	case m == 0:
		return fmt.Sprintf("%dh", h)
	case h == 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// DiscordTimestamp renders Discord's timestamp markup, which the client
// shows in each viewer's own timezone. Style "f" is full date-time, "R"
// relative.
func DiscordTimestamp(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

// RecordLine formats one attendance record for a recent-activity list.
// The category name comes from the caller's precomputed mapping.
func RecordLine(e domain.AttendanceEvent, categoryName string) string {
	var b strings.Builder
	if e.Kind == domain.KindClockIn {
		b.WriteString("🟢 Clock In - ")
	} else {
		b.WriteString("🔴 Clock Out - ")
	}
	b.WriteString(DiscordTimestamp(e.Timestamp, "f"))
	if e.Kind == domain.KindClockIn && categoryName != "" {
		fmt.Fprintf(&b, " (%s)", categoryName)
	}
	if e.Note != "" {
		b.WriteString("\n📝 ")
		b.WriteString(e.Note)
	}
	return b.String()
}

// Truncate shortens text to max runes, reserving three for an ellipsis.
// Discord embed fields cap at 1024 characters.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// CleanNote trims a user-supplied note and caps it at MaxNoteLen runes.
func CleanNote(note string) string {
	note = strings.TrimSpace(note)
	if runes := []rune(note); len(runes) > MaxNoteLen {
		note = string(runes[:MaxNoteLen])
	}
	return note
}

// DayLabel renders a summary day as "Mon 16 Jun".
func DayLabel(date time.Time) string {
	return date.Format("Mon 02 Jan")
}
