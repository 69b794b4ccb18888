package domain

import (
	"fmt"
	"time"
)

// DaySession is one calendar day's slice of a weekly summary. Ephemeral:
// built fresh during aggregation and discarded after rendering.
type DaySession struct {
	Date        time.Time
	Events      []AttendanceEvent
	WorkedHours float64
	Incomplete  bool
}

// CategoryCount is a category's clock-in usage within a week. Summaries keep
// these in first-encountered order so ties resolve deterministically.
type CategoryCount struct {
	CategoryID string
	Count      int
}

// WeeklySummary is the aggregation engine's output for one Monday-to-Sunday
// window. PerDay always holds seven entries, one per calendar day, empty
// days included.
type WeeklySummary struct {
	WeekStart time.Time
	WeekEnd   time.Time

	PerDay        []DaySession
	TotalHours    float64
	WorkedDays    int
	CategoryUsage []CategoryCount

	IncompleteDays int
}

// AverageHours returns hours per worked day. The second return is false when
// no day had paired work, in which case the average is undefined.
func (s *WeeklySummary) AverageHours() (float64, bool) {
	if s.WorkedDays == 0 {
		return 0, false
	}
	return s.TotalHours / float64(s.WorkedDays), true
}

// TopCategory returns the most-used category of the week. Ties go to the
// category encountered first. The second return is false when no clock-in
// carried a category.
func (s *WeeklySummary) TopCategory() (CategoryCount, bool) {
	var top CategoryCount
	found := false
	for _, c := range s.CategoryUsage {
		if !found || c.Count > top.Count {
			top = c
			found = true
		}
	}
	return top, found
}

// AggregateWeek partitions a week's events by local calendar day, pairs each
// day's sessions, and rolls up totals. Events must be sorted ascending by
// timestamp and fall inside [weekStart, weekEnd]; violations are caller bugs
// and return an error rather than silently skewed numbers. Day bucketing
// uses weekStart's location.
func AggregateWeek(events []AttendanceEvent, weekStart, weekEnd time.Time) (*WeeklySummary, error) {
	loc := weekStart.Location()

	dayIndex := make(map[string]int, 7)
	days := make([]DaySession, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		days[i].Date = date
		dayIndex[date.Format("2006-01-02")] = i
	}

	var usage []CategoryCount
	usageIdx := make(map[string]int)

	var prev time.Time
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			return nil, fmt.Errorf("aggregating week: event %s has no timestamp", ev.ID)
		}
		if ev.Timestamp.Before(prev) {
			return nil, fmt.Errorf("aggregating week: events not sorted at %s", ev.ID)
		}
		prev = ev.Timestamp

		local := ev.Timestamp.In(loc)
		idx, ok := dayIndex[local.Format("2006-01-02")]
		if !ok || local.Before(weekStart) || local.After(weekEnd) {
			return nil, fmt.Errorf("aggregating week: event %s at %s outside window %s..%s",
				ev.ID, local.Format(time.RFC3339), weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))
		}
		days[idx].Events = append(days[idx].Events, ev)

		if ev.Kind == KindClockIn && ev.CategoryID != "" {
			if i, seen := usageIdx[ev.CategoryID]; seen {
				usage[i].Count++
			} else {
				usageIdx[ev.CategoryID] = len(usage)
				usage = append(usage, CategoryCount{CategoryID: ev.CategoryID, Count: 1})
			}
		}
	}

	summary := &WeeklySummary{
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		PerDay:        days,
		CategoryUsage: usage,
	}
	for i := range summary.PerDay {
		hours, incomplete := PairDay(summary.PerDay[i].Events)
		summary.PerDay[i].WorkedHours = hours
		summary.PerDay[i].Incomplete = incomplete
		summary.TotalHours += hours
		if hours > 0 {
			summary.WorkedDays++
		}
		if incomplete {
			summary.IncompleteDays++
		}
	}
	return summary, nil
}
