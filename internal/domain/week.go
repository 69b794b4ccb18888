package domain

import "time"

// WeekBounds returns the Monday-through-Sunday week containing ref, shifted
// by weeksOffset whole weeks (negative for past weeks). Start is Monday
// 00:00:00, end is the last representable instant of Sunday, both in ref's
// location.
func WeekBounds(ref time.Time, weeksOffset int) (start, end time.Time) {
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	daysFromMonday := (int(ref.Weekday()) + 6) % 7
	monday := ref.AddDate(0, 0, -daysFromMonday+7*weeksOffset)
	start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}
