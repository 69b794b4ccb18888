package domain

import "time"

// PairDay pairs one calendar day's clock events into work sessions and
// returns the accumulated hours plus whether the day ended on an open
// clock-in. Events must already be sorted ascending by timestamp.
//
// Irregular sequences are absorbed rather than rejected: a clock-in while
// one is already open replaces the open slot (no double counting), and a
// clock-out with no open clock-in contributes nothing. The gate prevents
// both upstream; stored history may still contain them.
func PairDay(events []AttendanceEvent) (hours float64, incomplete bool) {
	var open *time.Time
	for i := range events {
		switch events[i].Kind {
		case KindClockIn:
			ts := events[i].Timestamp
			open = &ts
		case KindClockOut:
			if open == nil {
				continue
			}
			hours += events[i].Timestamp.Sub(*open).Hours()
			open = nil
		}
	}
	return hours, open != nil
}
