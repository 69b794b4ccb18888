package domain

// Decision is the outcome of a gate check: whether the requested transition
// is legal and a human-readable reason suitable for direct display.
type Decision struct {
	Allowed bool
	Reason  string
}

// CurrentStatus reports which transition is currently legal for a user.
// Exactly one of CanClockIn/CanClockOut is true.
type CurrentStatus struct {
	CanClockIn  bool
	CanClockOut bool
	ClockedIn   bool
}

// Decide checks whether the requested kind is a legal transition given the
// user's most recent event (nil means no history). State is never cached;
// callers pass the latest stored event on every check.
func Decide(latest *AttendanceEvent, requested RecordKind) Decision {
	switch requested {
	case KindClockIn:
		if latest == nil {
			return Decision{Allowed: true, Reason: "No previous records found"}
		}
		if latest.Kind == KindClockOut {
			return Decision{Allowed: true, Reason: "Last record was clock-out"}
		}
		return Decision{Allowed: false, Reason: "Already clocked in. Please clock out first."}
	case KindClockOut:
		if latest == nil {
			return Decision{Allowed: false, Reason: "No clock-in record found. Please clock in first."}
		}
		if latest.Kind == KindClockIn {
			return Decision{Allowed: true, Reason: "Currently clocked in"}
		}
		return Decision{Allowed: false, Reason: "Not currently clocked in. Please clock in first."}
	}
	return Decision{Allowed: false, Reason: "Unknown record kind"}
}

// StatusFromLatest derives the two-state clock status from the most recent
// event. No history means the user is out.
func StatusFromLatest(latest *AttendanceEvent) CurrentStatus {
	clockedIn := latest != nil && latest.Kind == KindClockIn
	return CurrentStatus{
		CanClockIn:  !clockedIn,
		CanClockOut: clockedIn,
		ClockedIn:   clockedIn,
	}
}
