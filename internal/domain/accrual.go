package domain

import "time"

// ElapsedSince returns now - ref, clamped at zero. Negative intervals can
// appear under clock skew and are silently corrected rather than surfaced.
func ElapsedSince(ref, now time.Time) time.Duration {
	d := now.Sub(ref)
	if d < 0 {
		return 0
	}
	return d
}

// TotalDuration computes the billable duration accrued by a ticket as of the
// given instant, without mutating the ticket.
//
// Closed tickets are frozen at EndTime regardless of asOf. Close already
// folds the final running interval into DurationBeforePause, but the closed
// branch re-derives it from the paused flag so rows written before freezing
// still read correctly.
func TotalDuration(t *Ticket, asOf time.Time) time.Duration {
	if t.Closed() {
		if t.Paused {
			return t.DurationBeforePause
		}
		return t.DurationBeforePause + ElapsedSince(t.accrualReference(), *t.EndTime)
	}
	if t.Paused {
		return t.DurationBeforePause
	}
	return t.DurationBeforePause + ElapsedSince(t.accrualReference(), asOf)
}

// accrualReference is the instant the current running interval began: the
// most recent resume, or the start time if the ticket never paused.
func (t *Ticket) accrualReference() time.Time {
	if t.ResumeTime != nil {
		return *t.ResumeTime
	}
	return t.StartTime
}
