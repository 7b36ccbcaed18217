package domain

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func runningTicket() *Ticket {
	return NewTicket("company-1", "support shift", "", t0, t0)
}

func TestElapsedSince(t *testing.T) {
	cases := []struct {
		name string
		ref  time.Time
		now  time.Time
		want time.Duration
	}{
		{"normal", t0, t0.Add(90 * time.Minute), 90 * time.Minute},
		{"zero", t0, t0, 0},
		{"clock skew clamps to zero", t0.Add(time.Hour), t0, 0},
	}
	for _, tt := range cases {
		if got := ElapsedSince(tt.ref, tt.now); got != tt.want {
			t.Fatalf("%s: ElapsedSince=%v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTotalDurationRunning(t *testing.T) {
	ticket := runningTicket()
	if got := TotalDuration(ticket, t0.Add(2*time.Hour)); got != 2*time.Hour {
		t.Fatalf("TotalDuration=%v, want 2h", got)
	}
}

func TestTotalDurationPaused(t *testing.T) {
	ticket := runningTicket()
	if err := ticket.Toggle(t0.Add(2 * time.Hour)); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// no accrual while paused, whatever asOf
	for _, asOf := range []time.Time{t0.Add(2 * time.Hour), t0.Add(50 * time.Hour)} {
		if got := TotalDuration(ticket, asOf); got != 2*time.Hour {
			t.Fatalf("TotalDuration(asOf=%v)=%v, want 2h", asOf, got)
		}
	}
}

func TestTotalDurationClosedIsFrozen(t *testing.T) {
	ticket := runningTicket()
	end := t0.Add(3 * time.Hour)
	if err := ticket.Close(end, end); err != nil {
		t.Fatalf("close: %v", err)
	}
	for _, asOf := range []time.Time{end, end.Add(time.Hour), end.Add(100 * time.Hour)} {
		if got := TotalDuration(ticket, asOf); got != 3*time.Hour {
			t.Fatalf("TotalDuration(asOf=%v)=%v, want 3h", asOf, got)
		}
	}
}

func TestTotalDurationClosedUnfrozenRow(t *testing.T) {
	// A row written before close started freezing: EndTime set while the
	// ticket reads as running. The closed branch must still stop accrual at
	// EndTime.
	end := t0.Add(3 * time.Hour)
	ticket := &Ticket{StartTime: t0, EndTime: &end}
	if got := TotalDuration(ticket, end.Add(24*time.Hour)); got != 3*time.Hour {
		t.Fatalf("TotalDuration=%v, want 3h", got)
	}
}

// Scenario walkthrough: pause at +2h, resume at +3h, pause at +3h30m,
// close at +4h without resuming.
func TestPauseResumeScenario(t *testing.T) {
	ticket := runningTicket()

	if err := ticket.Toggle(t0.Add(2 * time.Hour)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if ticket.DurationBeforePause != 2*time.Hour || !ticket.Paused {
		t.Fatalf("after pause: duration=%v paused=%v", ticket.DurationBeforePause, ticket.Paused)
	}

	if err := ticket.Toggle(t0.Add(3 * time.Hour)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if ticket.Paused || ticket.ResumeTime == nil || !ticket.ResumeTime.Equal(t0.Add(3*time.Hour)) {
		t.Fatalf("after resume: paused=%v resumeTime=%v", ticket.Paused, ticket.ResumeTime)
	}

	if err := ticket.Toggle(t0.Add(3*time.Hour + 30*time.Minute)); err != nil {
		t.Fatalf("second pause: %v", err)
	}
	if ticket.DurationBeforePause != 2*time.Hour+30*time.Minute {
		t.Fatalf("after second pause: duration=%v, want 2h30m", ticket.DurationBeforePause)
	}

	if err := ticket.Close(t0.Add(4*time.Hour), t0.Add(4*time.Hour)); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := TotalDuration(ticket, t0.Add(10*time.Hour)); got != 2*time.Hour+30*time.Minute {
		t.Fatalf("closed duration=%v, want 2h30m (ticket was paused at close)", got)
	}
}

// Pausing or resuming never changes the total accrued duration at the
// instant of the transition itself.
func TestToggleConservesTotalDuration(t *testing.T) {
	ticket := runningTicket()
	instants := []time.Time{
		t0.Add(time.Hour),
		t0.Add(2 * time.Hour),
		t0.Add(2*time.Hour + 45*time.Minute),
		t0.Add(5 * time.Hour),
	}
	for _, now := range instants {
		before := TotalDuration(ticket, now)
		if err := ticket.Toggle(now); err != nil {
			t.Fatalf("toggle at %v: %v", now, err)
		}
		after := TotalDuration(ticket, now)
		if before != after {
			t.Fatalf("toggle at %v changed total: %v -> %v", now, before, after)
		}
	}
}

// DurationBeforePause never decreases across any toggle sequence.
func TestDurationBeforePauseMonotonic(t *testing.T) {
	ticket := runningTicket()
	prev := ticket.DurationBeforePause
	now := t0
	steps := []time.Duration{
		30 * time.Minute, 10 * time.Minute, time.Hour, 5 * time.Minute,
		2 * time.Hour, time.Minute, 45 * time.Minute, 15 * time.Second,
	}
	for i, step := range steps {
		now = now.Add(step)
		if err := ticket.Toggle(now); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if ticket.DurationBeforePause < prev {
			t.Fatalf("toggle %d: DurationBeforePause decreased %v -> %v", i, prev, ticket.DurationBeforePause)
		}
		prev = ticket.DurationBeforePause
	}
}
