package domain

import "time"

// TicketState enumerates lifecycle states for billable tickets.
type TicketState string

const (
	TicketStateRunning TicketState = "RUNNING"
	TicketStatePaused  TicketState = "PAUSED"
	TicketStateClosed  TicketState = "CLOSED"
)

// Ticket is a unit of billable work owned by a single company. Billable time
// accrues while the ticket runs and is committed into DurationBeforePause on
// every pause; closing is terminal.
type Ticket struct {
	ID                  string
	CompanyID           string
	Title               string
	Description         string
	StartTime           time.Time
	Paused              bool
	ResumeTime          *time.Time
	DurationBeforePause time.Duration
	EndTime             *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewTicket returns a ticket in the Running state. A zero startTime means
// "started now".
func NewTicket(companyID, title, description string, startTime, now time.Time) *Ticket {
	if startTime.IsZero() {
		startTime = now
	}
	return &Ticket{
		CompanyID:   companyID,
		Title:       title,
		Description: description,
		StartTime:   startTime,
	}
}

// Closed reports whether the ticket reached its terminal state.
func (t *Ticket) Closed() bool {
	return t.EndTime != nil
}

// State derives the lifecycle state. EndTime presence wins over the paused
// flag: exactly one of the three states holds at any time.
func (t *Ticket) State() TicketState {
	switch {
	case t.EndTime != nil:
		return TicketStateClosed
	case t.Paused:
		return TicketStatePaused
	default:
		return TicketStateRunning
	}
}

// Toggle flips the ticket between Running and Paused at the given instant.
// Pausing commits the open accrual interval into DurationBeforePause and
// leaves ResumeTime as an inert historical marker; resuming stamps a fresh
// ResumeTime. Toggling a closed ticket fails with ErrInvalidTicketState.
func (t *Ticket) Toggle(now time.Time) error {
	if t.Closed() {
		return ErrInvalidTicketState
	}
	if t.Paused {
		resumed := now
		t.ResumeTime = &resumed
		t.Paused = false
		return nil
	}
	t.DurationBeforePause += ElapsedSince(t.accrualReference(), now)
	t.Paused = true
	return nil
}

// Close transitions the ticket to Closed at endTime. The total accrued
// duration is frozen into DurationBeforePause so that TotalDuration on a
// closed ticket is stable for any asOf. A zero endTime means "closed now".
// Closing an already-closed ticket fails with ErrTicketAlreadyClosed and
// leaves EndTime untouched.
func (t *Ticket) Close(endTime, now time.Time) error {
	if t.Closed() {
		return ErrTicketAlreadyClosed
	}
	if endTime.IsZero() {
		endTime = now
	}
	t.DurationBeforePause = TotalDuration(t, endTime)
	t.Paused = true
	t.EndTime = &endTime
	return nil
}

// TicketEdit carries the optional fields of an edit. Nil fields are left
// untouched; non-nil fields replace the current value unconditionally, with
// no lifecycle re-validation.
type TicketEdit struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// Empty reports whether the edit carries no fields.
func (e TicketEdit) Empty() bool {
	return e.Title == nil && e.Description == nil && e.StartTime == nil && e.EndTime == nil
}

// Apply writes the provided fields onto the ticket. A no-op when Empty.
func (e TicketEdit) Apply(t *Ticket) {
	if e.Title != nil {
		t.Title = *e.Title
	}
	if e.Description != nil {
		t.Description = *e.Description
	}
	if e.StartTime != nil {
		t.StartTime = *e.StartTime
	}
	if e.EndTime != nil {
		t.EndTime = e.EndTime
	}
}
