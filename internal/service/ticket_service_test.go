package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/events"
)

func newTicketFixture(t *testing.T) (*TicketService, *fakeTicketRepo, *fakeCompanyRepo, *recordingDispatcher, *fixedClock) {
	t.Helper()
	tickets := newFakeTicketRepo()
	companies := newFakeCompanyRepo()
	dispatcher := &recordingDispatcher{}
	clock := newFixedClock(t0)
	svc := NewTicketService(TicketDependencies{
		TicketRepo:  tickets,
		CompanyRepo: companies,
		Dispatcher:  dispatcher,
		Clock:       clock.Now,
	})
	if err := companies.Create(context.Background(), &domain.TicketCompany{Name: "Acme"}); err != nil {
		t.Fatal(err)
	}
	return svc, tickets, companies, dispatcher, clock
}

func TestCreateTicketStartsRunning(t *testing.T) {
	svc, _, _, dispatcher, _ := newTicketFixture(t)

	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CompanyID:   "company-1",
		Title:       "  support shift  ",
		Description: "on-site",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ticket.State() != domain.TicketStateRunning {
		t.Fatalf("state=%v, want RUNNING", ticket.State())
	}
	if ticket.Title != "support shift" {
		t.Fatalf("title not trimmed: %q", ticket.Title)
	}
	if !ticket.StartTime.Equal(t0) {
		t.Fatalf("startTime=%v, want clock now", ticket.StartTime)
	}
	got := dispatcher.types()
	if len(got) != 1 || got[0] != events.EventTicketCreated {
		t.Fatalf("events=%v, want [ticket_created]", got)
	}
}

func TestCreateTicketUnknownCompany(t *testing.T) {
	svc, _, _, _, _ := newTicketFixture(t)
	_, err := svc.CreateTicket(context.Background(), TicketCreateInput{CompanyID: "missing", Title: "x"})
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("err=%v, want ErrCompanyNotFound", err)
	}
}

func TestToggleAccruesAcrossPauseResume(t *testing.T) {
	svc, _, _, dispatcher, clock := newTicketFixture(t)
	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{CompanyID: "company-1", Title: "shift"})
	if err != nil {
		t.Fatal(err)
	}

	clock.Advance(2 * time.Hour)
	paused, err := svc.ToggleTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.State() != domain.TicketStatePaused || paused.DurationBeforePause != 2*time.Hour {
		t.Fatalf("after pause: state=%v duration=%v", paused.State(), paused.DurationBeforePause)
	}

	clock.Advance(time.Hour)
	resumed, err := svc.ToggleTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.State() != domain.TicketStateRunning || resumed.DurationBeforePause != 2*time.Hour {
		t.Fatalf("after resume: state=%v duration=%v", resumed.State(), resumed.DurationBeforePause)
	}

	clock.Advance(30 * time.Minute)
	paused2, err := svc.ToggleTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("second pause: %v", err)
	}
	if paused2.DurationBeforePause != 2*time.Hour+30*time.Minute {
		t.Fatalf("duration=%v, want 2h30m", paused2.DurationBeforePause)
	}

	want := []events.EventType{
		events.EventTicketCreated,
		events.EventTicketPaused,
		events.EventTicketResumed,
		events.EventTicketPaused,
	}
	got := dispatcher.types()
	if len(got) != len(want) {
		t.Fatalf("events=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCloseFreezesAndRejectsSecondClose(t *testing.T) {
	svc, repo, _, _, clock := newTicketFixture(t)
	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{CompanyID: "company-1", Title: "shift"})
	if err != nil {
		t.Fatal(err)
	}

	clock.Advance(2*time.Hour + 30*time.Minute)
	closed, err := svc.CloseTicket(context.Background(), ticket.ID, nil)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.State() != domain.TicketStateClosed {
		t.Fatalf("state=%v, want CLOSED", closed.State())
	}
	firstEnd := *closed.EndTime

	clock.Advance(time.Hour)
	_, err = svc.CloseTicket(context.Background(), ticket.ID, nil)
	if !errors.Is(err, domain.ErrTicketAlreadyClosed) {
		t.Fatalf("second close err=%v, want ErrTicketAlreadyClosed", err)
	}

	stored, err := repo.GetByID(context.Background(), ticket.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.EndTime.Equal(firstEnd) {
		t.Fatalf("EndTime changed by failed close: %v, want %v", stored.EndTime, firstEnd)
	}
	if got := domain.TotalDuration(stored, clock.Now()); got != 2*time.Hour+30*time.Minute {
		t.Fatalf("closed duration=%v, want 2h30m", got)
	}
}

func TestToggleClosedTicket(t *testing.T) {
	svc, _, _, _, clock := newTicketFixture(t)
	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{CompanyID: "company-1", Title: "shift"})
	if err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Hour)
	if _, err := svc.CloseTicket(context.Background(), ticket.ID, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleTicket(context.Background(), ticket.ID); !errors.Is(err, domain.ErrInvalidTicketState) {
		t.Fatalf("err=%v, want ErrInvalidTicketState", err)
	}
}

func TestEditTicketPartialFields(t *testing.T) {
	svc, _, _, _, _ := newTicketFixture(t)
	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CompanyID:   "company-1",
		Title:       "shift",
		Description: "original",
	})
	if err != nil {
		t.Fatal(err)
	}

	title := "renamed"
	edited, err := svc.EditTicket(context.Background(), ticket.ID, domain.TicketEdit{Title: &title})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Title != "renamed" || edited.Description != "original" {
		t.Fatalf("edit applied wrong fields: %+v", edited)
	}

	// empty edit is a no-op
	same, err := svc.EditTicket(context.Background(), ticket.ID, domain.TicketEdit{})
	if err != nil {
		t.Fatalf("empty edit: %v", err)
	}
	if same.Title != "renamed" {
		t.Fatalf("empty edit mutated ticket: %+v", same)
	}
}

func TestDeleteTicket(t *testing.T) {
	svc, repo, _, dispatcher, _ := newTicketFixture(t)
	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{CompanyID: "company-1", Title: "shift"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteTicket(context.Background(), ticket.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), ticket.ID); !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("ticket still present after delete: %v", err)
	}
	got := dispatcher.types()
	if got[len(got)-1] != events.EventTicketDeleted {
		t.Fatalf("last event=%v, want ticket_deleted", got[len(got)-1])
	}
	if err := svc.DeleteTicket(context.Background(), ticket.ID); !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("second delete err=%v, want ErrTicketNotFound", err)
	}
}
