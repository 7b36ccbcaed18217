package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/events"
	"github.com/spec-kit/ticket-billing/internal/repository"
)

// TicketService coordinates the ticket time-accounting lifecycle. The accrual
// rules live on the domain types; this layer supplies the clock, the
// read-modify-write serialization, and event publication.
type TicketService struct {
	tickets    repository.TicketRepository
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
	clock      func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CompanyRepo repository.CompanyRepository
	Dispatcher  events.Dispatcher
	Clock       func() time.Time
}

// TicketCreateInput describes ticket creation payload. A nil StartTime means
// "started now".
type TicketCreateInput struct {
	CompanyID   string
	Title       string
	Description string
	StartTime   *time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		companies:  deps.CompanyRepo,
		dispatcher: deps.Dispatcher,
		clock:      clock,
	}
}

// CreateTicket opens a new running ticket for a company.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if _, err := s.companies.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	var startTime time.Time
	if input.StartTime != nil {
		startTime = *input.StartTime
	}
	ticket := domain.NewTicket(
		input.CompanyID,
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		startTime,
		s.clock(),
	)

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishLifecycle(ctx, events.EventTicketCreated, ticket)
	return ticket, nil
}

// GetTicket fetches a single ticket.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// ListCompanyTickets returns all tickets of a company.
func (s *TicketService) ListCompanyTickets(ctx context.Context, companyID string) ([]domain.Ticket, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.tickets.ListByCompany(ctx, companyID)
}

// ToggleTicket flips a ticket between running and paused. The transition runs
// under the repository's row lock so concurrent toggles on the same ticket
// cannot lose an accrual interval.
func (s *TicketService) ToggleTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	now := s.clock()
	ticket, err := s.tickets.Mutate(ctx, id, func(t *domain.Ticket) error {
		return t.Toggle(now)
	})
	if err != nil {
		return nil, err
	}
	eventType := events.EventTicketResumed
	if ticket.Paused {
		eventType = events.EventTicketPaused
	}
	s.publishLifecycle(ctx, eventType, ticket)
	return ticket, nil
}

// CloseTicket terminates a ticket, freezing its accrued duration. A nil
// endTime means "closed now".
func (s *TicketService) CloseTicket(ctx context.Context, id string, endTime *time.Time) (*domain.Ticket, error) {
	now := s.clock()
	var end time.Time
	if endTime != nil {
		end = *endTime
	}
	ticket, err := s.tickets.Mutate(ctx, id, func(t *domain.Ticket) error {
		return t.Close(end, now)
	})
	if err != nil {
		return nil, err
	}
	s.publishLifecycle(ctx, events.EventTicketClosed, ticket)
	return ticket, nil
}

// EditTicket applies the provided fields without lifecycle re-validation.
// A no-op when the edit carries no fields.
func (s *TicketService) EditTicket(ctx context.Context, id string, edit domain.TicketEdit) (*domain.Ticket, error) {
	if edit.Empty() {
		return s.tickets.GetByID(ctx, id)
	}
	ticket, err := s.tickets.Mutate(ctx, id, func(t *domain.Ticket) error {
		edit.Apply(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishLifecycle(ctx, events.EventTicketEdited, ticket)
	return ticket, nil
}

// DeleteTicket removes a ticket unconditionally.
func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, id); err != nil {
		return err
	}
	s.publishLifecycle(ctx, events.EventTicketDeleted, ticket)
	return nil
}

func (s *TicketService) publishLifecycle(ctx context.Context, eventType events.EventType, ticket *domain.Ticket) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CompanyID: ticket.CompanyID,
		Timestamp: s.clock(),
		Payload: events.TicketLifecyclePayload{
			TicketID:      ticket.ID,
			State:         ticket.State(),
			AccruedMillis: domain.TotalDuration(ticket, s.clock()).Milliseconds(),
		},
	})
}
