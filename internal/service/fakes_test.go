package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/events"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// fixedClock returns a controllable clock function.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[string]domain.Ticket
	seq     int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]domain.Ticket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return &ticket, nil
}

func (r *fakeTicketRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Ticket
	for _, ticket := range r.tickets {
		if ticket.CompanyID == companyID {
			result = append(result, ticket)
		}
	}
	return result, nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return domain.ErrTicketNotFound
	}
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return domain.ErrTicketNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) Mutate(_ context.Context, id string, fn func(*domain.Ticket) error) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	if err := fn(&ticket); err != nil {
		return nil, err
	}
	r.tickets[id] = ticket
	return &ticket, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]domain.TicketCompany
	seq       int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]domain.TicketCompany)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *domain.TicketCompany) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	company.ID = fmt.Sprintf("company-%d", r.seq)
	r.companies[company.ID] = *company
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*domain.TicketCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return &company, nil
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]domain.TicketCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TicketCompany
	for _, company := range r.companies {
		result = append(result, company)
	}
	return result, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *domain.TicketCompany) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	r.companies[company.ID] = *company
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.TicketOrder
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]domain.TicketOrder)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.TicketOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	order.ID = fmt.Sprintf("order-%d", r.seq)
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.TicketOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return &order, nil
}

func (r *fakeOrderRepo) ListByCompany(_ context.Context, companyID string) ([]domain.TicketOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.TicketOrder
	for _, order := range r.orders {
		if order.CompanyID == companyID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]events.EventType, 0, len(d.events))
	for _, event := range d.events {
		result = append(result, event.Type)
	}
	return result
}
