package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/events"
	"github.com/spec-kit/ticket-billing/internal/repository"
	apperrors "github.com/spec-kit/ticket-billing/pkg/util"
)

// OrderService manages hour purchases for companies.
type OrderService struct {
	orders     repository.OrderRepository
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
	clock      func() time.Time
}

// OrderDependencies bundles collaborators for the order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	CompanyRepo repository.CompanyRepository
	Dispatcher  events.Dispatcher
	Clock       func() time.Time
}

// OrderCreateInput describes an hour purchase. A nil Date defaults to the
// order-creation time.
type OrderCreateInput struct {
	CompanyID string
	Hours     float64
	Date      *time.Time
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &OrderService{
		orders:     deps.OrderRepo,
		companies:  deps.CompanyRepo,
		dispatcher: deps.Dispatcher,
		clock:      clock,
	}
}

// CreateOrder records an hour purchase for a company.
func (s *OrderService) CreateOrder(ctx context.Context, input OrderCreateInput) (*domain.TicketOrder, error) {
	if input.Hours < 0 {
		return nil, apperrors.NewValidationError("hours must be non-negative", nil)
	}
	if _, err := s.companies.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	date := s.clock()
	if input.Date != nil {
		date = *input.Date
	}
	order := &domain.TicketOrder{
		CompanyID: input.CompanyID,
		Hours:     input.Hours,
		Date:      date,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	s.publishOrder(ctx, events.EventOrderPlaced, order)
	return order, nil
}

// ListCompanyOrders returns all orders of a company.
func (s *OrderService) ListCompanyOrders(ctx context.Context, companyID string) ([]domain.TicketOrder, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.orders.ListByCompany(ctx, companyID)
}

// DeleteOrder removes an order by id.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.publishOrder(ctx, events.EventOrderDeleted, order)
	return nil
}

func (s *OrderService) publishOrder(ctx context.Context, eventType events.EventType, order *domain.TicketOrder) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CompanyID: order.CompanyID,
		Timestamp: s.clock(),
		Payload: events.OrderPayload{
			OrderID: order.ID,
			Hours:   order.Hours,
		},
	})
}
