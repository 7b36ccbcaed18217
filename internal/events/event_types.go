package events

import (
	"time"

	"github.com/spec-kit/ticket-billing/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketPaused  EventType = "ticket_paused"
	EventTicketResumed EventType = "ticket_resumed"
	EventTicketClosed  EventType = "ticket_closed"
	EventTicketEdited  EventType = "ticket_edited"
	EventTicketDeleted EventType = "ticket_deleted"
	EventOrderPlaced   EventType = "order_placed"
	EventOrderDeleted  EventType = "order_deleted"
)

// Event represents a domain event emitted by services. CompanyID is carried
// on every event so subscribers can invalidate per-company read models.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CompanyID string      `json:"company_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketLifecyclePayload payload for ticket lifecycle events.
type TicketLifecyclePayload struct {
	TicketID      string             `json:"ticket_id"`
	State         domain.TicketState `json:"state"`
	AccruedMillis int64              `json:"accrued_ms"`
}

// OrderPayload payload for order events.
type OrderPayload struct {
	OrderID string  `json:"order_id"`
	Hours   float64 `json:"hours"`
}
