package dto

import (
	"time"

	"github.com/spec-kit/ticket-billing/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	CompanyID   string     `json:"company_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   *time.Time `json:"start_time"`
}

// EditTicketRequest carries optional replacement fields.
type EditTicketRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// CloseTicketRequest payload; a nil end_time closes at the current instant.
type CloseTicketRequest struct {
	EndTime *time.Time `json:"end_time"`
}

// TicketResponse exposes a ticket with its accrued duration as of the
// response instant.
type TicketResponse struct {
	ID           string             `json:"id"`
	CompanyID    string             `json:"company_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	State        domain.TicketState `json:"state"`
	StartTime    time.Time          `json:"start_time"`
	ResumeTime   *time.Time         `json:"resume_time,omitempty"`
	EndTime      *time.Time         `json:"end_time,omitempty"`
	AccruedHours float64            `json:"accrued_hours"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
