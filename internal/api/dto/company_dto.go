package dto

import "time"

// CreateCompanyRequest payload.
type CreateCompanyRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Contact *string `json:"contact"`
}

// UpdateCompanyRequest payload; empty/nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Contact *string `json:"contact"`
}

// ProgressResponse is the derived progress block of a company.
type ProgressResponse struct {
	UsedHours    float64 `json:"used_hours"`
	OrderedHours float64 `json:"ordered_hours"`
	TicketCount  int     `json:"ticket_count"`
}

// CompanyResponse exposes a company, optionally with progress attached.
type CompanyResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     *string           `json:"email,omitempty"`
	Contact   *string           `json:"contact,omitempty"`
	Progress  *ProgressResponse `json:"progress,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
