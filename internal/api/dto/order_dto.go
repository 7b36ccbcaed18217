package dto

import "time"

// CreateOrderRequest payload; a nil date defaults to the creation instant.
type CreateOrderRequest struct {
	CompanyID string     `json:"company_id"`
	Hours     float64    `json:"hours"`
	Date      *time.Time `json:"date"`
}

// OrderResponse exposes an hour purchase.
type OrderResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Hours     float64   `json:"hours"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
