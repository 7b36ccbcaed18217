package domain

import "time"

// TicketOrder records a purchase of hours by a company.
type TicketOrder struct {
	ID        string
	CompanyID string
	Hours     float64
	Date      time.Time
	CreatedAt time.Time
}

// SumOrderedHours adds up the hours across orders. Empty input sums to zero.
// No rounding or currency semantics.
func SumOrderedHours(orders []TicketOrder) float64 {
	var total float64
	for _, order := range orders {
		total += order.Hours
	}
	return total
}
