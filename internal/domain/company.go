package domain

import "time"

// TicketCompany is the billing entity that owns tickets and orders.
type TicketCompany struct {
	ID        string
	Name      string
	Email     *string
	Contact   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyProgress is the derived read model for a company: hours consumed by
// its tickets against hours purchased through its orders. Always recomputed
// from the current ticket and order sets, never persisted.
type CompanyProgress struct {
	UsedHours    float64
	OrderedHours float64
	TicketCount  int
}

// CompanyOverview composes a company's identity with its derived progress.
// The two are combined only at the read boundary; the progress half is
// ephemeral.
type CompanyOverview struct {
	Company  TicketCompany
	Progress CompanyProgress
}

// ComputeProgress folds a company's tickets through the duration accumulator
// and its orders through the ledger sum to produce a point-in-time snapshot.
func ComputeProgress(company TicketCompany, tickets []Ticket, orders []TicketOrder, asOf time.Time) CompanyOverview {
	var used time.Duration
	for i := range tickets {
		used += TotalDuration(&tickets[i], asOf)
	}
	return CompanyOverview{
		Company: company,
		Progress: CompanyProgress{
			UsedHours:    used.Hours(),
			OrderedHours: SumOrderedHours(orders),
			TicketCount:  len(tickets),
		},
	}
}
