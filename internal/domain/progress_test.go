package domain

import (
	"math"
	"testing"
	"time"
)

func TestSumOrderedHours(t *testing.T) {
	cases := []struct {
		name   string
		orders []TicketOrder
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []TicketOrder{{Hours: 10}}, 10},
		{"multiple", []TicketOrder{{Hours: 10}, {Hours: 2.5}, {Hours: 0}}, 12.5},
	}
	for _, tt := range cases {
		if got := SumOrderedHours(tt.orders); got != tt.want {
			t.Fatalf("%s: SumOrderedHours=%v, want %v", tt.name, got, tt.want)
		}
	}
}

// Company with one order of 10 hours and one closed ticket of 2.5 hours.
func TestComputeProgressSnapshot(t *testing.T) {
	company := TicketCompany{ID: "company-1", Name: "Acme"}

	ticket := runningTicket()
	end := t0.Add(2*time.Hour + 30*time.Minute)
	if err := ticket.Close(end, end); err != nil {
		t.Fatal(err)
	}

	orders := []TicketOrder{{CompanyID: company.ID, Hours: 10, Date: t0}}

	overview := ComputeProgress(company, []Ticket{*ticket}, orders, end.Add(24*time.Hour))
	if overview.Company.ID != "company-1" {
		t.Fatalf("company identity lost: %+v", overview.Company)
	}
	if overview.Progress.OrderedHours != 10 {
		t.Fatalf("orderedHours=%v, want 10", overview.Progress.OrderedHours)
	}
	if overview.Progress.UsedHours != 2.5 {
		t.Fatalf("usedHours=%v, want 2.5", overview.Progress.UsedHours)
	}
	if overview.Progress.TicketCount != 1 {
		t.Fatalf("ticketCount=%d, want 1", overview.Progress.TicketCount)
	}
}

// usedHours equals the sum of TotalDuration over each ticket independently.
func TestComputeProgressAdditivity(t *testing.T) {
	company := TicketCompany{ID: "company-1", Name: "Acme"}
	asOf := t0.Add(6 * time.Hour)

	running := *runningTicket()

	paused := *runningTicket()
	if err := paused.Toggle(t0.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	closed := *runningTicket()
	if err := closed.Close(t0.Add(30*time.Minute), t0.Add(30*time.Minute)); err != nil {
		t.Fatal(err)
	}

	tickets := []Ticket{running, paused, closed}
	var wantHours float64
	for i := range tickets {
		wantHours += TotalDuration(&tickets[i], asOf).Hours()
	}

	overview := ComputeProgress(company, tickets, nil, asOf)
	if math.Abs(overview.Progress.UsedHours-wantHours) > 1e-9 {
		t.Fatalf("usedHours=%v, want %v", overview.Progress.UsedHours, wantHours)
	}
	if overview.Progress.TicketCount != 3 {
		t.Fatalf("ticketCount=%d, want 3", overview.Progress.TicketCount)
	}
	if overview.Progress.OrderedHours != 0 {
		t.Fatalf("orderedHours=%v, want 0 for no orders", overview.Progress.OrderedHours)
	}
}

// An empty company yields a zero snapshot.
func TestComputeProgressEmptyCompany(t *testing.T) {
	overview := ComputeProgress(TicketCompany{ID: "c"}, nil, nil, t0)
	if overview.Progress != (CompanyProgress{}) {
		t.Fatalf("empty company progress=%+v, want zero", overview.Progress)
	}
}
