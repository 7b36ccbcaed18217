package service

import (
	"context"
	"time"

	"github.com/spec-kit/ticket-billing/internal/cache"
	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/repository"
)

// ProgressService produces company progress snapshots: ordered hours from
// the order ledger against hours consumed by the company's tickets. Every
// snapshot is recomputed from the full current ticket and order sets; the
// cache only short-circuits repeat reads within its TTL.
type ProgressService struct {
	companies repository.CompanyRepository
	tickets   repository.TicketRepository
	orders    repository.OrderRepository
	snapshots *cache.ProgressCache
	clock     func() time.Time
}

// ProgressDependencies bundles collaborators for the progress service.
type ProgressDependencies struct {
	CompanyRepo repository.CompanyRepository
	TicketRepo  repository.TicketRepository
	OrderRepo   repository.OrderRepository
	Snapshots   *cache.ProgressCache
	Clock       func() time.Time
}

// NewProgressService constructs the service.
func NewProgressService(deps ProgressDependencies) *ProgressService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &ProgressService{
		companies: deps.CompanyRepo,
		tickets:   deps.TicketRepo,
		orders:    deps.OrderRepo,
		snapshots: deps.Snapshots,
		clock:     clock,
	}
}

// CompanyOverview returns one company with its derived progress.
func (s *ProgressService) CompanyOverview(ctx context.Context, companyID string) (*domain.CompanyOverview, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.overviewFor(ctx, *company)
}

// ListCompanyOverviews returns every company with its derived progress.
func (s *ProgressService) ListCompanyOverviews(ctx context.Context) ([]domain.CompanyOverview, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	overviews := make([]domain.CompanyOverview, 0, len(companies))
	for _, company := range companies {
		overview, err := s.overviewFor(ctx, company)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, *overview)
	}
	return overviews, nil
}

func (s *ProgressService) overviewFor(ctx context.Context, company domain.TicketCompany) (*domain.CompanyOverview, error) {
	if progress, ok := s.snapshots.Get(ctx, company.ID); ok {
		return &domain.CompanyOverview{Company: company, Progress: *progress}, nil
	}

	tickets, err := s.tickets.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	overview := domain.ComputeProgress(company, tickets, orders, s.clock())
	s.snapshots.Set(ctx, company.ID, overview.Progress)
	return &overview, nil
}
