package service

import (
	"context"
	"strings"

	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/repository"
	apperrors "github.com/spec-kit/ticket-billing/pkg/util"
)

// CompanyService manages billing companies.
type CompanyService struct {
	companies repository.CompanyRepository
}

// CompanyInput describes company create/update payloads.
type CompanyInput struct {
	Name    string
	Email   *string
	Contact *string
}

// NewCompanyService constructs the service.
func NewCompanyService(companies repository.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// CreateCompany registers a new billing company.
func (s *CompanyService) CreateCompany(ctx context.Context, input CompanyInput) (*domain.TicketCompany, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	company := &domain.TicketCompany{
		Name:    name,
		Email:   input.Email,
		Contact: input.Contact,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateCompany replaces the company's identity fields.
func (s *CompanyService) UpdateCompany(ctx context.Context, id string, input CompanyInput) (*domain.TicketCompany, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		company.Name = name
	}
	if input.Email != nil {
		company.Email = input.Email
	}
	if input.Contact != nil {
		company.Contact = input.Contact
	}
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company; its tickets and orders go with it at the
// storage level.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	return s.companies.Delete(ctx, id)
}
