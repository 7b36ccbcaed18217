package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-billing/internal/api/dto"
	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/service"
	apperrors "github.com/spec-kit/ticket-billing/pkg/util"
)

// CompaniesHandler manages company endpoints.
type CompaniesHandler struct {
	companies *service.CompanyService
	progress  *service.ProgressService
	tickets   *service.TicketService
	orders    *service.OrderService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companies *service.CompanyService, progress *service.ProgressService, tickets *service.TicketService, orders *service.OrderService) *CompaniesHandler {
	return &CompaniesHandler{companies: companies, progress: progress, tickets: tickets, orders: orders}
}

// ListCompanies GET /companies — every company with progress attached.
func (h *CompaniesHandler) ListCompanies(c *fiber.Ctx) error {
	overviews, err := h.progress.ListCompanyOverviews(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CompanyResponse, 0, len(overviews))
	for i := range overviews {
		items = append(items, overviewResponse(&overviews[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateCompany POST /companies.
func (h *CompaniesHandler) CreateCompany(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	company, err := h.companies.CreateCompany(c.Context(), service.CompanyInput{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": companyResponse(company)})
}

// GetCompany GET /companies/:id — company with progress attached.
func (h *CompaniesHandler) GetCompany(c *fiber.Ctx) error {
	overview, err := h.progress.CompanyOverview(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overviewResponse(overview)})
}

// UpdateCompany PATCH /companies/:id.
func (h *CompaniesHandler) UpdateCompany(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	company, err := h.companies.UpdateCompany(c.Context(), c.Params("id"), service.CompanyInput{
		Name:    req.Name,
		Email:   req.Email,
		Contact: req.Contact,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": companyResponse(company)})
}

// DeleteCompany DELETE /companies/:id.
func (h *CompaniesHandler) DeleteCompany(c *fiber.Ctx) error {
	if err := h.companies.DeleteCompany(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListCompanyTickets GET /companies/:id/tickets.
func (h *CompaniesHandler) ListCompanyTickets(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListCompanyTickets(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	now := time.Now()
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i], now))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListCompanyOrders GET /companies/:id/orders.
func (h *CompaniesHandler) ListCompanyOrders(c *fiber.Ctx) error {
	orders, err := h.orders.ListCompanyOrders(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func companyResponse(company *domain.TicketCompany) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        company.ID,
		Name:      company.Name,
		Email:     company.Email,
		Contact:   company.Contact,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

func overviewResponse(overview *domain.CompanyOverview) dto.CompanyResponse {
	resp := companyResponse(&overview.Company)
	resp.Progress = &dto.ProgressResponse{
		UsedHours:    overview.Progress.UsedHours,
		OrderedHours: overview.Progress.OrderedHours,
		TicketCount:  overview.Progress.TicketCount,
	}
	return resp
}
