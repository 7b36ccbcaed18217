package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-billing/internal/api/dto"
	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/service"
	apperrors "github.com/spec-kit/ticket-billing/pkg/util"
)

// OrdersHandler manages hour-order endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// CreateOrder POST /orders.
func (h *OrdersHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CompanyID == "" {
		return apperrors.NewValidationError("company_id required", nil)
	}
	order, err := h.service.CreateOrder(c.Context(), service.OrderCreateInput{
		CompanyID: req.CompanyID,
		Hours:     req.Hours,
		Date:      req.Date,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderResponse(order)})
}

// DeleteOrder DELETE /orders/:id.
func (h *OrdersHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.service.DeleteOrder(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func orderResponse(order *domain.TicketOrder) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID,
		CompanyID: order.CompanyID,
		Hours:     order.Hours,
		Date:      order.Date,
		CreatedAt: order.CreatedAt,
	}
}
