package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-billing/internal/api/http/handlers"
	"github.com/spec-kit/ticket-billing/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Companies      *handlers.CompaniesHandler
	Tickets        *handlers.TicketsHandler
	Orders         *handlers.OrdersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)

	companies := app.Group("/companies", cfg.AuthMiddleware.Handle)
	companies.Get("/", cfg.Companies.ListCompanies)
	companies.Post("/", cfg.Companies.CreateCompany)
	companies.Get("/:id", cfg.Companies.GetCompany)
	companies.Patch("/:id", cfg.Companies.UpdateCompany)
	companies.Delete("/:id", cfg.Companies.DeleteCompany)
	companies.Get("/:id/tickets", cfg.Companies.ListCompanyTickets)
	companies.Get("/:id/orders", cfg.Companies.ListCompanyOrders)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id", cfg.Tickets.EditTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)
	tickets.Post("/:id/toggle", cfg.Tickets.ToggleTicket)
	tickets.Post("/:id/close", cfg.Tickets.CloseTicket)

	orders := app.Group("/orders", cfg.AuthMiddleware.Handle)
	orders.Post("/", cfg.Orders.CreateOrder)
	orders.Delete("/:id", cfg.Orders.DeleteOrder)
}
