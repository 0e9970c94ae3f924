package router

import (
	"ticket_reseller/handler"
	"ticket_reseller/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	event := v1.Group("/event", logger.New())
	event.Get("/", h.GetEvents)
	event.Get("/:eventId/sessions", validate.GetById("eventId"), h.GetSessions)

	session := v1.Group("/session", logger.New())
	session.Get("/:sessionId/areas", validate.GetById("sessionId"), h.GetSessionAreas)
	session.Get("/:sessionId/tickets", validate.GetById("sessionId"), h.GetSessionTickets)

	area := v1.Group("/area", logger.New())
	area.Get("/:areaId/position", h.GetPricePosition)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/", h.GetAllTickets)
	ticket.Post("/", validate.CreateTicket(), h.AddTicket)
	ticket.Put("/:ticketId", validate.UpdateTicket(), h.UpdateTicket)
	ticket.Delete("/:ticketId", h.DeleteTicket)
	ticket.Patch("/:ticketId/status", validate.TransitionTicket(), h.TransitionTicketStatus)

	order := v1.Group("/order", logger.New())
	order.Get("/", h.GetAllOrders)
	order.Get("/recent", h.GetRecentOrders)
	order.Put("/:orderId", validate.UpdateOrder(), h.UpdateOrder)
	order.Patch("/:orderId/status", validate.TransitionOrder(), h.TransitionOrderStatus)

	v1.Get("/statistic", h.GetDashboardStats)

	seller := v1.Group("/seller", logger.New())
	seller.Post("/register", validate.RegisterSeller(), h.RegisterSeller)

	subAccount := v1.Group("/sub-account", logger.New())
	subAccount.Get("/", h.GetSubAccounts)
	subAccount.Post("/", validate.CreateSubAccount(), h.AddSubAccount)
	subAccount.Patch("/:subAccountId/toggle", validate.GetById("subAccountId"), h.ToggleSubAccountStatus)
	subAccount.Delete("/:subAccountId", validate.GetById("subAccountId"), h.DeleteSubAccount)
}
