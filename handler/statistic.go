package handler

import (
	"ticket_reseller/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats recomputes the aggregate on every request. The numbers
// come straight from the live collections, never from a cached snapshot.
func (h *Handler) GetDashboardStats(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.store.DashboardStats())
}
