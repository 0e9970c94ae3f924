package handler

import (
	"errors"
	"strconv"

	"ticket_reseller/constants"
	"ticket_reseller/helper"
	"ticket_reseller/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetEvents(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.store.Events())
}

func (h *Handler) GetSessions(c *fiber.Ctx) error {
	eventId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if _, found := h.store.EventByID(uint(eventId)); !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, errors.New("event not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, h.store.Sessions(uint(eventId)))
}

func (h *Handler) GetSessionAreas(c *fiber.Ctx) error {
	sessionId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if _, found := h.store.SessionByID(uint(sessionId)); !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, errors.New("session not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, h.store.SessionAreas(uint(sessionId)))
}

func (h *Handler) GetSessionTickets(c *fiber.Ctx) error {
	sessionId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if _, found := h.store.SessionByID(uint(sessionId)); !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SESSION_NOT_FOUND, errors.New("session not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, h.store.TicketsBySession(uint(sessionId)))
}

// GetPricePosition places an asking price inside an area's reference band.
func (h *Handler) GetPricePosition(c *fiber.Ctx) error {
	areaId := c.Params("areaId")

	price, err := strconv.Atoi(c.Query("price"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("price query invalid"))
	}

	area, found := h.store.AreaByID(areaId)
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AREA_NOT_FOUND, errors.New("area not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.PositionOf(area, price))
}
