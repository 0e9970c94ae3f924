package handler

import (
	"errors"

	"ticket_reseller/constants"
	"ticket_reseller/model"
	"ticket_reseller/store"
	"ticket_reseller/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAllTickets(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.store.AllTickets())
}

func (h *Handler) AddTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTicket").(model.CreateTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	ticket, err := h.store.CreateTicket(input)
	if err != nil {
		if errors.Is(err, store.ErrInvalidTicket) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, ticket)
}

func (h *Handler) UpdateTicket(c *fiber.Ctx) error {
	ticketId := c.Params("ticketId")
	input, ok := c.Locals("inputUpdateTicket").(model.UpdateTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if !h.store.UpdateTicket(ticketId, input) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, errors.New("ticket not found"))
	}

	ticket, _ := h.store.TicketByID(ticketId)
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// DeleteTicket always reports success; removing an absent id is a no-op.
func (h *Handler) DeleteTicket(c *fiber.Ctx) error {
	ticketId := c.Params("ticketId")
	h.store.DeleteTicket(ticketId)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ticketId": ticketId})
}

func (h *Handler) TransitionTicketStatus(c *fiber.Ctx) error {
	ticketId := c.Params("ticketId")
	input, ok := c.Locals("inputTransitionTicket").(model.TransitionTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := h.store.TransitionTicketStatus(ticketId, input.Status); err != nil {
		if errors.Is(err, store.ErrTicketNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_TRANSITION, err)
	}

	ticket, _ := h.store.TicketByID(ticketId)
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}
