package handler

import (
	"errors"
	"strconv"

	"ticket_reseller/constants"
	"ticket_reseller/model"
	"ticket_reseller/store"
	"ticket_reseller/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAllOrders(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.store.AllOrders())
}

func (h *Handler) GetRecentOrders(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("limit query invalid"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, h.store.RecentOrders(limit))
}

func (h *Handler) UpdateOrder(c *fiber.Ctx) error {
	orderId := c.Params("orderId")
	input, ok := c.Locals("inputUpdateOrder").(model.UpdateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if !h.store.UpdateOrder(orderId, input) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, errors.New("order not found"))
	}

	order, _ := h.store.OrderByID(orderId)
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func (h *Handler) TransitionOrderStatus(c *fiber.Ctx) error {
	orderId := c.Params("orderId")
	input, ok := c.Locals("inputTransitionOrder").(model.TransitionOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := h.store.TransitionOrder(orderId, input.StatusType, input.Status); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS_TRANSITION, err)
	}

	order, _ := h.store.OrderByID(orderId)
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
