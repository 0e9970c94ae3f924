package handler

import (
	"errors"

	"ticket_reseller/constants"
	"ticket_reseller/model"
	"ticket_reseller/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) RegisterSeller(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegisterSeller").(model.RegisterSellerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	seller := h.store.RegisterSeller(input)
	return utils.SuccessResponse(c, fiber.StatusCreated, seller)
}

func (h *Handler) GetSubAccounts(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, h.store.SubAccounts())
}

func (h *Handler) AddSubAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateSubAccount").(model.CreateSubAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	account, err := h.store.AddSubAccount(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func (h *Handler) ToggleSubAccountStatus(c *fiber.Ctx) error {
	subAccountId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	account, found := h.store.ToggleSubAccountStatus(uint(subAccountId))
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SUB_ACCOUNT_NOT_FOUND, errors.New("sub account not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

// DeleteSubAccount is idempotent; an unknown id still answers success.
func (h *Handler) DeleteSubAccount(c *fiber.Ctx) error {
	subAccountId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	h.store.DeleteSubAccount(uint(subAccountId))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"subAccountId": subAccountId})
}
