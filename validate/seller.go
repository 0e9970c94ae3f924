package validate

import (
	"fmt"

	"ticket_reseller/model"

	"github.com/gofiber/fiber/v2"
)

func RegisterSeller() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterSellerInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputRegisterSeller", input)
		return c.Next()
	}
}

func CreateSubAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSubAccountInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateSubAccount", input)
		return c.Next()
	}
}
