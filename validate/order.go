package validate

import (
	"fmt"

	"ticket_reseller/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderInput
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

		c.Locals("inputUpdateOrder", input)
		return c.Next()
	}
}

func TransitionOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TransitionOrderInput
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

		c.Locals("inputTransitionOrder", input)
		return c.Next()
	}
}
