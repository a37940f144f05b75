package validate

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

func CreateCakeCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCakeCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateCakeCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateCakeCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}

func CreateCake() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCakeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateCake() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateCakeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		return c.Next()
	}
}

func UpsertCakeSize() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CakeSizeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("sizeInput", input)
		return c.Next()
	}
}
