package validate

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

func CreateMarket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMarketInput
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

func UpdateMarket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateMarketInput
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

func CreateMarketDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMarketDateInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid date", err)
		}

		c.Locals("createInput", model.MarketDate{
			Date:      date,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Active:    true,
		})
		return c.Next()
	}
}
