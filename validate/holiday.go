package validate

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

func CreateHoliday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHolidayInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		start, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid startDate", err)
		}
		end, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, 400, "Invalid endDate", err)
		}
		if end.Before(start) {
			return utils.ErrorResponse(c, 400, "Invalid range", errors.New("endDate before startDate"))
		}

		c.Locals("createInput", model.Holiday{
			Name:      input.Name,
			StartDate: start,
			EndDate:   end,
			Message:   input.Message,
			Active:    true,
		})
		return c.Next()
	}
}

func UpdateHoliday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateHolidayInput
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
