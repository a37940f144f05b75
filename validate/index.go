package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

// Reorder takes the full id list in display order. Position in the list
// becomes the row's order index.
func Reorder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if len(input.IDs) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("ids must not be empty"))
		}

		c.Locals("orderedIds", input.IDs)
		return c.Next()
	}
}

// Gallery checks the :gallery route parameter against the known image
// tables.
func Gallery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		gallery := c.Params("gallery")
		for _, g := range constants.Galleries {
			if g == gallery {
				c.Locals("gallery", gallery)
				return c.Next()
			}
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown gallery", fmt.Errorf("gallery %q", gallery))
	}
}
