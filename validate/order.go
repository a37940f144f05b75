package validate

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// ValidateOrderItem enforces the catalog-XOR-custom shape of a line item.
func ValidateOrderItem(item model.OrderItemInput) error {
	catalog := item.CakeId != nil && item.CakeSizeId != nil
	if item.IsCustomCake {
		if catalog {
			return errors.New("item cannot be both a catalog cake and a custom cake")
		}
		if item.CustomCakeSize == nil || *item.CustomCakeSize == "" {
			return errors.New("custom cake requires customCakeSize")
		}
		if item.CustomCakeDescription == nil || *item.CustomCakeDescription == "" {
			return errors.New("custom cake requires customCakeDescription")
		}
		return nil
	}
	if !catalog {
		return errors.New("catalog item requires cakeId and cakeSizeId")
	}
	return nil
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid order payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		for i, item := range input.Items {
			if err := ValidateOrderItem(item); err != nil {
				return utils.ErrorResponse(c, 400, fmt.Sprintf("Invalid item %d", i+1), err)
			}
		}

		c.Locals("createOrderInput", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, "Invalid payload", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("statusInput", input)
		return c.Next()
	}
}
