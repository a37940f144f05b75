package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

const cartTTL = 7 * 24 * time.Hour

// cartSession reads the cart_session cookie, minting one when absent so the
// cart follows the visitor across pages.
func cartSession(c *fiber.Ctx) string {
	sessionId := c.Cookies("cart_session")
	if sessionId == "" {
		sessionId = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "cart_session",
			Value:    sessionId,
			HTTPOnly: true,
			SameSite: "Lax",
			Expires:  time.Now().Add(cartTTL),
		})
	}
	return sessionId
}

func loadCart(ctx context.Context, sessionId string) (*model.Cart, error) {
	raw, err := database.Redis.Get(ctx, constants.CART_KEY_PREFIX+sessionId).Result()
	if errors.Is(err, redis.Nil) {
		return &model.Cart{SessionId: sessionId}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// corrupt entry, start over
		return &model.Cart{SessionId: sessionId}, nil
	}
	cart.SessionId = sessionId
	return &cart, nil
}

func saveCart(ctx context.Context, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, constants.CART_KEY_PREFIX+cart.SessionId, raw, cartTTL).Err()
}

func deleteCart(ctx context.Context, sessionId string) error {
	return database.Redis.Del(ctx, constants.CART_KEY_PREFIX+sessionId).Err()
}

func cartResponse(cart *model.Cart) fiber.Map {
	return fiber.Map{
		"items":          cart.Items,
		"itemCount":      cart.ItemCount(),
		"totalPence":     cart.Total(),
		"totalFormatted": cart.Total().Format(),
	}
}

func GetCart(c *fiber.Ctx) error {
	cart, err := loadCart(c.Context(), cartSession(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(cart))
}

// AddCartItem snapshots the current catalog price into the line; a repeated
// (cake, size) selection increments the existing line instead of adding one.
func AddCartItem(c *fiber.Ctx) error {
	input := c.Locals("addCartInput").(model.AddCartItemInput)

	var size model.CakeSize
	if err := database.DB.Where("id = ? AND cake_id = ? AND active = ?", input.SizeId, input.CakeId, true).
		First(&size).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cake size not found", err)
	}
	var cake model.Cake
	if err := database.DB.Preload("Category").Where("id = ? AND active = ?", input.CakeId, true).
		First(&cake).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cake not found", err)
	}

	cart, err := loadCart(c.Context(), cartSession(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load cart", err)
	}

	line := model.CartLine{
		CakeId:         cake.ID,
		CakeName:       cake.Name,
		SizeId:         size.ID,
		SizeName:       size.Name,
		UnitPricePence: size.PricePence,
	}
	if cake.Category != nil {
		line.CategoryId = cake.Category.ID
		line.CategoryName = cake.Category.Name
	}
	if cake.ImageUrl != nil {
		line.ImageUrl = *cake.ImageUrl
	}
	cart.AddItem(line, input.Quantity)

	if err := saveCart(c.Context(), cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not save cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(cart))
}

func UpdateCartItem(c *fiber.Ctx) error {
	lineId := c.Params("lineId")
	input := c.Locals("updateCartInput").(model.UpdateCartItemInput)

	cart, err := loadCart(c.Context(), cartSession(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load cart", err)
	}

	cart.UpdateQuantity(lineId, input.Quantity)

	if err := saveCart(c.Context(), cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not save cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(cart))
}

func RemoveCartItem(c *fiber.Ctx) error {
	lineId := c.Params("lineId")

	cart, err := loadCart(c.Context(), cartSession(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load cart", err)
	}

	cart.RemoveItem(lineId)

	if err := saveCart(c.Context(), cart); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not save cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(cart))
}

func ClearCart(c *fiber.Ctx) error {
	if err := deleteCart(c.Context(), cartSession(c)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not clear cart", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Cart cleared"})
}
