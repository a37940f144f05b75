package handler

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
	"github.com/zacharvey88/teatime-collective-sub000/validate"
)

// buildOrderItems turns validated input lines into order items with prices
// snapshotted from the current catalog. Catalog lines must reference an
// active cake/size at submission time.
func buildOrderItems(db *gorm.DB, inputs []model.OrderItemInput) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item := model.OrderItem{
			Quantity:      in.Quantity,
			WritingOnCake: in.WritingOnCake,
		}

		if in.IsCustomCake {
			item.IsCustomCake = true
			item.CustomCakeSize = in.CustomCakeSize
			item.CustomCakeDescription = in.CustomCakeDescription
			item.ItemName = "Custom cake"
			if in.EstimatedPricePence != nil {
				item.UnitPricePence = model.Pence(*in.EstimatedPricePence)
			}
		} else {
			var size model.CakeSize
			if err := db.Where("id = ? AND cake_id = ? AND active = ?", *in.CakeSizeId, *in.CakeId, true).
				First(&size).Error; err != nil {
				return nil, fmt.Errorf("cake size %d not available: %w", *in.CakeSizeId, err)
			}
			var cake model.Cake
			if err := db.Where("id = ? AND active = ?", *in.CakeId, true).First(&cake).Error; err != nil {
				return nil, fmt.Errorf("cake %d not available: %w", *in.CakeId, err)
			}

			item.CakeId = in.CakeId
			item.CakeSizeId = in.CakeSizeId
			item.ItemName = fmt.Sprintf("%s (%s)", cake.Name, size.Name)
			item.UnitPricePence = size.PricePence
			// cart lines keep the price quoted when they were added, even
			// if the catalog was repriced since
			if in.UnitPricePence != nil {
				item.UnitPricePence = model.Pence(*in.UnitPricePence)
			}
		}

		item.TotalPricePence = item.UnitPricePence * model.Pence(item.Quantity)
		items = append(items, item)
	}
	return items, nil
}

// cartToOrderItems converts the session cart into input lines so a customer
// can submit without restating every selection in the request body. The
// snapshotted unit price travels with each line so the order totals what the
// cart displayed.
func cartToOrderItems(cart *model.Cart) []model.OrderItemInput {
	inputs := make([]model.OrderItemInput, 0, len(cart.Items))
	for _, line := range cart.Items {
		cakeId, sizeId := line.CakeId, line.SizeId
		price := int64(line.UnitPricePence)
		inputs = append(inputs, model.OrderItemInput{
			CakeId:         &cakeId,
			CakeSizeId:     &sizeId,
			Quantity:       line.Quantity,
			UnitPricePence: &price,
		})
	}
	return inputs
}

// CreateOrder is the submission pipeline: validate, persist, enrich, notify,
// finalize. Persistence and notification are deliberately not one
// transaction; an order that exists but was not emailed is still visible to
// the admin dashboard and is not an error state.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("createOrderInput").(model.CreateOrderInput)
	db := database.DB

	// Items either come in the body or from the session cart.
	fromCart := false
	if len(input.Items) == 0 {
		cart, err := loadCart(c.Context(), cartSession(c))
		if err == nil && len(cart.Items) > 0 {
			input.Items = cartToOrderItems(cart)
			fromCart = true
		}
	}
	if len(input.Items) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cart is empty", errors.New("no items"))
	}
	for i, item := range input.Items {
		if err := validate.ValidateOrderItem(item); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid item %d", i+1), err)
		}
	}

	setting, err := helper.LoadSettings(db)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if setting.OrdersPaused {
		msg := setting.OrdersPausedMessage
		if msg == "" {
			msg = constants.ORDERS_PAUSED_DEFAULT_MSG
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, msg, nil)
	}

	// Idempotent resubmission: a replayed key returns the order the first
	// attempt created, no duplicate row.
	if input.IdempotencyKey != nil && *input.IdempotencyKey != "" {
		var existing model.Order
		err := db.Preload("Items").Where("idempotency_key = ?", *input.IdempotencyKey).First(&existing).Error
		if err == nil {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
				"order":    existing,
				"replayed": true,
			})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	items, err := buildOrderItems(db, input.Items)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Order contains unavailable items", err)
	}

	var total model.Pence
	for _, item := range items {
		total += item.TotalPricePence
	}

	order := model.Order{
		PublicCode:          helper.GeneratePublicOrderCode(),
		IdempotencyKey:      input.IdempotencyKey,
		CustomerName:        input.CustomerName,
		CustomerEmail:       input.CustomerEmail,
		CustomerPhone:       input.CustomerPhone,
		Allergies:           input.Allergies,
		SpecialRequests:     input.SpecialRequests,
		EstimatedTotalPence: total,
		Status:              constants.ORDER_STATUS_NEW,
		Items:               items,
	}
	if input.CollectionDate != nil {
		if d, err := time.Parse("2006-01-02", *input.CollectionDate); err == nil {
			order.CollectionDate = &d
		}
	}

	// Persist. On failure the cart is untouched and the client may retry.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return helper.UpsertCustomerAggregate(tx, order)
	})
	if err != nil {
		if input.IdempotencyKey != nil && strings.Contains(err.Error(), "idempotency_key") {
			// lost a race against the same key; hand back the winner
			var existing model.Order
			if lookupErr := db.Preload("Items").Where("idempotency_key = ?", *input.IdempotencyKey).
				First(&existing).Error; lookupErr == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
					"order":    existing,
					"replayed": true,
				})
			}
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create order", err)
	}

	// Enrich + notify. Catalog lookups can fail without failing the
	// pipeline, and each email send reports its own outcome.
	enriched := helper.EnrichOrderItems(db, order.Items)
	emailData := helper.BuildOrderEmailData(order, enriched)

	qrPng, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err != nil {
		log.Printf("collection QR for %s failed: %v", order.PublicCode, err)
		qrPng = nil
	}

	customerErr, ownerErr := utils.SendOrderEmails(
		setting.OrderEmailFrom, setting.OrderNotificationEmail, emailData, qrPng)

	notifications := fiber.Map{
		"customer": notificationOutcome(customerErr),
		"owner":    notificationOutcome(ownerErr),
	}

	// Finalize: cart cleared only after a fully persisted order.
	if fromCart {
		if err := deleteCart(c.Context(), cartSession(c)); err != nil {
			log.Printf("cart clear after order %s failed: %v", order.PublicCode, err)
		}
	}
	PublishNewOrder(order)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"order":         order,
		"notifications": notifications,
	})
}

func notificationOutcome(err error) string {
	if err != nil {
		return "failed"
	}
	return "sent"
}

// GetOrderByCode is the public status lookup; the code itself is the
// capability.
func GetOrderByCode(c *fiber.Ctx) error {
	publicCode := c.Params("publicCode")

	var order model.Order
	if err := database.DB.Preload("Items").Where("public_code = ?", publicCode).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publicCode":     order.PublicCode,
		"status":         order.Status,
		"customerName":   order.CustomerName,
		"collectionDate": order.CollectionDate,
		"estimatedTotal": order.EstimatedTotalPence.Format(),
		"items":          order.Items,
		"createdAt":      order.CreatedAt,
	})
}

func GetOrders(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	filter := new(model.OrderFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Email != nil {
		db = db.Where("customer_email ILIKE ?", "%"+*filter.Email+"%")
	}
	if filter.From != nil {
		db = db.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("created_at <= ?", *filter.To)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var orders []model.Order
	db.Preload("Items").Order("created_at desc").Find(&orders)

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus sets any known status from any current status. The
// transition graph is unrestricted on purpose: the admin can archive a
// brand-new request or reopen a rejected one without ceremony.
func UpdateOrderStatus(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	orderId := c.Locals("inputId").(int)
	input := c.Locals("statusInput").(model.UpdateOrderStatusInput)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	if err := database.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update status", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Status updated",
		"data":    order,
	})
}

func DeleteOrder(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	orderId := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete order", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Order deleted"})
}
