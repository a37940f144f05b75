package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetCustomers lists the per-email aggregates, biggest spenders first.
func GetCustomers(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	filter := new(model.CustomerFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Customer{})
	if filter.SearchKey != nil {
		key := "%" + *filter.SearchKey + "%"
		db = db.Where("email ILIKE ? OR name ILIKE ?", key, key)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var customers []model.Customer
	db.Order("total_value_pence desc").Find(&customers)

	return utils.SuccessResponse(c, 200, &model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// GetCustomerOrders shows one customer's full order history.
func GetCustomerOrders(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Customer not found", err)
	}

	var orders []model.Order
	if err := database.DB.Preload("Items").
		Where("customer_email = ?", customer.Email).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load orders", err)
	}

	return utils.SuccessResponse(c, 200, fiber.Map{
		"customer": customer,
		"orders":   orders,
	})
}
