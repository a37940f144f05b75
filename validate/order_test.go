package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

func TestValidateOrderItemCatalog(t *testing.T) {
	item := model.OrderItemInput{
		CakeId:     utils.Ptr(uint(1)),
		CakeSizeId: utils.Ptr(uint(2)),
		Quantity:   1,
	}
	assert.NoError(t, ValidateOrderItem(item))
}

func TestValidateOrderItemCatalogMissingSize(t *testing.T) {
	item := model.OrderItemInput{
		CakeId:   utils.Ptr(uint(1)),
		Quantity: 1,
	}
	assert.EqualError(t, ValidateOrderItem(item), "catalog item requires cakeId and cakeSizeId")
}

func TestValidateOrderItemCustom(t *testing.T) {
	item := model.OrderItemInput{
		IsCustomCake:          true,
		CustomCakeSize:        utils.StringPtr("10 inch"),
		CustomCakeDescription: utils.StringPtr("three tiers, lemon and elderflower"),
		Quantity:              1,
	}
	assert.NoError(t, ValidateOrderItem(item))
}

func TestValidateOrderItemCustomMissingFields(t *testing.T) {
	item := model.OrderItemInput{IsCustomCake: true, Quantity: 1}
	assert.EqualError(t, ValidateOrderItem(item), "custom cake requires customCakeSize")

	item.CustomCakeSize = utils.StringPtr("8 inch")
	assert.EqualError(t, ValidateOrderItem(item), "custom cake requires customCakeDescription")

	item.CustomCakeSize = utils.Ptr("")
	assert.EqualError(t, ValidateOrderItem(item), "custom cake requires customCakeSize")
}

func TestValidateOrderItemBothShapesRejected(t *testing.T) {
	item := model.OrderItemInput{
		CakeId:                utils.Ptr(uint(1)),
		CakeSizeId:            utils.Ptr(uint(2)),
		IsCustomCake:          true,
		CustomCakeSize:        utils.StringPtr("8 inch"),
		CustomCakeDescription: utils.StringPtr("something"),
		Quantity:              1,
	}
	assert.EqualError(t, ValidateOrderItem(item), "item cannot be both a catalog cake and a custom cake")
}

// A submission with a malformed email must fail struct validation, which
// runs before anything touches the database.
func TestCreateOrderInputRejectsMalformedEmail(t *testing.T) {
	input := model.CreateOrderInput{
		CustomerName:  "Jo Bloggs",
		CustomerEmail: "not-an-email",
		CustomerPhone: "07700900000",
	}
	assert.Error(t, validate.Struct(input))

	input.CustomerEmail = "jo@example.com"
	assert.NoError(t, validate.Struct(input))
}

func TestCreateOrderInputRequiresContactFields(t *testing.T) {
	assert.Error(t, validate.Struct(model.CreateOrderInput{}))

	assert.Error(t, validate.Struct(model.CreateOrderInput{
		CustomerName:  "Jo Bloggs",
		CustomerEmail: "jo@example.com",
	}))
}

func TestUpdateOrderStatusInputAcceptsEveryStatus(t *testing.T) {
	for _, status := range []string{"new_request", "reviewed", "approved", "rejected", "completed", "archived"} {
		err := validate.Struct(model.UpdateOrderStatusInput{Status: status})
		assert.NoError(t, err, status)
	}
	assert.Error(t, validate.Struct(model.UpdateOrderStatusInput{Status: "shipped"}))
}
