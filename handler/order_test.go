package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zacharvey88/teatime-collective-sub000/model"
)

func TestCartToOrderItemsCarriesSnapshotPrice(t *testing.T) {
	cart := &model.Cart{
		Items: []model.CartLine{
			{LineId: "1-2", CakeId: 1, SizeId: 2, Quantity: 2, UnitPricePence: 2500},
			{LineId: "3-4", CakeId: 3, SizeId: 4, Quantity: 1, UnitPricePence: 3500},
		},
	}

	inputs := cartToOrderItems(cart)
	require.Len(t, inputs, 2)

	require.NotNil(t, inputs[0].UnitPricePence)
	assert.Equal(t, int64(2500), *inputs[0].UnitPricePence)
	assert.Equal(t, uint(1), *inputs[0].CakeId)
	assert.Equal(t, uint(2), *inputs[0].CakeSizeId)
	assert.Equal(t, 2, inputs[0].Quantity)

	require.NotNil(t, inputs[1].UnitPricePence)
	assert.Equal(t, int64(3500), *inputs[1].UnitPricePence)
}

func TestNotificationOutcome(t *testing.T) {
	assert.Equal(t, "sent", notificationOutcome(nil))
	assert.Equal(t, "failed", notificationOutcome(errors.New("smtp timeout")))
}
