package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chocolateLine() CartLine {
	return CartLine{
		CakeId:         1,
		CakeName:       "Chocolate Fudge",
		SizeId:         2,
		SizeName:       "6 inch",
		UnitPricePence: 2500,
	}
}

func TestCartAddItemMergesSameSelection(t *testing.T) {
	cart := Cart{SessionId: "s1"}

	cart.AddItem(chocolateLine(), 1)
	cart.AddItem(chocolateLine(), 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "1-2", cart.Items[0].LineId)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, Pence(2500), cart.Items[0].UnitPricePence)
}

func TestCartAddItemDifferentSizeIsNewLine(t *testing.T) {
	cart := Cart{}
	cart.AddItem(chocolateLine(), 1)

	nineInch := chocolateLine()
	nineInch.SizeId = 3
	nineInch.SizeName = "9 inch"
	nineInch.UnitPricePence = 3500
	cart.AddItem(nineInch, 1)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "1-3", cart.Items[1].LineId)
}

func TestCartMergeKeepsSnapshottedPrice(t *testing.T) {
	cart := Cart{}
	cart.AddItem(chocolateLine(), 1)

	repriced := chocolateLine()
	repriced.UnitPricePence = 9999
	cart.AddItem(repriced, 1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, Pence(2500), cart.Items[0].UnitPricePence)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := Cart{}
	cart.AddItem(chocolateLine(), 1)

	cart.UpdateQuantity("1-2", 5)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart.UpdateQuantity("does-not-exist", 9)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := Cart{}
	cart.AddItem(chocolateLine(), 2)

	cart.UpdateQuantity("1-2", 0)
	assert.Empty(t, cart.Items)

	cart.AddItem(chocolateLine(), 2)
	cart.UpdateQuantity("1-2", -1)
	assert.Empty(t, cart.Items)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := Cart{}
	cart.AddItem(chocolateLine(), 1)

	other := chocolateLine()
	other.CakeId = 4
	cart.AddItem(other, 1)

	cart.RemoveItem("1-2")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "4-2", cart.Items[0].LineId)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, Pence(0), cart.Total())
}

func TestCartTotalAndItemCount(t *testing.T) {
	cart := Cart{}
	cart.AddItem(chocolateLine(), 2)

	nineInch := chocolateLine()
	nineInch.SizeId = 3
	nineInch.UnitPricePence = 3500
	cart.AddItem(nineInch, 1)

	assert.Equal(t, Pence(8500), cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, "£85.00", cart.Total().Format())
}
