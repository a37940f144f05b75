package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

func TestGeneratePublicOrderCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GeneratePublicOrderCode()
		require.True(t, strings.HasPrefix(code, "ORD-"))
		require.Len(t, code, 12)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.False(t, seen[code], "codes should not repeat")
		seen[code] = true
	}
}

func TestItemDisplayNameCatalog(t *testing.T) {
	item := model.OrderItem{ItemName: "Chocolate Fudge"}
	cake := &model.Cake{
		Name:     "Chocolate Fudge",
		Category: &model.CakeCategory{Name: "Vegan"},
	}
	size := &model.CakeSize{Name: "6 inch"}

	name, sizeName := ItemDisplayName(item, cake, size)
	assert.Equal(t, "Chocolate Fudge (Vegan)", name)
	assert.Equal(t, "6 inch", sizeName)
}

func TestItemDisplayNameCatalogFallsBackToSnapshot(t *testing.T) {
	// cake deleted since the order was placed
	item := model.OrderItem{ItemName: "Lemon Drizzle"}

	name, sizeName := ItemDisplayName(item, nil, nil)
	assert.Equal(t, "Lemon Drizzle", name)
	assert.Equal(t, "", sizeName)
}

func TestItemDisplayNameCustom(t *testing.T) {
	sizeDesc := "10 inch, two tier"
	item := model.OrderItem{
		IsCustomCake:   true,
		CustomCakeSize: &sizeDesc,
	}

	name, sizeName := ItemDisplayName(item, nil, nil)
	assert.Equal(t, "Custom cake", name)
	assert.Equal(t, "10 inch, two tier", sizeName)

	item.ItemName = "Wedding showstopper"
	name, _ = ItemDisplayName(item, nil, nil)
	assert.Equal(t, "Wedding showstopper", name)
}

func TestBuildOrderEmailData(t *testing.T) {
	collection := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	order := model.Order{
		PublicCode:          "ORD-ABCD1234",
		CustomerName:        "Jo Bloggs",
		CustomerEmail:       "jo@example.com",
		CustomerPhone:       "07700900000",
		CollectionDate:      &collection,
		Allergies:           "nuts",
		EstimatedTotalPence: 8500,
	}
	order.CreatedAt = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	items := []utils.OrderEmailItem{{Name: "Chocolate Fudge", Quantity: 2, Price: "£50.00"}}
	data := BuildOrderEmailData(order, items)

	assert.Equal(t, "ORD-ABCD1234", data.OrderCode)
	assert.Equal(t, "Saturday 12 September 2026", data.CollectionDate)
	assert.Equal(t, "31 August 2026 14:30", data.OrderDate)
	assert.Equal(t, "£85.00", data.TotalPrice)
	assert.Equal(t, items, data.Items)
}

func TestBuildOrderEmailDataNoCollectionDate(t *testing.T) {
	data := BuildOrderEmailData(model.Order{PublicCode: "ORD-X"}, nil)
	assert.Equal(t, "", data.CollectionDate)
}
