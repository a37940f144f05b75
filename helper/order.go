package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

var ErrSettingsNotConfigured = errors.New("site settings row missing, run migrations/seed first")

// LoadSettings reads the singleton settings row. Callers that need the order
// notification mailbox or from address go through here rather than a
// process-global.
func LoadSettings(db *gorm.DB) (model.Setting, error) {
	var setting model.Setting
	if err := db.First(&setting, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Setting{}, ErrSettingsNotConfigured
		}
		return model.Setting{}, err
	}
	return setting, nil
}

func GeneratePublicOrderCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:8]
}

// ItemDisplayName resolves the human-readable name and size for an order
// item. Catalog lookups may come back nil (cake deleted or deactivated since
// the order); the stored snapshot is the fallback, never an error.
func ItemDisplayName(item model.OrderItem, cake *model.Cake, size *model.CakeSize) (name, sizeName string) {
	name = item.ItemName
	if item.IsCustomCake {
		name = "Custom cake"
		if item.ItemName != "" {
			name = item.ItemName
		}
		if item.CustomCakeSize != nil {
			sizeName = *item.CustomCakeSize
		}
		return name, sizeName
	}

	if cake != nil {
		name = cake.Name
		if cake.Category != nil && cake.Category.Name != "" {
			name = cake.Name + " (" + cake.Category.Name + ")"
		}
	}
	if size != nil {
		sizeName = size.Name
	} else if item.CustomCakeSize != nil {
		sizeName = *item.CustomCakeSize
	}
	return name, sizeName
}

// EnrichOrderItems shapes persisted items for the two order emails, joining
// in current catalog display names where the lookups succeed.
func EnrichOrderItems(db *gorm.DB, items []model.OrderItem) []utils.OrderEmailItem {
	enriched := make([]utils.OrderEmailItem, 0, len(items))
	for _, item := range items {
		var cake *model.Cake
		var size *model.CakeSize

		if !item.IsCustomCake && item.CakeId != nil {
			var c model.Cake
			if err := db.Preload("Category").First(&c, *item.CakeId).Error; err == nil {
				cake = &c
			}
		}
		if !item.IsCustomCake && item.CakeSizeId != nil {
			var s model.CakeSize
			if err := db.First(&s, *item.CakeSizeId).Error; err == nil {
				size = &s
			}
		}

		name, sizeName := ItemDisplayName(item, cake, size)
		emailItem := utils.OrderEmailItem{
			Name:     name,
			Size:     sizeName,
			Quantity: item.Quantity,
			Price:    item.TotalPricePence.Format(),
		}
		if item.WritingOnCake != nil {
			emailItem.WritingOnCake = *item.WritingOnCake
		}
		if item.CustomCakeDescription != nil {
			emailItem.Details = *item.CustomCakeDescription
		}
		enriched = append(enriched, emailItem)
	}
	return enriched
}

// BuildOrderEmailData flattens an order and its enriched items into the
// shape both email templates consume.
func BuildOrderEmailData(order model.Order, items []utils.OrderEmailItem) utils.OrderEmailData {
	collectionDate := ""
	if order.CollectionDate != nil {
		collectionDate = order.CollectionDate.Format("Monday 2 January 2006")
	}
	return utils.OrderEmailData{
		OrderCode:       order.PublicCode,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		CollectionDate:  collectionDate,
		Allergies:       order.Allergies,
		SpecialRequests: order.SpecialRequests,
		Items:           items,
		TotalPrice:      order.EstimatedTotalPence.Format(),
		OrderDate:       order.CreatedAt.Format("2 January 2006 15:04"),
	}
}

// UpsertCustomerAggregate accumulates per-email order totals for the admin
// customer view. Runs inside the submission transaction.
func UpsertCustomerAggregate(tx *gorm.DB, order model.Order) error {
	now := time.Now()
	var customer model.Customer
	err := tx.Where(model.Customer{Email: order.CustomerEmail}).
		Attrs(model.Customer{Name: order.CustomerName, Phone: order.CustomerPhone}).
		FirstOrCreate(&customer).Error
	if err != nil {
		return err
	}
	return tx.Model(&customer).Updates(map[string]interface{}{
		"name":              order.CustomerName,
		"phone":             order.CustomerPhone,
		"total_orders":      gorm.Expr("total_orders + 1"),
		"total_value_pence": gorm.Expr("total_value_pence + ?", int64(order.EstimatedTotalPence)),
		"last_order_at":     now,
	}).Error
}
