package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetCakes is the public catalog: active cakes with active sizes, grouped
// under active categories, in display order.
func GetCakes(c *fiber.Ctx) error {
	var categories []model.CakeCategory
	err := database.DB.
		Where("active = ?", true).
		Order("order_index asc").
		Preload("Cakes", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("order_index asc")
		}).
		Preload("Cakes.Sizes", "active = ?", true).
		Find(&categories).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not load cakes", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func GetCakeBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var cake model.Cake
	err := database.DB.
		Preload("Category").
		Preload("Sizes", "active = ?", true).
		Where("slug = ? AND active = ?", slug, true).
		First(&cake).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cake not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cake)
}

// Admin listing includes inactive rows.
func GetCakesAdmin(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	filter := new(model.CakeFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Cake{})
	if filter.CategoryId != nil {
		db = db.Where("category_id = ?", *filter.CategoryId)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.SearchKey != nil {
		db = db.Where("name ILIKE ?", "%"+*filter.SearchKey+"%")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var cakes []model.Cake
	db.Preload("Category").Preload("Sizes").Order("order_index asc").Find(&cakes)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       cakes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateCakeCategory(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateCakeCategoryInput)

	category := model.CakeCategory{Active: true}
	copier.Copy(&category, input)
	if input.OrderIndex != nil {
		category.OrderIndex = *input.OrderIndex
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create category", err)
	}
	return utils.SuccessResponse(c, 201, category)
}

func UpdateCakeCategory(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	categoryId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateCakeCategoryInput)

	var category model.CakeCategory
	if err := database.DB.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Category not found", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.OrderIndex != nil {
		category.OrderIndex = *input.OrderIndex
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update category", err)
	}
	return utils.SuccessResponse(c, 200, category)
}

func CreateCake(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateCakeInput)

	var category model.CakeCategory
	if err := database.DB.First(&category, input.CategoryId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Category not found", err)
	}

	cake := model.Cake{Active: true}
	copier.Copy(&cake, input)
	if input.OrderIndex != nil {
		cake.OrderIndex = *input.OrderIndex
	}
	cake.Sizes = nil
	for _, s := range input.Sizes {
		cake.Sizes = append(cake.Sizes, model.CakeSize{
			Name:       s.Name,
			Servings:   s.Servings,
			PricePence: model.Pence(s.PricePence),
			Active:     true,
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		cake.Slug = helper.GenerateUniqueCakeSlug(tx, cake.Name)
		return tx.Create(&cake).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not create cake", err)
	}
	return utils.SuccessResponse(c, 201, cake)
}

func UpdateCake(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	cakeId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateCakeInput)

	var cake model.Cake
	if err := database.DB.First(&cake, cakeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Cake not found", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != cake.Name {
			cake.Name = *input.Name
			cake.Slug = helper.GenerateUniqueCakeSlug(tx, cake.Name)
		}
		if input.CategoryId != nil {
			cake.CategoryId = *input.CategoryId
		}
		if input.Description != nil {
			cake.Description = *input.Description
		}
		if input.ImageUrl != nil {
			cake.ImageUrl = input.ImageUrl
		}
		if input.OrderIndex != nil {
			cake.OrderIndex = *input.OrderIndex
		}
		if input.Active != nil {
			cake.Active = *input.Active
		}
		return tx.Save(&cake).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not update cake", err)
	}
	return utils.SuccessResponse(c, 200, cake)
}

// DeleteCake is a soft delete; past orders keep referencing the row.
func DeleteCake(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	cakeId := c.Locals("inputId").(int)

	var cake model.Cake
	if err := database.DB.First(&cake, cakeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Cake not found", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&cake).Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.CakeSize{}).Where("cake_id = ?", cake.ID).Update("active", false).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete cake", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Cake deactivated"})
}

func AddCakeSize(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	cakeId := c.Locals("inputId").(int)
	input := c.Locals("sizeInput").(model.CakeSizeInput)

	var cake model.Cake
	if err := database.DB.First(&cake, cakeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Cake not found", err)
	}

	size := model.CakeSize{
		CakeId:     cake.ID,
		Name:       input.Name,
		Servings:   input.Servings,
		PricePence: model.Pence(input.PricePence),
		Active:     true,
	}
	if err := database.DB.Create(&size).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not add size", err)
	}
	return utils.SuccessResponse(c, 201, size)
}

func UpdateCakeSize(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	sizeId := c.Locals("inputId").(int)
	input := c.Locals("sizeInput").(model.CakeSizeInput)

	var size model.CakeSize
	if err := database.DB.First(&size, sizeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Size not found", err)
	}

	size.Name = input.Name
	size.Servings = input.Servings
	size.PricePence = model.Pence(input.PricePence)

	if err := database.DB.Save(&size).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update size", err)
	}
	return utils.SuccessResponse(c, 200, size)
}

func reorderRows(tableModel interface{}, ids []uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			if err := tx.Model(tableModel).Where("id = ?", id).
				Update("order_index", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReorderCakes takes the full cake id list; list position becomes the
// display order.
func ReorderCakes(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	ids := c.Locals("orderedIds").([]uint)
	if err := reorderRows(&model.Cake{}, ids); err != nil {
		return utils.ErrorResponse(c, 500, "Could not reorder cakes", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Order updated"})
}

func ReorderCakeCategories(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	ids := c.Locals("orderedIds").([]uint)
	if err := reorderRows(&model.CakeCategory{}, ids); err != nil {
		return utils.ErrorResponse(c, 500, "Could not reorder categories", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Order updated"})
}

func DeleteCakeSize(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	sizeId := c.Locals("inputId").(int)

	var size model.CakeSize
	if err := database.DB.First(&size, sizeId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Size not found", err)
	}
	if err := database.DB.Model(&size).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete size", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Size deactivated"})
}
