package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetMarkets is public: active markets with their upcoming dates only.
func GetMarkets(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var markets []model.Market
	err := database.DB.
		Where("active = ?", true).
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ? AND date >= ?", true, today).Order("date asc")
		}).
		Order("name asc").
		Find(&markets).Error
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not load markets", err)
	}
	return utils.SuccessResponse(c, 200, markets)
}

func GetMarketsAdmin(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	filter := new(model.MarketFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Market{})
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var markets []model.Market
	db.Preload("Dates", func(db *gorm.DB) *gorm.DB {
		return db.Order("date asc")
	}).Order("name asc").Find(&markets)

	return utils.SuccessResponse(c, 200, &model.ResponseCustom{
		Rows:       markets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateMarket(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateMarketInput)

	market := model.Market{Active: true}
	copier.Copy(&market, input)

	if err := database.DB.Create(&market).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create market", err)
	}
	return utils.SuccessResponse(c, 201, market)
}

func UpdateMarket(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	marketId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateMarketInput)

	var market model.Market
	if err := database.DB.First(&market, marketId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Market not found", err)
	}

	if input.Name != nil {
		market.Name = *input.Name
	}
	if input.Location != nil {
		market.Location = *input.Location
	}
	if input.Url != nil {
		market.Url = input.Url
	}
	if input.ImageUrl != nil {
		market.ImageUrl = input.ImageUrl
	}
	if input.Active != nil {
		market.Active = *input.Active
	}

	if err := database.DB.Save(&market).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update market", err)
	}
	return utils.SuccessResponse(c, 200, market)
}

func DeleteMarket(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	marketId := c.Locals("inputId").(int)

	var market model.Market
	if err := database.DB.First(&market, marketId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Market not found", err)
	}
	if err := database.DB.Model(&market).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete market", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Market deactivated"})
}

func CreateMarketDate(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	marketId := c.Locals("inputId").(int)
	date := c.Locals("createInput").(model.MarketDate)

	var market model.Market
	if err := database.DB.First(&market, marketId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Market not found", err)
	}

	date.MarketId = market.ID
	if err := database.DB.Create(&date).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create market date", err)
	}
	return utils.SuccessResponse(c, 201, date)
}

func DeleteMarketDate(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	dateId := c.Locals("inputId").(int)

	var date model.MarketDate
	if err := database.DB.First(&date, dateId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Market date not found", err)
	}
	if err := database.DB.Delete(&date).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete market date", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Market date deleted"})
}
