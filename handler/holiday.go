package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetHolidays is public: active closures that have not yet ended, soonest
// first, so the site can banner the next one.
func GetHolidays(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var holidays []model.Holiday
	err := database.DB.
		Where("active = ? AND end_date >= ?", true, today).
		Order("start_date asc").
		Find(&holidays).Error
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not load holidays", err)
	}
	return utils.SuccessResponse(c, 200, holidays)
}

func GetHolidaysAdmin(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	filter := new(model.HolidayFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Holiday{})
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.Year != nil {
		start := time.Date(*filter.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, -1)
		db = db.Where("start_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var holidays []model.Holiday
	db.Order("start_date asc").Find(&holidays)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       holidays,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateHoliday(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.Holiday)

	if err := database.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create holiday", err)
	}
	return utils.SuccessResponse(c, 201, input)
}

func UpdateHoliday(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	holidayId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateHolidayInput)

	var holiday model.Holiday
	if err := database.DB.First(&holiday, holidayId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Holiday not found", err)
	}

	if input.Name != nil {
		holiday.Name = *input.Name
	}
	if input.StartDate != nil {
		if d, err := time.Parse("2006-01-02", *input.StartDate); err == nil {
			holiday.StartDate = d
		}
	}
	if input.EndDate != nil {
		if d, err := time.Parse("2006-01-02", *input.EndDate); err == nil {
			holiday.EndDate = d
		}
	}
	if input.Message != nil {
		holiday.Message = *input.Message
	}
	if input.Active != nil {
		holiday.Active = *input.Active
	}

	if err := database.DB.Save(&holiday).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update holiday", err)
	}
	return utils.SuccessResponse(c, 200, holiday)
}

func DeleteHoliday(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	holidayId := c.Locals("inputId").(int)

	var holiday model.Holiday
	if err := database.DB.First(&holiday, holidayId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Holiday not found", err)
	}
	if err := database.DB.Delete(&holiday).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete holiday", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Holiday deleted"})
}
