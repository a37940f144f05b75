package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetReviews is public; ?featured=1 narrows to the reviews pinned on the
// home page.
func GetReviews(c *fiber.Ctx) error {
	db := database.DB.Where("active = ?", true)
	if c.Query("featured") == "1" {
		db = db.Where("featured = ?", true)
	}

	var reviews []model.Review
	if err := db.Order("date desc NULLS LAST, created_at desc").Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load reviews", err)
	}
	return utils.SuccessResponse(c, 200, reviews)
}

func GetReviewsAdmin(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	filter := new(model.ReviewFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Review{})
	if filter.Featured != nil {
		db = db.Where("featured = ?", *filter.Featured)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var reviews []model.Review
	db.Order("created_at desc").Find(&reviews)

	return utils.SuccessResponse(c, 200, &model.ResponseCustom{
		Rows:       reviews,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreateReview(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateReviewInput)

	review := model.Review{Active: true}
	copier.Copy(&review, input)
	if input.Featured != nil {
		review.Featured = *input.Featured
	}
	if input.Date != nil {
		if d, err := time.Parse("2006-01-02", *input.Date); err == nil {
			review.Date = &d
		}
	}

	if err := database.DB.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not create review", err)
	}
	return utils.SuccessResponse(c, 201, review)
}

func UpdateReview(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	reviewId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateReviewInput)

	var review model.Review
	if err := database.DB.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Review not found", err)
	}

	if input.Author != nil {
		review.Author = *input.Author
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Text != nil {
		review.Text = *input.Text
	}
	if input.Source != nil {
		review.Source = *input.Source
	}
	if input.Date != nil {
		if d, err := time.Parse("2006-01-02", *input.Date); err == nil {
			review.Date = &d
		}
	}
	if input.Featured != nil {
		review.Featured = *input.Featured
	}
	if input.Active != nil {
		review.Active = *input.Active
	}

	if err := database.DB.Save(&review).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update review", err)
	}
	return utils.SuccessResponse(c, 200, review)
}

func DeleteReview(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	reviewId := c.Locals("inputId").(int)

	var review model.Review
	if err := database.DB.First(&review, reviewId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Review not found", err)
	}
	if err := database.DB.Model(&review).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete review", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Review deactivated"})
}
