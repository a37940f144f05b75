package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

var galleryTables = map[string]string{
	constants.GALLERY_CAROUSEL:     "carousel_images",
	constants.GALLERY_WEDDINGS:     "wedding_images",
	constants.GALLERY_FESTIVALS:    "festival_images",
	constants.GALLERY_CUSTOM_CAKES: "custom_cake_images",
}

func galleryTable(c *fiber.Ctx) (string, error) {
	gallery, ok := c.Locals("gallery").(string)
	if !ok {
		return "", errors.New("gallery not resolved")
	}
	table, ok := galleryTables[gallery]
	if !ok {
		return "", errors.New("unknown gallery")
	}
	return table, nil
}

// GetGalleryImages is public; only active rows, in display order.
func GetGalleryImages(c *fiber.Ctx) error {
	table, err := galleryTable(c)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Unknown gallery", err)
	}

	var images []model.GalleryImage
	if err := database.DB.Table(table).
		Where("active = ?", true).
		Order("order_index asc").
		Find(&images).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load images", err)
	}
	return utils.SuccessResponse(c, 200, images)
}

// GetGalleryImagesAdmin includes soft-deleted rows so they can be restored.
func GetGalleryImagesAdmin(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	table, err := galleryTable(c)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Unknown gallery", err)
	}

	var images []model.GalleryImage
	if err := database.DB.Table(table).
		Order("order_index asc").
		Find(&images).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load images", err)
	}
	return utils.SuccessResponse(c, 200, images)
}

// UploadGalleryImage takes a multipart "image" file, stores it in Cloudinary
// under the gallery folder and appends the row at the end of the display
// order.
func UploadGalleryImage(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	table, err := galleryTable(c)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Unknown gallery", err)
	}
	gallery := c.Locals("gallery").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, 400, "Image file is required", err)
	}
	altText := c.FormValue("altText")

	cld := helper.InitCloudinary()
	url, publicId, err := helper.UploadGalleryImage(cld, file, gallery)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Upload failed", err)
	}

	var maxIndex int
	database.DB.Table(table).Select("COALESCE(MAX(order_index), -1)").Scan(&maxIndex)

	image := model.GalleryImage{
		ImageFields: model.ImageFields{
			Url:        url,
			AltText:    altText,
			OrderIndex: maxIndex + 1,
			Active:     true,
			PublicId:   publicId,
		},
	}
	if err := database.DB.Table(table).Create(&image).Error; err != nil {
		// orphaned upload, remove the asset again
		helper.DestroyImage(cld, publicId)
		return utils.ErrorResponse(c, 500, "Could not save image", err)
	}
	return utils.SuccessResponse(c, 201, image)
}

func UpdateGalleryImage(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	table, err := galleryTable(c)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Unknown gallery", err)
	}
	imageId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateImageInput)

	var image model.GalleryImage
	if err := database.DB.Table(table).First(&image, imageId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Image not found", err)
	}

	updates := map[string]interface{}{}
	if input.AltText != nil {
		updates["alt_text"] = *input.AltText
	}
	if input.OrderIndex != nil {
		updates["order_index"] = *input.OrderIndex
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if len(updates) == 0 {
		return utils.SuccessResponse(c, 200, image)
	}

	if err := database.DB.Table(table).Where("id = ?", image.ID).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update image", err)
	}
	database.DB.Table(table).First(&image, imageId)
	return utils.SuccessResponse(c, 200, image)
}

// DeleteGalleryImage soft-deletes by default; ?hard=1 removes the row and
// destroys the Cloudinary asset.
func DeleteGalleryImage(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	table, err := galleryTable(c)
	if err != nil {
		return utils.ErrorResponse(c, 400, "Unknown gallery", err)
	}
	imageId := c.Locals("inputId").(int)

	var image model.GalleryImage
	if err := database.DB.Table(table).First(&image, imageId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Image not found", err)
	}

	if c.Query("hard") == "1" {
		cld := helper.InitCloudinary()
		if err := helper.DestroyImage(cld, image.PublicId); err != nil {
			return utils.ErrorResponse(c, 500, "Could not delete stored asset", err)
		}
		if err := database.DB.Table(table).Delete(&model.GalleryImage{}, image.ID).Error; err != nil {
			return utils.ErrorResponse(c, 500, "Could not delete image", err)
		}
		return utils.SuccessResponse(c, 200, fiber.Map{"message": "Image deleted"})
	}

	if err := database.DB.Table(table).Where("id = ?", image.ID).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not delete image", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{"message": "Image deactivated"})
}
