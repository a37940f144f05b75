package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetSettings is public but hides the order-notification mailbox; the site
// only needs the display fields.
func GetSettings(c *fiber.Ctx) error {
	setting, err := helper.LoadSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not load settings", err)
	}
	return utils.SuccessResponse(c, 200, fiber.Map{
		"siteTitle":           setting.SiteTitle,
		"heroHeading":         setting.HeroHeading,
		"heroSubheading":      setting.HeroSubheading,
		"ordersPaused":        setting.OrdersPaused,
		"ordersPausedMessage": setting.OrdersPausedMessage,
	})
}

func GetSettingsAdmin(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	setting, err := helper.LoadSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not load settings", err)
	}
	return utils.SuccessResponse(c, 200, setting)
}

func UpdateSettings(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("updateInput").(model.UpdateSettingInput)

	setting, err := helper.LoadSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, 500, "Could not load settings", err)
	}

	if input.SiteTitle != nil {
		setting.SiteTitle = *input.SiteTitle
	}
	if input.OrderNotificationEmail != nil {
		setting.OrderNotificationEmail = *input.OrderNotificationEmail
	}
	if input.OrderEmailFrom != nil {
		setting.OrderEmailFrom = *input.OrderEmailFrom
	}
	if input.HeroHeading != nil {
		setting.HeroHeading = *input.HeroHeading
	}
	if input.HeroSubheading != nil {
		setting.HeroSubheading = *input.HeroSubheading
	}
	if input.OrdersPaused != nil {
		setting.OrdersPaused = *input.OrdersPaused
	}
	if input.OrdersPausedMessage != nil {
		setting.OrdersPausedMessage = *input.OrdersPausedMessage
	}

	if err := database.DB.Save(&setting).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update settings", err)
	}
	return utils.SuccessResponse(c, 200, setting)
}

func GetContactInfo(c *fiber.Ctx) error {
	var contact model.ContactInfo
	if err := database.DB.First(&contact, 1).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load contact info", err)
	}
	return utils.SuccessResponse(c, 200, contact)
}

func UpdateContactInfo(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("updateInput").(model.UpdateContactInfoInput)

	var contact model.ContactInfo
	if err := database.DB.First(&contact, 1).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load contact info", err)
	}

	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.AddressLine1 != nil {
		contact.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		contact.AddressLine2 = *input.AddressLine2
	}
	if input.City != nil {
		contact.City = *input.City
	}
	if input.Postcode != nil {
		contact.Postcode = *input.Postcode
	}
	if input.InstagramUrl != nil {
		contact.InstagramUrl = *input.InstagramUrl
	}
	if input.FacebookUrl != nil {
		contact.FacebookUrl = *input.FacebookUrl
	}

	if err := database.DB.Save(&contact).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update contact info", err)
	}
	return utils.SuccessResponse(c, 200, contact)
}
