package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	var accounts []model.Account
	if err := database.DB.Order("username asc").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not load accounts", err)
	}
	return utils.SuccessResponse(c, 200, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	input := c.Locals("createInput").(model.CreateAccountInput)

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, 500, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     input.Role,
		Active:   true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Username or email already taken", err)
		}
		return utils.ErrorResponse(c, 500, "Could not create account", err)
	}
	return utils.SuccessResponse(c, 201, account)
}

// ActiveAccount toggles an account; an admin cannot deactivate itself.
func ActiveAccount(c *fiber.Ctx) error {
	claim, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	accountId := c.Locals("inputId").(int)
	if uint(accountId) == claim.AccountId {
		return utils.ErrorResponse(c, 400, "Cannot deactivate your own account", errors.New("self deactivate"))
	}

	type activeInput struct {
		Active bool `json:"active"`
	}
	input := new(activeInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, 404, "Account not found", err)
	}
	if err := database.DB.Model(&account).Update("active", input.Active).Error; err != nil {
		return utils.ErrorResponse(c, 500, "Could not update account", err)
	}
	return utils.SuccessResponse(c, 200, account)
}
