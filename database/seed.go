package database

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/model"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("teatime-admin"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Email: "admin@teatimecollective.co.uk", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	categories := []model.CakeCategory{
		{Name: "Vegan Cakes", Description: "All our cakes are 100% vegan", OrderIndex: 0, Active: true},
		{Name: "Cheesecakes", Description: "Baked vegan cheesecakes", OrderIndex: 1, Active: true},
		{Name: "Loaf Cakes", Description: "Simple loaves, big flavour", OrderIndex: 2, Active: true},
	}
	for i := range categories {
		if err := db.Where(model.CakeCategory{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	cakes := []model.Cake{
		{
			CategoryId: categories[0].ID, Name: "Chocolate Fudge", Slug: "chocolate-fudge",
			Description: "Rich chocolate sponge with fudge frosting", OrderIndex: 0, Active: true,
			Sizes: []model.CakeSize{
				{Name: "6 inch", Servings: 8, PricePence: 2500, Active: true},
				{Name: "9 inch", Servings: 14, PricePence: 3500, Active: true},
			},
		},
		{
			CategoryId: categories[0].ID, Name: "Victoria Sponge", Slug: "victoria-sponge",
			Description: "Classic sponge with jam and vanilla buttercream", OrderIndex: 1, Active: true,
			Sizes: []model.CakeSize{
				{Name: "6 inch", Servings: 8, PricePence: 2400, Active: true},
				{Name: "9 inch", Servings: 14, PricePence: 3400, Active: true},
			},
		},
		{
			CategoryId: categories[1].ID, Name: "Baked Vanilla Cheesecake", Slug: "baked-vanilla-cheesecake",
			Description: "Baked cashew cheesecake on a biscuit base", OrderIndex: 0, Active: true,
			Sizes: []model.CakeSize{
				{Name: "9 inch", Servings: 12, PricePence: 3800, Active: true},
			},
		},
	}
	for i := range cakes {
		if err := db.Where(model.Cake{Slug: cakes[i].Slug}).FirstOrCreate(&cakes[i]).Error; err != nil {
			log.Println("failed to seed cake:", cakes[i].Name, "error:", err)
		}
	}

	holidays := []model.Holiday{
		{Name: "Christmas break", StartDate: parseDate("2026-12-24"), EndDate: parseDate("2027-01-02"),
			Message: "Closed over Christmas, back in the new year", Active: true},
	}
	for _, holiday := range holidays {
		if err := db.Where(model.Holiday{Name: holiday.Name}).FirstOrCreate(&holiday).Error; err != nil {
			log.Println("failed to seed holiday:", holiday.Name, "error:", err)
		}
	}

	// Singleton rows; FirstOrCreate keeps admin edits intact across restarts.
	setting := model.Setting{
		DTO:                    model.DTO{ID: 1},
		SiteTitle:              "Teatime Collective",
		OrderNotificationEmail: "orders@teatimecollective.co.uk",
		OrderEmailFrom:         "Teatime Collective <hello@teatimecollective.co.uk>",
		HeroHeading:            "Vegan cakes, made in Manchester",
		HeroSubheading:         "Markets, festivals, weddings and made-to-order cakes",
		OrdersPausedMessage:    constants.ORDERS_PAUSED_DEFAULT_MSG,
	}
	if err := db.Where(model.Setting{DTO: model.DTO{ID: 1}}).FirstOrCreate(&setting).Error; err != nil {
		log.Println("failed to seed settings:", err)
	}

	contact := model.ContactInfo{
		DTO:   model.DTO{ID: 1},
		Email: "hello@teatimecollective.co.uk",
		City:  "Manchester",
	}
	if err := db.Where(model.ContactInfo{DTO: model.DTO{ID: 1}}).FirstOrCreate(&contact).Error; err != nil {
		log.Println("failed to seed contact info:", err)
	}
}
