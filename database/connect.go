package database

import (
	"fmt"
	"strconv"

	"github.com/zacharvey88/teatime-collective-sub000/config"
	"github.com/zacharvey88/teatime-collective-sub000/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.PasswordResetToken{},
		&model.CakeCategory{},
		&model.Cake{},
		&model.CakeSize{},
		&model.Order{},
		&model.OrderItem{},
		&model.Customer{},
		&model.Market{},
		&model.MarketDate{},
		&model.Holiday{},
		&model.Review{},
		&model.CarouselImage{},
		&model.WeddingImage{},
		&model.FestivalImage{},
		&model.CustomCakeImage{},
		&model.Setting{},
		&model.ContactInfo{},
	)
	fmt.Println("Database Migrated")

	SeedData(DB)
}
