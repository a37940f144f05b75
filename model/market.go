package model

import "time"

type Market struct {
	DTO
	Name     string       `gorm:"size:100;not null" json:"name"`
	Location string       `json:"location"`
	Url      *string      `json:"url,omitempty"`
	ImageUrl *string      `json:"imageUrl,omitempty"`
	Active   bool         `gorm:"default:true" json:"active"`
	Dates    []MarketDate `gorm:"foreignKey:MarketId" json:"dates,omitempty"`
}

type MarketDate struct {
	DTO
	MarketId  uint      `gorm:"not null;index" json:"marketId"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	StartTime string    `gorm:"size:5" json:"startTime"` // "10:00"
	EndTime   string    `gorm:"size:5" json:"endTime"`
	Active    bool      `gorm:"default:true" json:"active"`
}

type CreateMarketInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Location string  `json:"location" validate:"omitempty,max=200"`
	Url      *string `json:"url" validate:"omitempty,url"`
	ImageUrl *string `json:"imageUrl" validate:"omitempty,url"`
}

type UpdateMarketInput struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	Url      *string `json:"url" validate:"omitempty,url"`
	ImageUrl *string `json:"imageUrl" validate:"omitempty,url"`
	Active   *bool   `json:"active"`
}

type CreateMarketDateInput struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"omitempty,datetime=15:04"`
}

type MarketFilter struct {
	Pagination
	Active *bool `json:"active"`
}
