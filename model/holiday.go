package model

import "time"

// Holiday is a shop closure range shown as a banner on the public site.
type Holiday struct {
	DTO
	Name      string    `gorm:"size:100;not null" json:"name"`
	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`
	Message   string    `json:"message"`
	Active    bool      `gorm:"default:true" json:"active"`
}

type CreateHolidayInput struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Message   string `json:"message" validate:"omitempty,max=500"`
}

type UpdateHolidayInput struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Message   *string `json:"message" validate:"omitempty,max=500"`
	Active    *bool   `json:"active"`
}

type HolidayFilter struct {
	Pagination
	Year   *int  `json:"year"`
	Active *bool `json:"active"`
}
