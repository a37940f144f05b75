package model

import "time"

type Review struct {
	DTO
	Author   string     `gorm:"size:100;not null" json:"author"`
	Rating   int        `gorm:"not null" json:"rating"`
	Text     string     `gorm:"not null" json:"text"`
	Source   string     `gorm:"size:50" json:"source"` // google, facebook, direct
	Date     *time.Time `gorm:"type:date" json:"date,omitempty"`
	Featured bool       `gorm:"default:false" json:"featured"`
	Active   bool       `gorm:"default:true" json:"active"`
}

type CreateReviewInput struct {
	Author   string  `json:"author" validate:"required,min=2,max=100"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Text     string  `json:"text" validate:"required,max=2000"`
	Source   string  `json:"source" validate:"omitempty,max=50"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Featured *bool   `json:"featured"`
}

type UpdateReviewInput struct {
	Author   *string `json:"author" validate:"omitempty,min=2,max=100"`
	Rating   *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Text     *string `json:"text" validate:"omitempty,max=2000"`
	Source   *string `json:"source" validate:"omitempty,max=50"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Featured *bool   `json:"featured"`
	Active   *bool   `json:"active"`
}

type ReviewFilter struct {
	Pagination
	Featured *bool `json:"featured"`
	Active   *bool `json:"active"`
}
