package model

import "time"

// Customer aggregates order history per email for the admin dashboard. Rows
// are upserted on each submission; the per-order contact fields stay
// denormalized on the order itself.
type Customer struct {
	DTO
	Email           string     `gorm:"unique;not null" json:"email"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	TotalOrders     int        `gorm:"default:0" json:"totalOrders"`
	TotalValuePence Pence      `gorm:"default:0" json:"totalValuePence"`
	LastOrderAt     *time.Time `json:"lastOrderAt,omitempty"`
}

type CustomerFilter struct {
	Pagination
	SearchKey *string `json:"searchKey"`
}
