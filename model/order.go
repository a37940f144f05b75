package model

import "time"

type Order struct {
	DTO
	PublicCode          string      `gorm:"unique;size:20" json:"publicCode"`
	IdempotencyKey      *string     `gorm:"unique;size:64" json:"-"`
	CustomerName        string      `gorm:"not null" json:"customerName"`
	CustomerEmail       string      `gorm:"not null;index" json:"customerEmail"`
	CustomerPhone       string      `gorm:"not null" json:"customerPhone"`
	CollectionDate      *time.Time  `gorm:"type:date" json:"collectionDate,omitempty"`
	Allergies           string      `json:"allergies"`
	SpecialRequests     string      `json:"specialRequests"`
	EstimatedTotalPence Pence       `json:"estimatedTotalPence"`
	Status              string      `gorm:"size:20;not null;index" json:"status"`
	Items               []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

// OrderItem is either a catalog line (CakeId + CakeSizeId set) or a custom
// cake line (IsCustomCake with CustomCakeSize/Description), never both.
type OrderItem struct {
	DTO
	OrderId               uint    `gorm:"not null;index" json:"orderId"`
	CakeId                *uint   `json:"cakeId,omitempty"`
	CakeSizeId            *uint   `json:"cakeSizeId,omitempty"`
	ItemName              string  `gorm:"not null" json:"itemName"`
	Quantity              int     `gorm:"not null" json:"quantity"`
	UnitPricePence        Pence   `json:"unitPricePence"`
	TotalPricePence       Pence   `json:"totalPricePence"`
	WritingOnCake         *string `json:"writingOnCake,omitempty"`
	IsCustomCake          bool    `gorm:"default:false" json:"isCustomCake"`
	CustomCakeSize        *string `json:"customCakeSize,omitempty"`
	CustomCakeDescription *string `json:"customCakeDescription,omitempty"`
}

type OrderItemInput struct {
	CakeId                *uint   `json:"cakeId"`
	CakeSizeId            *uint   `json:"cakeSizeId"`
	Quantity              int     `json:"quantity" validate:"required,min=1,max=50"`
	WritingOnCake         *string `json:"writingOnCake" validate:"omitempty,max=200"`
	IsCustomCake          bool    `json:"isCustomCake"`
	CustomCakeSize        *string `json:"customCakeSize" validate:"omitempty,max=100"`
	CustomCakeDescription *string `json:"customCakeDescription" validate:"omitempty,max=2000"`
	EstimatedPricePence   *int64  `json:"estimatedPricePence" validate:"omitempty,min=0"`
	// UnitPricePence is set only on cart-built lines and carries the price
	// quoted at add-to-cart. Never client-settable.
	UnitPricePence *int64 `json:"-"`
}

type CreateOrderInput struct {
	CustomerName    string           `json:"customerName" validate:"required,min=2,max=100"`
	CustomerEmail   string           `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string           `json:"customerPhone" validate:"required,min=7,max=20"`
	CollectionDate  *string          `json:"collectionDate" validate:"omitempty,datetime=2006-01-02"`
	Allergies       string           `json:"allergies" validate:"omitempty,max=1000"`
	SpecialRequests string           `json:"specialRequests" validate:"omitempty,max=2000"`
	IdempotencyKey  *string          `json:"idempotencyKey" validate:"omitempty,max=64"`
	Items           []OrderItemInput `json:"items" validate:"omitempty,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=new_request reviewed approved rejected completed archived"`
}

type OrderFilter struct {
	Pagination
	Status *string `json:"status"`
	Email  *string `json:"email"`
	From   *string `json:"from"`
	To     *string `json:"to"`
}
