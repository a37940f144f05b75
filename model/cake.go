package model

type CakeCategory struct {
	DTO
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `gorm:"default:0" json:"orderIndex"`
	Active      bool   `gorm:"default:true" json:"active"`
	Cakes       []Cake `gorm:"foreignKey:CategoryId" json:"cakes,omitempty"`
}

type Cake struct {
	DTO
	CategoryId  uint          `gorm:"not null" json:"categoryId"`
	Category    *CakeCategory `json:"category,omitempty"`
	Name        string        `gorm:"size:100;not null" json:"name"`
	Slug        string        `gorm:"unique;size:120" json:"slug"`
	Description string        `json:"description"`
	ImageUrl    *string       `json:"imageUrl"`
	OrderIndex  int           `gorm:"default:0" json:"orderIndex"`
	Active      bool          `gorm:"default:true" json:"active"`
	Sizes       []CakeSize    `gorm:"foreignKey:CakeId" json:"sizes,omitempty"`
}

type CakeSize struct {
	DTO
	CakeId     uint   `gorm:"not null;index" json:"cakeId"`
	Name       string `gorm:"size:50;not null" json:"name"`
	Servings   int    `json:"servings"`
	PricePence Pence  `gorm:"not null" json:"pricePence"`
	Active     bool   `gorm:"default:true" json:"active"`
}

type CreateCakeCategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	OrderIndex  *int   `json:"orderIndex" validate:"omitempty,min=0"`
}

type UpdateCakeCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	OrderIndex  *int    `json:"orderIndex" validate:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}

type CakeSizeInput struct {
	Name       string `json:"name" validate:"required,min=1,max=50"`
	Servings   int    `json:"servings" validate:"omitempty,min=1"`
	PricePence int64  `json:"pricePence" validate:"required,min=1"`
}

type CreateCakeInput struct {
	CategoryId  uint            `json:"categoryId" validate:"required"`
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	ImageUrl    *string         `json:"imageUrl" validate:"omitempty,url"`
	OrderIndex  *int            `json:"orderIndex" validate:"omitempty,min=0"`
	Sizes       []CakeSizeInput `json:"sizes" validate:"required,min=1,dive"`
}

type UpdateCakeInput struct {
	CategoryId  *uint   `json:"categoryId"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,url"`
	OrderIndex  *int    `json:"orderIndex" validate:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}

type CakeFilter struct {
	Pagination
	CategoryId *uint   `json:"categoryId"`
	Active     *bool   `json:"active"`
	SearchKey  *string `json:"searchKey"`
}
