package model

// ImageFields is the shape shared by every gallery table. Soft delete is the
// Active flag; rows are only hard-deleted together with their Cloudinary
// asset.
type ImageFields struct {
	Url        string `gorm:"not null" json:"url"`
	AltText    string `json:"altText"`
	OrderIndex int    `gorm:"default:0" json:"orderIndex"`
	Active     bool   `gorm:"default:true" json:"active"`
	PublicId   string `gorm:"size:255" json:"-"` // Cloudinary public id, needed for destroy
}

type CarouselImage struct {
	DTO
	ImageFields
}

type WeddingImage struct {
	DTO
	ImageFields
}

type FestivalImage struct {
	DTO
	ImageFields
}

type CustomCakeImage struct {
	DTO
	ImageFields
}

// GalleryImage is the common row shape used when a handler addresses one of
// the four tables via db.Table. It is never migrated itself.
type GalleryImage struct {
	DTO
	ImageFields
}

type UpdateImageInput struct {
	AltText    *string `json:"altText" validate:"omitempty,max=200"`
	OrderIndex *int    `json:"orderIndex" validate:"omitempty,min=0"`
	Active     *bool   `json:"active"`
}
