package model

// Setting is a singleton row (id 1) holding site-wide configuration the
// admin can edit without a deploy.
type Setting struct {
	DTO
	SiteTitle              string `json:"siteTitle"`
	OrderNotificationEmail string `json:"orderNotificationEmail"`
	OrderEmailFrom         string `json:"orderEmailFrom"`
	HeroHeading            string `json:"heroHeading"`
	HeroSubheading         string `json:"heroSubheading"`
	OrdersPaused           bool   `gorm:"default:false" json:"ordersPaused"`
	OrdersPausedMessage    string `json:"ordersPausedMessage"`
}

// ContactInfo is a singleton row (id 1) with the public contact details.
type ContactInfo struct {
	DTO
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Postcode     string `json:"postcode"`
	InstagramUrl string `json:"instagramUrl"`
	FacebookUrl  string `json:"facebookUrl"`
}

type UpdateSettingInput struct {
	SiteTitle              *string `json:"siteTitle" validate:"omitempty,max=100"`
	OrderNotificationEmail *string `json:"orderNotificationEmail" validate:"omitempty,email"`
	OrderEmailFrom         *string `json:"orderEmailFrom" validate:"omitempty,max=200"`
	HeroHeading            *string `json:"heroHeading" validate:"omitempty,max=200"`
	HeroSubheading         *string `json:"heroSubheading" validate:"omitempty,max=500"`
	OrdersPaused           *bool   `json:"ordersPaused"`
	OrdersPausedMessage    *string `json:"ordersPausedMessage" validate:"omitempty,max=500"`
}

type UpdateContactInfoInput struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	AddressLine1 *string `json:"addressLine1" validate:"omitempty,max=200"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=200"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	Postcode     *string `json:"postcode" validate:"omitempty,max=10"`
	InstagramUrl *string `json:"instagramUrl" validate:"omitempty,url"`
	FacebookUrl  *string `json:"facebookUrl" validate:"omitempty,url"`
}
