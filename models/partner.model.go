package models

import "gorm.io/gorm"

// Partner organisation whose logo shows on the home page.
type Partner struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Logo       string `json:"logo"`
	WebsiteURL string `json:"website_url"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
