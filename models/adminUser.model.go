package models

import "gorm.io/gorm"

// AdminUser can log into the administrative API.
type AdminUser struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
}
