package models

import "gorm.io/gorm"

// Branch is a physical location for offline programs.
type Branch struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Address  string `json:"address"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
