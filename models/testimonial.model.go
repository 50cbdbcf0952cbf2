package models

import "gorm.io/gorm"

// Testimonial from a parent, student or school.
type Testimonial struct {
	gorm.Model
	Name     string  `json:"name" gorm:"not null"`
	Role     string  `json:"role"` // Parent, School Administrator, Student, etc.
	Message  string  `json:"message"`
	Image    *string `json:"image"`
	IsActive bool    `json:"is_active" gorm:"default:true"`
}
