package models

import "gorm.io/gorm"

// CareerApplication is a job application with the uploaded CV and
// passport photo stored as paths under the upload area.
type CareerApplication struct {
	gorm.Model
	FullName          string `json:"full_name" gorm:"not null"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Position          string `json:"position"`
	CV                string `json:"cv" gorm:"not null"`
	Passport          string `json:"passport" gorm:"not null"`
	ApplicationLetter string `json:"application_letter"`
}
