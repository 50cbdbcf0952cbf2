package models

import "gorm.io/gorm"

// Class types a partner school can apply for
const (
	ClassTypePrimary   = "primary"
	ClassTypeSecondary = "secondary"
	ClassTypeBoth      = "both"
)

// PartnershipApplication is an inquiry from a school seeking partnership.
// Created once on form submit, read-only afterwards.
type PartnershipApplication struct {
	gorm.Model
	SchoolName    string `json:"school_name" gorm:"not null"`
	SchoolAddress string `json:"school_address"`
	SchoolPhone   string `json:"school_phone"`
	SchoolEmail   string `json:"school_email"`
	ClassType     string `json:"class_type"` // primary/secondary/both
}
