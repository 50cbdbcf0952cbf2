package models

import "gorm.io/gorm"

// Delivery modes and durations a program can be taken in
const (
	ModeOnline  = "online"
	ModeOffline = "offline"

	Duration6Weeks  = "6weeks"
	Duration12Weeks = "12weeks"
)

// Program is an educational program with a price per mode/duration pair.
type Program struct {
	gorm.Model
	Title               string  `json:"title" gorm:"not null"`
	Description         string  `json:"description"`
	Image               string  `json:"image"`
	Syllabus            *string `json:"syllabus"`
	PriceOnline6Weeks   float64 `json:"price_online_6weeks"`
	PriceOnline12Weeks  float64 `json:"price_online_12weeks"`
	PriceOffline6Weeks  float64 `json:"price_offline_6weeks"`
	PriceOffline12Weeks float64 `json:"price_offline_12weeks"`
	IsActive            bool    `json:"is_active" gorm:"default:true"`
}

// UnitPrice returns the per-participant price for a mode/duration pair.
// Any pair other than the three exact matches resolves to the
// offline/12-weeks price. The catch-all is intentional and must stay:
// it is the established pricing behavior of the registration flow.
func (p *Program) UnitPrice(mode, duration string) float64 {
	switch {
	case mode == ModeOnline && duration == Duration6Weeks:
		return p.PriceOnline6Weeks
	case mode == ModeOnline && duration == Duration12Weeks:
		return p.PriceOnline12Weeks
	case mode == ModeOffline && duration == Duration6Weeks:
		return p.PriceOffline6Weeks
	default:
		return p.PriceOffline12Weeks
	}
}
