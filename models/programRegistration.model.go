package models

import "gorm.io/gorm"

// Payment states of a registration. Transitions go pending->success or
// pending->failed, never backward.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// ProgramRegistration is a user's enrollment request against a Program.
// The Program owns its registrations (deleting a program removes them);
// the Branch reference is weak and nulled out when the branch goes away.
type ProgramRegistration struct {
	gorm.Model
	ProgramID        uint     `json:"program_id" gorm:"index;not null"`
	Program          Program  `json:"program" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
	BranchID         *uint    `json:"branch_id" gorm:"index"`
	Branch           *Branch  `json:"branch" gorm:"foreignKey:BranchID;constraint:OnDelete:SET NULL"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Mode             string   `json:"mode"`     // online/offline
	Duration         string   `json:"duration"` // 6weeks/12weeks
	Participants     uint     `json:"participants" gorm:"default:1"`
	TotalPrice       float64  `json:"total_price"`
	PaymentReference *string  `json:"payment_reference"`
	PaymentStatus    string   `json:"payment_status" gorm:"default:'pending'"`
}
