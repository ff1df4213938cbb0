package models

import (
	"gorm.io/gorm"
)

// Request records that a user asked for a medicine by name. The composite
// unique index makes a second request for the same (user, medicine) pair
// fail at insert time, which closes the check-then-act window between
// concurrent handlers.
type Request struct {
	gorm.Model
	MedicineName string `gorm:"not null;uniqueIndex:idx_requests_user_medicine" json:"medicinename"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_requests_user_medicine" json:"userId"`
	Reference    string `gorm:"not null" json:"reference"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Description  string `json:"description,omitempty"`
	Requested    bool   `gorm:"default:false" json:"requested"`
}
