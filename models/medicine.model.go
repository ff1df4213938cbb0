package models

import (
	"time"

	"gorm.io/gorm"
)

// Medicine is a donation listing. UserID points at the donor; Requested
// flips to true once somebody has asked for it.
type Medicine struct {
	gorm.Model
	MedicineName string    `gorm:"not null;index" json:"medicinename"`
	ExpDate      time.Time `gorm:"not null" json:"exp_date"`
	Address      string    `gorm:"not null" json:"address"`
	Phone        string    `gorm:"not null" json:"phone"`
	Description  string    `gorm:"not null" json:"description"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	Requested    bool      `gorm:"default:false" json:"requested"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
