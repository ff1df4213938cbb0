package models

import (
	"gorm.io/gorm"
)

// Notification is write-once: created as a side effect of matching and
// never marked read or deleted.
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Message string `gorm:"type:text;not null" json:"message"`
}
