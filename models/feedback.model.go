package models

import (
	"gorm.io/gorm"
)

// Feedback is one rating left by UserID about RatedUserID. Nothing stops a
// user rating the same person twice, or themselves; every record counts
// toward the average.
type Feedback struct {
	gorm.Model
	UserID      uint   `gorm:"not null;index" json:"userId"`
	RatedUserID uint   `gorm:"not null;index" json:"ratedUserId"`
	Rating      int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string `json:"comment"`
}
