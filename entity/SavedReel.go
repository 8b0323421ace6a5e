package entity

import (
	"gorm.io/gorm"
)

type SavedReel struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_saved_user_reel" json:"userId"`
	User   User `json:"-"`

	ReelID uint `gorm:"uniqueIndex:idx_saved_user_reel" json:"reelId"`
	Reel   Reel `json:"reel"`
}
