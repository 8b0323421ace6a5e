package entity

import (
	"gorm.io/gorm"
)

type Like struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_likes_user_reel" json:"userId"`
	User   User `json:"-"`

	ReelID uint `gorm:"uniqueIndex:idx_likes_user_reel" json:"reelId"`
	Reel   Reel `json:"-"`
}
