package entity

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	Text string `json:"text"`

	UserID uint `json:"userId"`
	User   User `json:"user"`

	ReelID uint `gorm:"index" json:"reelId"`
	Reel   Reel `json:"-"`
}
