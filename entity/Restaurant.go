package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"` // e.g. "Pizza", "Indian", "Burgers"
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Image       string  `json:"image"`
	IsApproved  bool    `json:"isApproved"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"`

	MenuItems []MenuItem `json:"-"`
	Reels     []Reel     `json:"-"`
	Orders    []Order    `json:"-"`
}
