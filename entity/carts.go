package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user draft order. One active cart per user; all items
// belong to the cart's restaurant.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
