package entity

import (
	"gorm.io/gorm"
)

// Order is an immutable snapshot created once at checkout. TotalAmount is
// computed at creation and never recalculated.
type Order struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex" json:"reference"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TotalAmount int64  `json:"totalAmount"`
	Status      string `gorm:"default:placed" json:"status"`

	Items []OrderItem `json:"items"`
}
