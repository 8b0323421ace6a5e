package entity

import (
	"gorm.io/gorm"
)

// Meal-time categories used by the recommendation scorer.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategoryDessert   = "Dessert"
	CategorySnacks    = "Snacks"
)

type MenuItem struct {
	gorm.Model
	Name          string `json:"name"`
	Category      string `gorm:"default:Lunch" json:"category"`
	Description   string `json:"description"`
	Price         int64  `json:"price"` // satang/cents
	Image         string `json:"image"`
	IsAvailable   bool   `gorm:"default:true" json:"isAvailable"`
	IsHighlighted bool   `json:"isHighlighted"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`
}
