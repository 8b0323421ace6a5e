package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // snapshot at add time, not live-refreshed
	Total     int64 `json:"total"`

	// Reel credited with driving this line. Last touch wins: a repeated add
	// of the same item with a reel overwrites it.
	AttributedReelID *uint `json:"attributedReelId"`
	AttributedReel   *Reel `json:"-"`
}
