package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"` // menu item name snapshot

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // snapshot carried over from the cart
	Total     int64 `json:"total"`

	AttributedReelID *uint `json:"attributedReelId"`

	// Creator payout for this line; zero amount and nil creator when the
	// line carries no attribution.
	CommissionCreatorID *uint `json:"commissionCreatorId"`
	CommissionAmount    int64 `json:"commissionAmount"`
}
