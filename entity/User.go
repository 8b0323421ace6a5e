package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// Fraction of an attributed line's subtotal paid out when this user's
	// reel drives a purchase. Zero means "not configured" and falls back to
	// the platform default at checkout.
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,4)" json:"commissionRate"`

	// Relations — preload only when needed
	Reels            []Reel       `gorm:"foreignKey:CreatorID" json:"-"`
	Orders           []Order      `json:"-"`
	RestaurantsOwned []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
}
