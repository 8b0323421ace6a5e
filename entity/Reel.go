package entity

import (
	"gorm.io/gorm"
)

type Reel struct {
	gorm.Model
	VideoURL string `json:"videoUrl"`
	Caption  string `json:"caption"`

	CreatorID uint `json:"creatorId"`
	Creator   User `json:"creator"`

	// Both tags are optional and independent
	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	MenuItemID   *uint       `json:"menuItemId"`
	MenuItem     *MenuItem   `json:"menuItem,omitempty"`

	// Denormalized engagement counters, adjusted only through
	// ReelRepository.ApplyInteraction. Eventually consistent with the
	// activity log.
	LikesCount    int64 `json:"likesCount"`
	CommentsCount int64 `json:"commentsCount"`
	OrdersCount   int64 `json:"ordersCount"`
	Views         int64 `json:"views"`

	// Display flag only; never consulted by ranking.
	IsBoosted bool `json:"isBoosted"`
}
