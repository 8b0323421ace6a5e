package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Interaction actions recorded in the activity log.
const (
	ActionView    = "view"
	ActionLike    = "like"
	ActionComment = "comment"
	ActionOrder   = "order"
)

func ValidAction(a string) bool {
	switch a {
	case ActionView, ActionLike, ActionComment, ActionOrder:
		return true
	}
	return false
}

// UserActivity is append-only: rows are created, never updated or deleted.
type UserActivity struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID uint   `gorm:"index:idx_activities_user_created,priority:1" json:"userId"`
	Action string `gorm:"index:idx_activities_reel_action,priority:2" json:"action"`

	ReelID *uint `gorm:"index:idx_activities_reel_action,priority:1" json:"reelId"`
	Reel   *Reel `json:"reel,omitempty"`

	OrderID *uint  `json:"orderId"`
	Order   *Order `json:"order,omitempty"`

	Metadata datatypes.JSONMap `json:"metadata"`

	CreatedAt time.Time `gorm:"index:idx_activities_user_created,priority:2" json:"createdAt"`
}
