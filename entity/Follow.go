package entity

import (
	"gorm.io/gorm"
)

type Follow struct {
	gorm.Model
	FollowerID uint `gorm:"uniqueIndex:idx_follows_pair" json:"followerId"`
	Follower   User `json:"-"`

	FollowingID uint `gorm:"uniqueIndex:idx_follows_pair" json:"followingId"`
	Following   User `json:"-"`
}
