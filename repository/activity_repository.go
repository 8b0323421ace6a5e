package repository

import (
	"github.com/SHIVA769/snapbites/entity"
	"gorm.io/gorm"
)

type ActivityRepository struct{ DB *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{DB: db} }

func (r *ActivityRepository) Create(a *entity.UserActivity) error {
	return r.DB.Create(a).Error
}

// RecentWithReel returns the viewer's newest activities with the linked reel
// loaded. Used by the rankers to derive affinity weights.
func (r *ActivityRepository) RecentWithReel(userID uint, limit int) ([]entity.UserActivity, error) {
	var acts []entity.UserActivity
	err := r.DB.Where("user_id = ?", userID).
		Preload("Reel").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&acts).Error
	return acts, err
}

// ListForUser is the history endpoint variant with display preloads.
func (r *ActivityRepository) ListForUser(userID uint, limit int) ([]entity.UserActivity, error) {
	var acts []entity.UserActivity
	err := r.DB.Where("user_id = ?", userID).
		Preload("Reel").
		Preload("Reel.Creator").
		Preload("Order").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&acts).Error
	return acts, err
}

func (r *ActivityRepository) CountByUserAndAction(userID uint, action string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.UserActivity{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&n).Error
	return n, err
}
