package repository

import (
	"fmt"

	"github.com/SHIVA769/snapbites/entity"
	"gorm.io/gorm"
)

type ReelRepository struct{ DB *gorm.DB }

func NewReelRepository(db *gorm.DB) *ReelRepository { return &ReelRepository{DB: db} }

// ReelFilter narrows feed retrieval. CreatorIDs non-nil restricts candidates
// to those creators (an empty slice matches nothing).
type ReelFilter struct {
	RestaurantID uint
	MenuItemID   uint
	Search       string
	CreatorIDs   []uint
	OrderBy      string
}

func (r *ReelRepository) Search(f ReelFilter) ([]entity.Reel, error) {
	q := r.DB.Preload("Creator").Preload("Restaurant").Preload("MenuItem")
	if f.RestaurantID != 0 {
		q = q.Where("restaurant_id = ?", f.RestaurantID)
	}
	if f.MenuItemID != 0 {
		q = q.Where("menu_item_id = ?", f.MenuItemID)
	}
	if f.Search != "" {
		q = q.Where("caption LIKE ?", "%"+f.Search+"%")
	}
	if f.CreatorIDs != nil {
		q = q.Where("creator_id IN ?", f.CreatorIDs)
	}
	order := f.OrderBy
	if order == "" {
		order = "created_at DESC, id DESC"
	}

	var reels []entity.Reel
	err := q.Order(order).Find(&reels).Error
	return reels, err
}

func (r *ReelRepository) Get(tx *gorm.DB, id uint) (*entity.Reel, error) {
	var reel entity.Reel
	if err := tx.First(&reel, id).Error; err != nil {
		return nil, err
	}
	return &reel, nil
}

func (r *ReelRepository) GetWithCreator(tx *gorm.DB, id uint) (*entity.Reel, error) {
	var reel entity.Reel
	if err := tx.Preload("Creator").First(&reel, id).Error; err != nil {
		return nil, err
	}
	return &reel, nil
}

// ByCreator lists a creator's reels, most liked first (profile/analytics view).
func (r *ReelRepository) ByCreator(creatorID uint) ([]entity.Reel, error) {
	var reels []entity.Reel
	err := r.DB.Where("creator_id = ?", creatorID).
		Order("likes_count DESC, id DESC").
		Find(&reels).Error
	return reels, err
}

// ApplyInteraction is the single place engagement counters change. The
// adjustment happens in SQL so concurrent interactions never lose updates,
// and counters are floored at zero.
func (r *ReelRepository) ApplyInteraction(tx *gorm.DB, reelID uint, action string, delta int) error {
	var col string
	switch action {
	case entity.ActionLike:
		col = "likes_count"
	case entity.ActionComment:
		col = "comments_count"
	case entity.ActionOrder:
		col = "orders_count"
	case entity.ActionView:
		col = "views"
	default:
		return fmt.Errorf("unknown interaction %q", action)
	}

	expr := fmt.Sprintf("CASE WHEN %s + ? < 0 THEN 0 ELSE %s + ? END", col, col)
	return tx.Model(&entity.Reel{}).
		Where("id = ?", reelID).
		UpdateColumn(col, gorm.Expr(expr, delta, delta)).Error
}
