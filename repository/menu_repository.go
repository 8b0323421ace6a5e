package repository

import (
	"github.com/SHIVA769/snapbites/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Available is the recommendation candidate pool, insertion order.
func (r *MenuRepository) Available() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_available = ?", true).
		Preload("Restaurant").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListForRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
