package repository

import (
	"errors"

	"github.com/SHIVA769/snapbites/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with line display fields
// resolved. A missing cart comes back as an empty value, not an error.
func (r *CartRepository) GetCartWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id ASC") }).
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// GetOrCreate loads the user's cart, creating one bound to restaurantID on
// first use.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, RestaurantID: restaurantID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) FindLine(tx *gorm.DB, cartID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// ClearItems empties the cart; the cart row itself survives for reuse.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
