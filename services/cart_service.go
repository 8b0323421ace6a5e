package services

import (
	"errors"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	MenuItemID   uint   `json:"menuItemId" binding:"required"`
	Quantity     int    `json:"quantity"`
	Price        *int64 `json:"price"`
	ReelID       *uint  `json:"reelId"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

// Add upserts one line into the user's cart.
//
// Postconditions: the cart is bound to in.RestaurantID (switching
// restaurants discards every prior line); at most one line exists per menu
// item, with quantities summed; when a reel is supplied it overwrites the
// line's attribution — last touch wins regardless of how earlier adds of
// the same item were attributed.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	m, err := s.MenuRepo.GetItem(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	if m.RestaurantID != in.RestaurantID {
		return ErrMenuItemMismatch
	}

	// Price snapshot: the client echoes the price it showed; fall back to
	// the current menu price when absent.
	price := m.Price
	if in.Price != nil && *in.Price > 0 {
		price = *in.Price
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID, in.RestaurantID)
		if err != nil {
			return err
		}

		// Single-restaurant cart: switching restaurants starts over.
		if cart.RestaurantID != in.RestaurantID {
			if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
				return err
			}
			cart.RestaurantID = in.RestaurantID
			if err := tx.Save(cart).Error; err != nil {
				return err
			}
		}

		line, err := s.CartRepo.FindLine(tx, cart.ID, in.MenuItemID)
		if err == nil {
			line.Qty += in.Quantity
			line.Total = line.UnitPrice * int64(line.Qty)
			if in.ReelID != nil {
				line.AttributedReelID = in.ReelID
			}
			return tx.Save(line).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := entity.CartItem{
			CartID:           cart.ID,
			MenuItemID:       in.MenuItemID,
			Qty:              in.Quantity,
			UnitPrice:        price,
			Total:            price * int64(in.Quantity),
			AttributedReelID: in.ReelID,
		}
		return tx.Create(&row).Error
	})
}
