package repository

import (
	"time"

	"github.com/SHIVA769/snapbites/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// RecentWithRestaurant feeds the cuisine-affinity scan.
func (r *OrderRepository) RecentWithRestaurant(userID uint, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Restaurant").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// CommissionLine is one attributed order line from a creator's point of view.
type CommissionLine struct {
	Amount    int64     `json:"amount"`
	LineTotal int64     `json:"lineTotal"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *OrderRepository) CommissionLinesForCreator(creatorID uint) ([]CommissionLine, error) {
	var lines []CommissionLine
	err := r.DB.Table("order_items").
		Select("order_items.commission_amount AS amount, order_items.total AS line_total, orders.created_at AS created_at").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.commission_creator_id = ?", creatorID).
		Order("orders.created_at DESC").
		Scan(&lines).Error
	return lines, err
}
