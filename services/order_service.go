package services

import (
	"log"
	"sync"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Platform default when a creator has no configured rate.
var defaultCommissionRate = decimal.NewFromFloat(0.05)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	ReelRepo *repository.ReelRepository
	Activity *ActivityService

	// One checkout at a time per user; two concurrent checkouts must not
	// both observe the same non-empty cart.
	locks sync.Map // userID -> *sync.Mutex
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	reelRepo *repository.ReelRepository,
	activity *ActivityService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, ReelRepo: reelRepo, Activity: activity}
}

func (s *OrderService) userLock(userID uint) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Checkout snapshots the user's cart into an immutable order, resolves
// creator commissions per line, clears the cart, and emits order activity.
// Order creation and cart clearing commit as one transaction.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if cart.ID == 0 || len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var total int64
		for _, it := range cart.Items {
			total += it.UnitPrice * int64(it.Qty)
		}

		o := entity.Order{
			Reference:    uuid.NewString(),
			UserID:       userID,
			RestaurantID: cart.RestaurantID,
			TotalAmount:  total,
			Status:       "placed",
		}
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				MenuItemID:       it.MenuItemID,
				Name:             it.MenuItem.Name,
				Qty:              it.Qty,
				UnitPrice:        it.UnitPrice,
				Total:            it.UnitPrice * int64(it.Qty),
				AttributedReelID: it.AttributedReelID,
			}
			if it.AttributedReelID != nil {
				if creatorID, amount, ok := s.resolveCommission(tx, *it.AttributedReelID, oi.Total); ok {
					oi.CommissionCreatorID = &creatorID
					oi.CommissionAmount = amount
				}
			}
			o.Items = append(o.Items, oi)
		}

		if err := s.Repo.Create(tx, &o); err != nil {
			return err
		}
		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return err
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitOrderActivity(order)
	return order, nil
}

// resolveCommission looks up the attributed reel's creator and rate. Any
// failure degrades to no commission for the line; it never aborts checkout.
func (s *OrderService) resolveCommission(tx *gorm.DB, reelID uint, subtotal int64) (uint, int64, bool) {
	reel, err := s.ReelRepo.GetWithCreator(tx, reelID)
	if err != nil || reel.Creator.ID == 0 {
		log.Printf("checkout: attribution for reel %d unresolved: %v", reelID, err)
		return 0, 0, false
	}

	rate := reel.Creator.CommissionRate
	if rate.IsZero() {
		rate = defaultCommissionRate
	}
	amount := decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
	return reel.CreatorID, amount, true
}

// emitOrderActivity records one "order" event per distinct attributed reel
// (lines crediting the same reel collapse into one event), or a single
// reel-less event when nothing was attributed.
func (s *OrderService) emitOrderActivity(order *entity.Order) {
	seen := make(map[uint]bool)
	attributed := false
	for _, it := range order.Items {
		if it.AttributedReelID == nil || seen[*it.AttributedReelID] {
			continue
		}
		seen[*it.AttributedReelID] = true
		attributed = true
		s.Activity.Record(ActivityEvent{
			UserID:  order.UserID,
			Action:  entity.ActionOrder,
			ReelID:  it.AttributedReelID,
			OrderID: &order.ID,
		})
	}
	if !attributed {
		s.Activity.Record(ActivityEvent{
			UserID:  order.UserID,
			Action:  entity.ActionOrder,
			OrderID: &order.ID,
		})
	}
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}
