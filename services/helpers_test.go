package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/SHIVA769/snapbites/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// Each test gets its own named in-memory database; a plain ":memory:" DSN
// would give every pooled connection a different database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"), dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Reel{}, &entity.Like{}, &entity.Comment{}, &entity.SavedReel{}, &entity.Follow{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.UserActivity{},
	))
	return db
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testEnv struct {
	db       *gorm.DB
	clock    *testClock
	activity *ActivityService
	carts    *CartService
	orders   *OrderService
	feed     *FeedService
	recs     *RecommendationService
	reels    *ReelService
	users    *UserService
}

// newTestEnv wires every service against one database with a synchronous
// dispatcher and a fake deduper clock so tests can assert on emitted
// activity records deterministically.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	reelRepo := repository.NewReelRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	activitySvc := NewActivityService(db, activityRepo, reelRepo)
	activitySvc.dispatch = func(task func()) { task() }
	clock := &testClock{now: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)}
	activitySvc.dedup.now = clock.Now

	return &testEnv{
		db:       db,
		clock:    clock,
		activity: activitySvc,
		carts:    NewCartService(db, cartRepo, menuRepo),
		orders:   NewOrderService(db, orderRepo, cartRepo, reelRepo, activitySvc),
		feed:     NewFeedService(db, reelRepo, activityRepo, orderRepo, userRepo, activitySvc),
		recs:     NewRecommendationService(menuRepo, activityRepo, orderRepo),
		reels:    NewReelService(db, reelRepo, activitySvc),
		users:    NewUserService(db, userRepo, reelRepo, orderRepo, activityRepo),
	}
}

func ptr[T any](v T) *T { return &v }

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Name: email, Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createCreator(t *testing.T, db *gorm.DB, email string, rate float64) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Name: email, Role: "creator"}
	if rate > 0 {
		u.CommissionRate = decimal.NewFromFloat(rate)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, owner *entity.User, cuisine string, lat, lng float64) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name: cuisine + " place", Cuisine: cuisine,
		Address: "1 Test St", Lat: lat, Lng: lng,
		OwnerID: owner.ID, IsApproved: true,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createMenuItem(t *testing.T, db *gorm.DB, r *entity.Restaurant, name, category string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		RestaurantID: r.ID, Name: name, Category: category,
		Price: price, IsAvailable: true,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func createReel(t *testing.T, db *gorm.DB, creator *entity.User, rest *entity.Restaurant) *entity.Reel {
	t.Helper()
	reel := &entity.Reel{
		CreatorID: creator.ID,
		VideoURL:  "/uploads/test.mp4",
		Caption:   "test reel",
	}
	if rest != nil {
		reel.RestaurantID = &rest.ID
	}
	require.NoError(t, db.Create(reel).Error)
	return reel
}

func setCounters(t *testing.T, db *gorm.DB, reel *entity.Reel, likes, comments, orders int64) {
	t.Helper()
	require.NoError(t, db.Model(reel).Updates(map[string]any{
		"likes_count":    likes,
		"comments_count": comments,
		"orders_count":   orders,
	}).Error)
}

func countActivities(t *testing.T, db *gorm.DB, userID uint, action string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entity.UserActivity{}).
		Where("user_id = ? AND action = ?", userID, action).
		Count(&n).Error)
	return n
}

func reloadReel(t *testing.T, db *gorm.DB, id uint) *entity.Reel {
	t.Helper()
	var r entity.Reel
	require.NoError(t, db.First(&r, id).Error)
	return &r
}
