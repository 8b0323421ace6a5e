package services

import (
	"sync"
	"testing"

	"github.com/SHIVA769/snapbites/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")

	_, err := env.orders.Checkout(u.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var n int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCheckoutCommissionPerAttributedLine(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	creator := createCreator(t, env.db, "creator@test.dev", 0.10)
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)
	cola := createMenuItem(t, env.db, r, "Cola", "Snacks", 300)
	reel := createReel(t, env.db, creator, r)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID, Quantity: 2, ReelID: &reel.ID,
	}))
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: cola.ID,
	}))

	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.Reference)
	assert.Equal(t, "placed", order.Status)
	assert.EqualValues(t, 2300, order.TotalAmount)

	var attributed, plain *entity.OrderItem
	for i := range order.Items {
		if order.Items[i].AttributedReelID != nil {
			attributed = &order.Items[i]
		} else {
			plain = &order.Items[i]
		}
	}
	require.NotNil(t, attributed)
	require.NotNil(t, plain)

	// 10% of the 2000 attributed line, in cents.
	assert.EqualValues(t, 200, attributed.CommissionAmount)
	require.NotNil(t, attributed.CommissionCreatorID)
	assert.Equal(t, creator.ID, *attributed.CommissionCreatorID)

	assert.Zero(t, plain.CommissionAmount)
	assert.Nil(t, plain.CommissionCreatorID)

	// The cart survives empty and is immediately reusable.
	cart, subtotal, err := env.carts.Get(u.ID)
	require.NoError(t, err)
	assert.NotZero(t, cart.ID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: cola.ID,
	}))
}

func TestCheckoutDefaultCommissionRate(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	creator := createCreator(t, env.db, "creator@test.dev", 0)
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)
	reel := createReel(t, env.db, creator, r)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID, ReelID: &reel.ID,
	}))

	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.EqualValues(t, 50, order.Items[0].CommissionAmount)
}

func TestCheckoutSnapshotSurvivesMenuReprice(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID, Quantity: 2,
	}))
	require.NoError(t, env.db.Model(pie).Update("price", 9999).Error)

	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2000, order.TotalAmount)
	assert.EqualValues(t, 1000, order.Items[0].UnitPrice)
	assert.Equal(t, "Margherita", order.Items[0].Name)
}

func TestCheckoutActivityPerDistinctReel(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	creator := createCreator(t, env.db, "creator@test.dev", 0)
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)
	pasta := createMenuItem(t, env.db, r, "Carbonara", "Dinner", 1200)
	salad := createMenuItem(t, env.db, r, "Caesar", "Lunch", 700)
	reelA := createReel(t, env.db, creator, r)
	reelB := createReel(t, env.db, creator, r)

	// Two lines credit reel A, one credits reel B.
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID, ReelID: &reelA.ID,
	}))
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pasta.ID, ReelID: &reelA.ID,
	}))
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: salad.ID, ReelID: &reelB.ID,
	}))

	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, countActivities(t, env.db, u.ID, entity.ActionOrder))
	assert.EqualValues(t, 1, reloadReel(t, env.db, reelA.ID).OrdersCount)
	assert.EqualValues(t, 1, reloadReel(t, env.db, reelB.ID).OrdersCount)

	var recs []entity.UserActivity
	require.NoError(t, env.db.Where("user_id = ?", u.ID).Find(&recs).Error)
	for _, rec := range recs {
		require.NotNil(t, rec.OrderID)
		assert.Equal(t, order.ID, *rec.OrderID)
	}
}

func TestCheckoutUnattributedEmitsSingleEvent(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID,
	}))
	_, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)

	var recs []entity.UserActivity
	require.NoError(t, env.db.Where("user_id = ? AND action = ?", u.ID, entity.ActionOrder).Find(&recs).Error)
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].ReelID)
	require.NotNil(t, recs[0].OrderID)
}

func TestCheckoutDeletedReelDegradesToNoCommission(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	creator := createCreator(t, env.db, "creator@test.dev", 0.10)
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)
	reel := createReel(t, env.db, creator, r)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID, ReelID: &reel.ID,
	}))
	require.NoError(t, env.db.Delete(reel).Error)

	order, err := env.orders.Checkout(u.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Zero(t, order.Items[0].CommissionAmount)
	assert.Nil(t, order.Items[0].CommissionCreatorID)
}

func TestCheckoutConcurrentSingleOrder(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	pie := createMenuItem(t, env.db, r, "Margherita", "Dinner", 1000)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: pie.ID,
	}))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.orders.Checkout(u.ID)
		}(i)
	}
	wg.Wait()

	var okCount, emptyCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case assert.ErrorIs(t, err, ErrEmptyCart):
			emptyCount++
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, emptyCount)

	var n int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
