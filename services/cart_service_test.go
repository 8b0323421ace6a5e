package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartGetBeforeFirstAdd(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")

	cart, subtotal, err := env.carts.Get(u.ID)
	require.NoError(t, err)
	assert.Zero(t, cart.ID, "no cart row is created by reads")
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
}

func TestCartAddCreatesLineWithSnapshot(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	m := createMenuItem(t, env.db, r, "Margherita", "Dinner", 950)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: m.ID, Quantity: 2,
	}))

	cart, subtotal, err := env.carts.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, r.ID, cart.RestaurantID)
	assert.EqualValues(t, 950, cart.Items[0].UnitPrice)
	assert.EqualValues(t, 1900, cart.Items[0].Total)
	assert.EqualValues(t, 1900, subtotal)
}

func TestCartAddMergesQuantityAndKeepsUnitPrice(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	m := createMenuItem(t, env.db, r, "Margherita", "Dinner", 950)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: m.ID, Quantity: 1, Price: ptr(int64(1000)),
	}))
	// A later add with a different displayed price must not reprice the
	// existing line.
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: m.ID, Quantity: 2, Price: ptr(int64(1200)),
	}))

	cart, subtotal, err := env.carts.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Qty)
	assert.EqualValues(t, 1000, cart.Items[0].UnitPrice)
	assert.EqualValues(t, 3000, subtotal)
}

func TestCartLastTouchAttribution(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	creator := createCreator(t, env.db, "creator@test.dev", 0)
	r := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	m := createMenuItem(t, env.db, r, "Margherita", "Dinner", 950)
	first := createReel(t, env.db, creator, r)
	second := createReel(t, env.db, creator, r)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: m.ID, ReelID: &first.ID,
	}))
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: m.ID, ReelID: &second.ID,
	}))

	cart, _, err := env.carts.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].AttributedReelID)
	assert.Equal(t, second.ID, *cart.Items[0].AttributedReelID)

	// Adding without a reel leaves the last attribution in place.
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: r.ID, MenuItemID: m.ID,
	}))
	cart, _, err = env.carts.Get(u.ID)
	require.NoError(t, err)
	require.NotNil(t, cart.Items[0].AttributedReelID)
	assert.Equal(t, second.ID, *cart.Items[0].AttributedReelID)
}

func TestCartRestaurantSwitchStartsOver(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	pizza := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	thai := createRestaurant(t, env.db, owner, "Thai", 0, 0)
	pie := createMenuItem(t, env.db, pizza, "Margherita", "Dinner", 950)
	pad := createMenuItem(t, env.db, thai, "Pad Thai", "Dinner", 800)

	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: pizza.ID, MenuItemID: pie.ID, Quantity: 3,
	}))
	require.NoError(t, env.carts.Add(u.ID, &AddToCartIn{
		RestaurantID: thai.ID, MenuItemID: pad.ID,
	}))

	cart, subtotal, err := env.carts.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, thai.ID, cart.RestaurantID)
	assert.Equal(t, pad.ID, cart.Items[0].MenuItemID)
	assert.EqualValues(t, 800, subtotal)
}

func TestCartAddValidation(t *testing.T) {
	env := newTestEnv(t)
	u := createUser(t, env.db, "buyer@test.dev")
	owner := createUser(t, env.db, "owner@test.dev")
	pizza := createRestaurant(t, env.db, owner, "Pizza", 0, 0)
	thai := createRestaurant(t, env.db, owner, "Thai", 0, 0)
	pie := createMenuItem(t, env.db, pizza, "Margherita", "Dinner", 950)

	err := env.carts.Add(u.ID, &AddToCartIn{RestaurantID: pizza.ID, MenuItemID: 9999})
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	err = env.carts.Add(u.ID, &AddToCartIn{RestaurantID: thai.ID, MenuItemID: pie.ID})
	assert.ErrorIs(t, err, ErrMenuItemMismatch)
}
