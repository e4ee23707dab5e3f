package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
)

func setupCart(t *testing.T) (service.CartService, *mockEventDispatcher) {
	t.Helper()
	dispatcher := &mockEventDispatcher{}
	return service.NewCartService(testCatalog(), dispatcher), dispatcher
}

func TestAddToCart(t *testing.T) {
	cart, dispatcher := setupCart(t)

	t.Run("first add creates a line with quantity 1", func(t *testing.T) {
		qty, err := cart.AddToCart("Shimla Apple")
		require.NoError(t, err)
		assert.Equal(t, 1, qty)

		line, ok := cart.Line("Shimla Apple")
		require.True(t, ok)
		assert.Equal(t, "1 unit", line.Size)

		require.Len(t, dispatcher.events, 1)
		_, ok = dispatcher.events[0].(model.LineAddedToCart)
		assert.True(t, ok)
	})

	t.Run("second add increments the same line", func(t *testing.T) {
		qty, err := cart.AddToCart("Shimla Apple")
		require.NoError(t, err)
		assert.Equal(t, 2, qty)
		assert.Len(t, cart.Lines(), 1, "at most one line per product name")
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		_, err := cart.AddToCart("Unobtainium")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestQuantityNetEffect(t *testing.T) {
	cart, _ := setupCart(t)

	// +1 add, +2 increase, -1 decrease nets to 2.
	_, err := cart.AddToCart("Basmati Rice")
	require.NoError(t, err)
	_, err = cart.IncreaseQty("Basmati Rice")
	require.NoError(t, err)
	_, err = cart.IncreaseQty("Basmati Rice")
	require.NoError(t, err)
	qty, removed, err := cart.DecreaseQty("Basmati Rice")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 2, qty)
}

func TestDecreaseBelowOneRemovesLine(t *testing.T) {
	cart, dispatcher := setupCart(t)
	_, err := cart.AddToCart("Iodized Salt")
	require.NoError(t, err)
	dispatcher.Reset()

	qty, removed, err := cart.DecreaseQty("Iodized Salt")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Zero(t, qty, "quantity is never negative")
	assert.Empty(t, cart.Lines())

	require.Len(t, dispatcher.events, 1)
	_, ok := dispatcher.events[0].(model.LineRemovedFromCart)
	assert.True(t, ok)

	_, _, err = cart.DecreaseQty("Iodized Salt")
	assert.ErrorIs(t, err, model.ErrLineNotFound)
}

func TestTotalsSingleItemBelowThreshold(t *testing.T) {
	cart, _ := setupCart(t)
	_, err := cart.AddToCart("Shimla Apple") // ₹120
	require.NoError(t, err)

	totals := cart.Totals()
	assert.Equal(t, 120, totals.ItemsTotal)
	assert.Equal(t, 5, totals.PlatformFee)
	assert.Equal(t, 10, totals.HandlingFee)
	assert.Equal(t, 30, totals.DeliveryFee, "below ₹299 pays delivery")
	assert.Equal(t, 165, totals.GrandTotal)
	assert.Equal(t, 13, totals.TotalSaved, "₹133 MRP − ₹120")
}

func TestTotalsFreeDeliveryAtThreshold(t *testing.T) {
	cart, _ := setupCart(t)
	// 120 + 180 = 300 ≥ 299.
	_, err := cart.AddToCart("Shimla Apple")
	require.NoError(t, err)
	_, err = cart.AddToCart("Basmati Rice")
	require.NoError(t, err)

	totals := cart.Totals()
	assert.Equal(t, 300, totals.ItemsTotal)
	assert.Equal(t, 0, totals.DeliveryFee)
	assert.Equal(t, 315, totals.GrandTotal)
	assert.Equal(t, 0, cart.FreeDeliveryRemaining())
}

func TestTotalsRecomputedOnEveryMutation(t *testing.T) {
	cart, _ := setupCart(t)
	_, err := cart.AddToCart("Shimla Apple")
	require.NoError(t, err)
	before := cart.Totals()

	_, err = cart.IncreaseQty("Shimla Apple")
	require.NoError(t, err)
	after := cart.Totals()

	assert.Equal(t, before.ItemsTotal*2, after.ItemsTotal)
	assert.Equal(t, after.ItemsTotal+5+10+30, after.GrandTotal,
		"grand total is always itemsTotal + 5 + 10 + delivery")
}

func TestGrandTotalInvariantAcrossMixedCarts(t *testing.T) {
	cart, _ := setupCart(t)
	names := []string{"Shimla Apple", "Robusta Banana", "Basmati Rice", "Iodized Salt"}
	for _, name := range names {
		_, err := cart.AddToCart(name)
		require.NoError(t, err)

		totals := cart.Totals()
		delivery := 30
		if totals.ItemsTotal >= model.FreeDeliveryThreshold {
			delivery = 0
		}
		assert.Equal(t, totals.ItemsTotal+5+10+delivery, totals.GrandTotal)
	}
}

func TestFreeDeliveryRemaining(t *testing.T) {
	cart, _ := setupCart(t)
	_, err := cart.AddToCart("Shimla Apple") // ₹120
	require.NoError(t, err)
	assert.Equal(t, 179, cart.FreeDeliveryRemaining())
}

func TestCount(t *testing.T) {
	cart, _ := setupCart(t)
	_, err := cart.AddToCart("Shimla Apple")
	require.NoError(t, err)
	_, err = cart.AddToCart("Shimla Apple")
	require.NoError(t, err)
	_, err = cart.AddToCart("Iodized Salt")
	require.NoError(t, err)

	assert.Equal(t, 3, cart.Count())
}

func TestCheckoutSnapshotsAndClears(t *testing.T) {
	cart, _ := setupCart(t)
	_, err := cart.AddToCart("Shimla Apple")
	require.NoError(t, err)

	lines, totals := cart.Checkout()
	require.Len(t, lines, 1)
	assert.Equal(t, 165, totals.GrandTotal)
	assert.Empty(t, cart.Lines())
	assert.Zero(t, cart.Totals().ItemsTotal)
}

func TestRemoveLine(t *testing.T) {
	cart, _ := setupCart(t)
	_, err := cart.AddToCart("Shimla Apple")
	require.NoError(t, err)
	_, err = cart.IncreaseQty("Shimla Apple")
	require.NoError(t, err)

	require.NoError(t, cart.RemoveLine("Shimla Apple"))
	assert.Empty(t, cart.Lines())
	assert.ErrorIs(t, cart.RemoveLine("Shimla Apple"), model.ErrLineNotFound)
}
