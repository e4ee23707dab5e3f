package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
)

func TestToggleWishlist(t *testing.T) {
	dispatcher := &mockEventDispatcher{}
	wishlist := service.NewWishlistService(testCatalog(), dispatcher)

	t.Run("toggle on adds exactly once", func(t *testing.T) {
		added, err := wishlist.Toggle("Fresh Fruits", 0)
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, wishlist.Contains("Shimla Apple"))
		require.Len(t, wishlist.Items(), 1)

		entry := wishlist.Items()[0]
		assert.Equal(t, "Fresh Fruits", entry.Category)
		assert.Equal(t, 0, entry.Index)
	})

	t.Run("toggle off removes it", func(t *testing.T) {
		added, err := wishlist.Toggle("Fresh Fruits", 0)
		require.NoError(t, err)
		assert.False(t, added)
		assert.False(t, wishlist.Contains("Shimla Apple"))
		assert.Empty(t, wishlist.Items())
	})

	t.Run("unknown category and index are rejected", func(t *testing.T) {
		_, err := wishlist.Toggle("Electronics", 0)
		assert.ErrorIs(t, err, model.ErrCategoryNotFound)

		_, err = wishlist.Toggle("Fresh Fruits", 99)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestWishlistKeepsDistinctProducts(t *testing.T) {
	dispatcher := &mockEventDispatcher{}
	wishlist := service.NewWishlistService(testCatalog(), dispatcher)

	_, err := wishlist.Toggle("Fresh Fruits", 0)
	require.NoError(t, err)
	_, err = wishlist.Toggle("Staples", 1)
	require.NoError(t, err)

	require.Len(t, wishlist.Items(), 2)
	assert.True(t, wishlist.Contains("Shimla Apple"))
	assert.True(t, wishlist.Contains("Iodized Salt"))
}
