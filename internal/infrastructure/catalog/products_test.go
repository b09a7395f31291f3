package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPools_Candidates(t *testing.T) {
	pools := NewProductPools()
	ctx := context.Background()

	t.Run("KnownKey_ReturnsCuratedPoolInOrder", func(t *testing.T) {
		pool, err := pools.Candidates(ctx, "mozzarella", "dairy")

		require.NoError(t, err)
		require.Len(t, pool, 3)
		assert.Equal(t, "moz-classic", pool[0].ID)
		assert.InDelta(t, 9.99, pool[0].PricePerUnit, 1e-9)
		assert.Equal(t, "moz-value", pool[1].ID)
		assert.Equal(t, "moz-bufala", pool[2].ID)
	})

	t.Run("KnownKeyWithEmptyPool_ReturnsEmptyNotFallback", func(t *testing.T) {
		pool, err := pools.Candidates(ctx, "wine", "pantry")

		require.NoError(t, err)
		assert.Empty(t, pool)
	})

	t.Run("UnknownKey_FallsBackToCategoryPool", func(t *testing.T) {
		pool, err := pools.Candidates(ctx, "", "dairy")

		require.NoError(t, err)
		require.NotEmpty(t, pool)
		assert.Equal(t, "cat-dairy-butter", pool[0].ID)
	})

	t.Run("CategoryLookup_IsCaseInsensitive", func(t *testing.T) {
		pool, err := pools.Candidates(ctx, "", "Dairy")

		require.NoError(t, err)
		require.NotEmpty(t, pool)
		assert.Equal(t, "cat-dairy-butter", pool[0].ID)
	})

	t.Run("UnknownCategory_FallsBackToPantryPool", func(t *testing.T) {
		pool, err := pools.Candidates(ctx, "", "exotic")

		require.NoError(t, err)
		require.NotEmpty(t, pool)
		assert.Equal(t, "cat-pan-stock", pool[0].ID)
	})

	t.Run("NoKeyNoCategory_ReturnsNil", func(t *testing.T) {
		pool, err := pools.Candidates(ctx, "", "")

		require.NoError(t, err)
		assert.Nil(t, pool)
	})

	t.Run("ReturnedPool_IsACopy", func(t *testing.T) {
		first, err := pools.Candidates(ctx, "mozzarella", "")
		require.NoError(t, err)
		first[0].VendorID = "mutated"

		second, err := pools.Candidates(ctx, "mozzarella", "")
		require.NoError(t, err)
		assert.Empty(t, second[0].VendorID)
	})
}

func TestProductPools_SubstitutionHint(t *testing.T) {
	pools := NewProductPools()

	t.Run("CuratedIngredient_ReturnsSubstitute", func(t *testing.T) {
		sub, ok := pools.SubstitutionHint("Red Wine")

		assert.True(t, ok)
		assert.Equal(t, "red grape juice", sub)
	})

	t.Run("UncuratedIngredient_ReturnsFalse", func(t *testing.T) {
		_, ok := pools.SubstitutionHint("mozzarella")

		assert.False(t, ok)
	})
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	t.Run("Get_KnownVendor", func(t *testing.T) {
		vendor, ok := registry.Get("cartwheel")

		require.True(t, ok)
		assert.Equal(t, "Cartwheel Market", vendor.Name)
		assert.Equal(t, "search", vendor.ProductHintParam)
	})

	t.Run("Get_UnknownVendor", func(t *testing.T) {
		_, ok := registry.Get("no-such-vendor")

		assert.False(t, ok)
	})

	t.Run("List_ReturnsCopyInSeedOrder", func(t *testing.T) {
		first := registry.List()
		require.NotEmpty(t, first)
		first[0].Name = "mutated"

		second := registry.List()
		assert.Equal(t, "GreenBasket", second[0].Name)
	})
}
