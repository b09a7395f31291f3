package grocer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudgetTier(t *testing.T) {
	assert.Equal(t, TierBudget, ParseBudgetTier("budget"))
	assert.Equal(t, TierPremium, ParseBudgetTier("premium"))
	assert.Equal(t, TierNormal, ParseBudgetTier("normal"))
	assert.Equal(t, TierNormal, ParseBudgetTier(""))
	assert.Equal(t, TierNormal, ParseBudgetTier("luxury"))
}

func TestRankByTier(t *testing.T) {
	vendors := []Vendor{
		{ID: "a", TierRank: map[BudgetTier]int{TierBudget: 2, TierPremium: 1}},
		{ID: "b", TierRank: map[BudgetTier]int{TierBudget: 1}},
		{ID: "c", TierRank: map[BudgetTier]int{TierPremium: 2}},
		{ID: "d", TierRank: map[BudgetTier]int{}},
	}

	t.Run("RanksAscendingForTier", func(t *testing.T) {
		ranked := RankByTier(vendors, TierBudget)

		require.Len(t, ranked, 4)
		assert.Equal(t, "b", ranked[0].ID)
		assert.Equal(t, "a", ranked[1].ID)
	})

	t.Run("UnrankedVendors_SortLastKeepingOrder", func(t *testing.T) {
		ranked := RankByTier(vendors, TierBudget)

		assert.Equal(t, "c", ranked[2].ID)
		assert.Equal(t, "d", ranked[3].ID)
	})

	t.Run("InputSlice_IsNotModified", func(t *testing.T) {
		_ = RankByTier(vendors, TierPremium)

		assert.Equal(t, "a", vendors[0].ID)
		assert.Equal(t, "d", vendors[3].ID)
	})
}

func TestOrderByTier(t *testing.T) {
	candidates := []VendorProduct{
		{ID: "mid", PricePerUnit: 9.99},
		{ID: "cheap", PricePerUnit: 7.49},
		{ID: "fancy", PricePerUnit: 24.99},
	}

	t.Run("Budget_CheapestFirst", func(t *testing.T) {
		ordered := OrderByTier(candidates, TierBudget)

		assert.Equal(t, "cheap", ordered[0].ID)
		assert.Equal(t, "fancy", ordered[2].ID)
	})

	t.Run("Premium_MostExpensiveFirst", func(t *testing.T) {
		ordered := OrderByTier(candidates, TierPremium)

		assert.Equal(t, "fancy", ordered[0].ID)
		assert.Equal(t, "cheap", ordered[2].ID)
	})

	t.Run("Normal_KeepsCatalogOrder", func(t *testing.T) {
		ordered := OrderByTier(candidates, TierNormal)

		assert.Equal(t, []string{"mid", "cheap", "fancy"}, []string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
	})

	t.Run("InputSlice_IsNotModified", func(t *testing.T) {
		_ = OrderByTier(candidates, TierBudget)

		assert.Equal(t, "mid", candidates[0].ID)
	})
}

func TestRoundPrice(t *testing.T) {
	assert.InDelta(t, 10.57, RoundPrice(10.566), 1e-9)
	assert.InDelta(t, 3.14, RoundPrice(3.14159), 1e-9)
	assert.Zero(t, RoundPrice(0))
}
