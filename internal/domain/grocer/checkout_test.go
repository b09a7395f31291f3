package grocer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CheckoutTestSuite covers checkout artifact construction per integration mode
type CheckoutTestSuite struct {
	suite.Suite
	items []CartItem
}

func (suite *CheckoutTestSuite) SetupTest() {
	suite.items = []CartItem{
		{
			Product:       VendorProduct{ID: "p1", Name: "Fresh Mozzarella", PricePerUnit: 7.49, Currency: "USD", PackageSize: "250g"},
			Quantity:      2,
			IngredientRef: "mozzarella",
		},
		{
			Product:       VendorProduct{ID: "p2", Name: "Tomato Sauce", PricePerUnit: 3.25, Currency: "USD", PackageSize: "500ml"},
			Quantity:      1,
			IngredientRef: "tomato sauce",
		},
	}
}

func (suite *CheckoutTestSuite) TestDeeplinkVendor() {
	suite.Run("WithHintParam_IncludesFirstItem", func() {
		// Arrange
		vendor := &Vendor{
			ID:               "cartwheel",
			Integration:      IntegrationDeeplink,
			StorefrontURL:    "https://shop.cartwheel.example/store",
			ProductHintParam: "search",
			Currency:         "USD",
		}

		// Act
		result := BuildCheckout(vendor, suite.items, CheckoutConfig{})

		// Assert
		assert.Contains(suite.T(), result.CheckoutURL, "https://shop.cartwheel.example/store")
		assert.Contains(suite.T(), result.CheckoutURL, "search=Fresh+Mozzarella")
		assert.False(suite.T(), result.RequiresAppHandoff)
		assert.Empty(suite.T(), result.HandoffMessage)
	})

	suite.Run("WithoutHintParam_PlainStorefrontURL", func() {
		// Arrange
		vendor := &Vendor{
			ID:            "maisonmarche",
			Integration:   IntegrationDeeplink,
			StorefrontURL: "https://maisonmarche.example/boutique",
			Currency:      "USD",
		}

		// Act
		result := BuildCheckout(vendor, suite.items, CheckoutConfig{})

		// Assert
		assert.Equal(suite.T(), "https://maisonmarche.example/boutique", result.CheckoutURL)
	})
}

func (suite *CheckoutTestSuite) TestManualVendor() {
	vendor := &Vendor{
		ID:          "errandly",
		Integration: IntegrationManual,
		Currency:    "USD",
	}

	suite.Run("ProducesHandoffMessage", func() {
		// Act
		result := BuildCheckout(vendor, suite.items, CheckoutConfig{
			PreferredStore: "Corner Grocer",
			PreferredCity:  "Lyon",
		})

		// Assert
		require.True(suite.T(), result.RequiresAppHandoff)
		assert.Empty(suite.T(), result.CheckoutURL)

		lines := strings.Split(result.HandoffMessage, "\n")
		require.Len(suite.T(), lines, 4)
		assert.Equal(suite.T(), "Shopping list for Corner Grocer (Lyon):", lines[0])
		assert.Equal(suite.T(), "• ×2 Fresh Mozzarella (250g)", lines[1])
		assert.Equal(suite.T(), "• Tomato Sauce (500ml)", lines[2])
		assert.Equal(suite.T(), strings.Repeat("-", 30), lines[3])
	})

	suite.Run("NoPreferredStore_GenericHeader", func() {
		// Act
		result := BuildCheckout(vendor, suite.items, CheckoutConfig{})

		// Assert
		assert.True(suite.T(), strings.HasPrefix(result.HandoffMessage, "Shopping list:\n"))
	})

	suite.Run("StoreWithoutCity_OmitsCity", func() {
		// Act
		result := BuildCheckout(vendor, suite.items, CheckoutConfig{PreferredStore: "Corner Grocer"})

		// Assert
		assert.True(suite.T(), strings.HasPrefix(result.HandoffMessage, "Shopping list for Corner Grocer:\n"))
	})
}

func (suite *CheckoutTestSuite) TestUnknownVendor() {
	suite.Run("NilVendor_FallsBackToSearchURL", func() {
		// Act
		result := BuildCheckout(nil, suite.items, CheckoutConfig{})

		// Assert
		assert.Contains(suite.T(), result.CheckoutURL, "https://www.google.com/search?q=")
		assert.Contains(suite.T(), result.CheckoutURL, "Fresh+Mozzarella")
		assert.Contains(suite.T(), result.CheckoutURL, "Tomato+Sauce")
		assert.False(suite.T(), result.RequiresAppHandoff)
	})
}

func (suite *CheckoutTestSuite) TestEstimatedTotal() {
	suite.Run("SumOfPriceTimesQuantity_OnEveryBranch", func() {
		// 2 × 7.49 + 1 × 3.25 = 18.23
		expected := 18.23

		for _, vendor := range []*Vendor{
			nil,
			{Integration: IntegrationManual},
			{Integration: IntegrationDeeplink, StorefrontURL: "https://v.example"},
			{Integration: IntegrationAPI, StorefrontURL: "https://v.example"},
		} {
			result := BuildCheckout(vendor, suite.items, CheckoutConfig{})
			assert.InDelta(suite.T(), expected, result.EstimatedTotal, 1e-9)
		}
	})

	suite.Run("EmptyCart_ZeroTotal", func() {
		result := BuildCheckout(nil, nil, CheckoutConfig{})

		assert.Zero(suite.T(), result.EstimatedTotal)
	})
}

func (suite *CheckoutTestSuite) TestCurrency() {
	suite.Run("VendorCurrency_Wins", func() {
		vendor := &Vendor{Integration: IntegrationDeeplink, StorefrontURL: "https://v.example", Currency: "EUR"}

		result := BuildCheckout(vendor, suite.items, CheckoutConfig{})

		assert.Equal(suite.T(), "EUR", result.Currency)
	})

	suite.Run("NoVendor_FirstItemCurrency", func() {
		result := BuildCheckout(nil, suite.items, CheckoutConfig{})

		assert.Equal(suite.T(), "USD", result.Currency)
	})

	suite.Run("NothingKnown_DefaultsUSD", func() {
		result := BuildCheckout(nil, nil, CheckoutConfig{})

		assert.Equal(suite.T(), "USD", result.Currency)
	})
}

func TestCheckoutTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func TestNewOrder(t *testing.T) {
	items := []CartItem{{Product: VendorProduct{Name: "Milk"}, Quantity: 1}}

	t.Run("CheckoutURL_Artifact", func(t *testing.T) {
		order := NewOrder("greenbasket", true, TierNormal, items, CartResult{CheckoutURL: "https://v.example", EstimatedTotal: 3.5, Currency: "USD"})

		assert.Equal(t, ArtifactCheckoutURL, order.Artifact)
		assert.Equal(t, "greenbasket", order.VendorID)
		assert.Equal(t, 1, order.ItemCount)
		assert.InDelta(t, 3.5, order.EstimatedTotal, 1e-9)
	})

	t.Run("Handoff_Artifact", func(t *testing.T) {
		order := NewOrder("errandly", true, TierBudget, items, CartResult{RequiresAppHandoff: true})

		assert.Equal(t, ArtifactHandoff, order.Artifact)
	})

	t.Run("UnknownVendor_SearchArtifact", func(t *testing.T) {
		order := NewOrder("nope", false, TierNormal, items, CartResult{CheckoutURL: "https://www.google.com/search?q=Milk"})

		assert.Equal(t, ArtifactSearch, order.Artifact)
	})
}
