package gorm_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/domain/shopping"
	gormRepo "github.com/forkful/v2/internal/infrastructure/persistence/gorm"
	"github.com/forkful/v2/internal/infrastructure/persistence/sqlite"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// ShoppingListRepositoryTestSuite provides a test suite for the GORM-backed repositories
type ShoppingListRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	lists outbound.ShoppingListRepository
}

func (suite *ShoppingListRepositoryTestSuite) SetupTest() {
	db, err := sqlite.SetupDatabase("", gormLogger.Silent)
	require.NoError(suite.T(), err)

	suite.db = db
	suite.lists = gormRepo.NewShoppingListRepository(db)
}

func (suite *ShoppingListRepositoryTestSuite) newList(items ...shopping.ListItem) *shopping.List {
	list, err := shopping.NewList(gofakeit.Dinner())
	require.NoError(suite.T(), err)
	for _, item := range items {
		require.NoError(suite.T(), list.AddItem(item))
	}
	return list
}

func (suite *ShoppingListRepositoryTestSuite) TestCreateAndFindByID() {
	suite.Run("RoundTrip_PreservesNameAndItems", func() {
		// Arrange
		list := suite.newList(
			shopping.ListItem{Name: "Mozzarella", Amount: 450, Unit: "g"},
			shopping.ListItem{Name: "Basil", Amount: 1, Unit: "bunch", Notes: "fresh"},
			shopping.ListItem{Name: "Tomato sauce", Amount: 500, Unit: "ml", Checked: true},
		)

		// Act
		err := suite.lists.Create(context.Background(), list)
		require.NoError(suite.T(), err)
		found, err := suite.lists.FindByID(context.Background(), list.ID)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), list.ID, found.ID)
		assert.Equal(suite.T(), list.Name, found.Name)
		require.Len(suite.T(), found.Items, 3)
		assert.Equal(suite.T(), "Mozzarella", found.Items[0].Name)
		assert.Equal(suite.T(), "fresh", found.Items[1].Notes)
		assert.True(suite.T(), found.Items[2].Checked)
	})

	suite.Run("ItemOrder_SurvivesPersistence", func() {
		// Arrange
		names := []string{"Flour", "Eggs", "Milk", "Butter", "Sugar"}
		items := make([]shopping.ListItem, 0, len(names))
		for _, name := range names {
			items = append(items, shopping.ListItem{Name: name, Amount: 1, Unit: "piece"})
		}
		list := suite.newList(items...)

		// Act
		require.NoError(suite.T(), suite.lists.Create(context.Background(), list))
		found, err := suite.lists.FindByID(context.Background(), list.ID)

		// Assert
		require.NoError(suite.T(), err)
		require.Len(suite.T(), found.Items, len(names))
		for i, name := range names {
			assert.Equal(suite.T(), name, found.Items[i].Name)
		}
	})

	suite.Run("UnknownID_ReturnsListNotFound", func() {
		_, err := suite.lists.FindByID(context.Background(), uuid.New())

		assert.ErrorIs(suite.T(), err, shopping.ErrListNotFound)
	})
}

func (suite *ShoppingListRepositoryTestSuite) TestAddItem() {
	suite.Run("ExistingList_AppendsAfterSavedItems", func() {
		// Arrange
		list := suite.newList(shopping.ListItem{Name: "Olive oil", Amount: 2, Unit: "tbsp"})
		require.NoError(suite.T(), suite.lists.Create(context.Background(), list))

		// Act
		err := suite.lists.AddItem(context.Background(), list.ID, shopping.ListItem{Name: "Paper towels", Amount: 1, Unit: "pack"})

		// Assert
		require.NoError(suite.T(), err)
		found, err := suite.lists.FindByID(context.Background(), list.ID)
		require.NoError(suite.T(), err)
		require.Len(suite.T(), found.Items, 2)
		assert.Equal(suite.T(), "Paper towels", found.Items[1].Name)
	})

	suite.Run("UnknownList_ReturnsListNotFound", func() {
		err := suite.lists.AddItem(context.Background(), uuid.New(), shopping.ListItem{Name: "Anything", Amount: 1})

		assert.ErrorIs(suite.T(), err, shopping.ErrListNotFound)
	})
}

func (suite *ShoppingListRepositoryTestSuite) TestOrderRepository() {
	suite.Run("Create_PersistsOrderRecord", func() {
		// Arrange
		orders := gormRepo.NewOrderRepository(suite.db)
		items := []grocer.CartItem{
			{Product: grocer.VendorProduct{Name: gofakeit.ProductName(), PricePerUnit: 7.49}, Quantity: 2},
		}
		order := grocer.NewOrder("greenbasket", true, grocer.TierNormal, items, grocer.CartResult{
			CheckoutURL:    "https://www.greenbasket.example/checkout",
			EstimatedTotal: 14.98,
			Currency:       "USD",
		})

		// Act
		err := orders.Create(context.Background(), order)

		// Assert
		require.NoError(suite.T(), err)
		var model gormRepo.OrderModel
		require.NoError(suite.T(), suite.db.First(&model, "id = ?", order.ID).Error)
		restored := gormRepo.ModelToOrder(&model)
		assert.Equal(suite.T(), order.VendorID, restored.VendorID)
		assert.Equal(suite.T(), grocer.ArtifactCheckoutURL, restored.Artifact)
		assert.InDelta(suite.T(), 14.98, restored.EstimatedTotal, 1e-9)
	})
}

func TestShoppingListRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListRepositoryTestSuite))
}
