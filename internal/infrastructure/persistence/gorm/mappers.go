package gorm

import (
	"sort"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/domain/shopping"
)

// ListToModel converts a domain shopping list to its GORM model
func ListToModel(list *shopping.List) *ShoppingListModel {
	model := &ShoppingListModel{
		ID:        list.ID,
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}

	for i, item := range list.Items {
		model.Items = append(model.Items, ShoppingListItemModel{
			ListID:   list.ID,
			Name:     item.Name,
			Amount:   item.Amount,
			Unit:     item.Unit,
			Notes:    item.Notes,
			Checked:  item.Checked,
			Position: i,
		})
	}

	return model
}

// ModelToList converts a GORM model back to a domain shopping list. Items
// are returned in their saved order.
func ModelToList(model *ShoppingListModel) *shopping.List {
	list := &shopping.List{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	items := make([]ShoppingListItemModel, len(model.Items))
	copy(items, model.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	for _, item := range items {
		list.Items = append(list.Items, shopping.ListItem{
			Name:    item.Name,
			Amount:  item.Amount,
			Unit:    item.Unit,
			Notes:   item.Notes,
			Checked: item.Checked,
		})
	}

	return list
}

// OrderToModel converts a domain order record to its GORM model
func OrderToModel(order *grocer.Order) *OrderModel {
	return &OrderModel{
		ID:             order.ID,
		VendorID:       order.VendorID,
		Tier:           string(order.Tier),
		ItemCount:      order.ItemCount,
		EstimatedTotal: order.EstimatedTotal,
		Currency:       order.Currency,
		Artifact:       string(order.Artifact),
		CreatedAt:      order.CreatedAt,
	}
}

// ModelToOrder converts a GORM model back to a domain order record
func ModelToOrder(model *OrderModel) *grocer.Order {
	return &grocer.Order{
		ID:             model.ID,
		VendorID:       model.VendorID,
		Tier:           grocer.BudgetTier(model.Tier),
		ItemCount:      model.ItemCount,
		EstimatedTotal: model.EstimatedTotal,
		Currency:       model.Currency,
		Artifact:       grocer.ArtifactKind(model.Artifact),
		CreatedAt:      model.CreatedAt,
	}
}
