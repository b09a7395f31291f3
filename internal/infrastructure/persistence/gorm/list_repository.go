package gorm

import (
	"context"
	"errors"

	"github.com/forkful/v2/internal/domain/shopping"
	"github.com/forkful/v2/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListRepository implements the shopping list repository interface using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// Create persists a list together with its items
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	model := ListToModel(list)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// AddItem appends one item to an existing list
func (r *ShoppingListRepository) AddItem(ctx context.Context, listID uuid.UUID, item shopping.ListItem) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ShoppingListModel{}).
		Where("id = ?", listID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shopping.ErrListNotFound
	}

	var position int64
	if err := r.db.WithContext(ctx).Model(&ShoppingListItemModel{}).
		Where("list_id = ?", listID).
		Count(&position).Error; err != nil {
		return err
	}

	model := ShoppingListItemModel{
		ListID:   listID,
		Name:     item.Name,
		Amount:   item.Amount,
		Unit:     item.Unit,
		Notes:    item.Notes,
		Checked:  item.Checked,
		Position: int(position),
	}

	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID finds a list by ID with its items preloaded
func (r *ShoppingListRepository) FindByID(ctx context.Context, listID uuid.UUID) (*shopping.List, error) {
	var model ShoppingListModel

	result := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", listID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shopping.ErrListNotFound
		}
		return nil, result.Error
	}

	return ModelToList(&model), nil
}
