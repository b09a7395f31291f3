package gorm

import (
	"context"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/ports/outbound"
	"gorm.io/gorm"
)

// OrderRepository implements the order record repository interface using GORM
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) outbound.OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a best-effort order record
func (r *OrderRepository) Create(ctx context.Context, order *grocer.Order) error {
	model := OrderToModel(order)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
