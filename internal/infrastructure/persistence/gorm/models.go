// Package gorm provides GORM model definitions and repositories for the
// persisted shopping artifacts: saved lists and order records.
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListModel represents the GORM model for saved shopping lists
type ShoppingListModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	// Relationships
	Items []ShoppingListItemModel `gorm:"foreignKey:ListID"`
}

// ShoppingListItemModel represents one saved line of a shopping list
type ShoppingListItemModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	ListID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Amount   float64   `gorm:"default:0"`
	Unit     string    `gorm:"type:varchar(50)"`
	Notes    string    `gorm:"type:text"`
	Checked  bool      `gorm:"default:false"`
	Position int       `gorm:"default:0"`

	// Relationships
	List ShoppingListModel `gorm:"foreignKey:ListID"`
}

// OrderModel represents the GORM model for dispatched checkout records
type OrderModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	VendorID       string    `gorm:"type:varchar(100);index"`
	Tier           string    `gorm:"type:varchar(20);not null"`
	ItemCount      int       `gorm:"default:0"`
	EstimatedTotal float64   `gorm:"default:0"`
	Currency       string    `gorm:"type:varchar(10)"`
	Artifact       string    `gorm:"type:varchar(30);not null"`
	CreatedAt      time.Time `gorm:"index"`
}

// BeforeCreate hook for ShoppingListModel
func (l *ShoppingListModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ShoppingListItemModel
func (i *ShoppingListItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for OrderModel
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

func (ShoppingListItemModel) TableName() string {
	return "shopping_list_items"
}

func (OrderModel) TableName() string {
	return "orders"
}
