package shopping

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// List is a persisted shopping list. Aggregation output becomes a List only
// when the user chooses to keep it; until then items live purely in memory.
type List struct {
	ID        uuid.UUID
	Name      string
	Items     []ListItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListItem is one saved line of a persisted list.
type ListItem struct {
	Name    string
	Amount  float64
	Unit    string
	Notes   string
	Checked bool
}

// NewList creates a named, empty shopping list.
func NewList(name string) (*List, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyListName
	}

	now := time.Now()
	return &List{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddItem appends an item to the list.
func (l *List) AddItem(item ListItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrEmptyIngredientName
	}
	l.Items = append(l.Items, item)
	l.UpdatedAt = time.Now()
	return nil
}

// FromAggregated converts an aggregated entry into a persistable list item.
func FromAggregated(item AggregatedItem) ListItem {
	return ListItem{
		Name:    item.Name,
		Amount:  item.TotalQuantity,
		Unit:    item.Unit,
		Notes:   item.Note,
		Checked: item.Checked,
	}
}
