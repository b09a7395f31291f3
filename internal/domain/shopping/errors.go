package shopping

import "errors"

// Domain errors for shopping list operations

var (
	ErrEmptyIngredientName = errors.New("ingredient line must have a name")
	ErrEmptyListName       = errors.New("shopping list name must not be empty")
	ErrListNotFound        = errors.New("shopping list not found")
)
