package shopping

import (
	"sort"
	"strings"
)

// ItemKey identifies an aggregated entry. Two ingredient lines merge iff
// their normalized names and units match exactly; the same ingredient in a
// different unit stays a separate entry (no unit conversion is attempted).
type ItemKey struct {
	Name string
	Unit string
}

// AggregatedItem is a deduplicated, quantity-summed shopping list entry.
// Items are recomputed from the plan snapshot on every aggregation and carry
// no identity across calls; Checked is operator state the caller carries
// over explicitly when it wants to preserve it.
type AggregatedItem struct {
	Key           ItemKey  `json:"key"`
	Name          string   `json:"name"`
	TotalQuantity float64  `json:"totalQuantity"`
	Unit          string   `json:"unit"`
	Category      string   `json:"category"`
	SourceRecipes []string `json:"sourceRecipes"`
	SourceSlots   []string `json:"sourceSlots"`
	Checked       bool     `json:"checked"`
	Note          string   `json:"note"`
}

// NormalizeKey builds the merge key for an ingredient name and unit.
func NormalizeKey(name, unit string) ItemKey {
	return ItemKey{
		Name: strings.ToLower(strings.TrimSpace(name)),
		Unit: strings.TrimSpace(unit),
	}
}

type accumulatedItem struct {
	item    AggregatedItem
	recipes map[string]struct{}
	slots   map[string]struct{}
}

// Accumulator folds scaled ingredient lines into aggregated entries.
// Folding is commutative and associative (addition plus set union), so the
// result is independent of dish visitation order.
type Accumulator struct {
	items map[ItemKey]*accumulatedItem
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{items: make(map[ItemKey]*accumulatedItem)}
}

// Fold adds one ingredient line, scaled by the dish's servings multiplier,
// under the given recipe title and slot label.
func (a *Accumulator) Fold(line IngredientLine, multiplier float64, recipeTitle, slot string) {
	if err := line.Validate(); err != nil {
		return
	}

	key := NormalizeKey(line.Name, line.Unit)
	acc, ok := a.items[key]
	if !ok {
		acc = &accumulatedItem{
			item: AggregatedItem{
				Key:      key,
				Name:     line.Name,
				Unit:     line.Unit,
				Category: line.Category,
				Note:     line.Note,
			},
			recipes: make(map[string]struct{}),
			slots:   make(map[string]struct{}),
		}
		a.items[key] = acc
	}

	acc.item.TotalQuantity += line.Quantity * multiplier
	if acc.item.Note == "" {
		acc.item.Note = line.Note
	}
	if recipeTitle != "" {
		acc.recipes[recipeTitle] = struct{}{}
	}
	if slot != "" {
		acc.slots[slot] = struct{}{}
	}
}

// FoldPlaceholder records a dish whose recipe has no ingredient source as a
// single generic line, so one unresolvable recipe never sinks the whole
// aggregation.
func (a *Accumulator) FoldPlaceholder(dish PlannedDish, slot string) {
	a.Fold(IngredientLine{
		Name:     dish.Title,
		Quantity: dish.ServingsMultiplier,
		Unit:     "serving",
		Category: CategoryOther,
		Note:     "ingredients unavailable",
	}, 1, dish.Title, slot)
}

// Items returns the accumulated entries sorted by (category, name) with
// source sets sorted for deterministic presentation.
func (a *Accumulator) Items() []AggregatedItem {
	out := make([]AggregatedItem, 0, len(a.items))
	for _, acc := range a.items {
		item := acc.item
		item.SourceRecipes = sortedSet(acc.recipes)
		item.SourceSlots = sortedSet(acc.slots)
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Key.Name < out[j].Key.Name
	})

	return out
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
