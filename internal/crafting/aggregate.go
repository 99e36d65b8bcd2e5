package crafting

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// AggregateFlat merges the ingredient demand of every wishlist entry by
// ingredient ID and returns it sorted by display name in DefaultLanguage.
// Items without a recipe contribute nothing.
func AggregateFlat(entries []domain.WishlistEntry) []domain.AggregatedIngredient {
	return AggregateFlatIn(DefaultLanguage, entries)
}

// AggregateFlatIn is AggregateFlat with an explicit collation locale
func AggregateFlatIn(tag language.Tag, entries []domain.WishlistEntry) []domain.AggregatedIngredient {
	byID := make(map[int]int)
	merged := make([]domain.AggregatedIngredient, 0)

	for _, entry := range entries {
		for _, ing := range entry.Item.Recipe {
			required := ing.Quantity * entry.Quantity
			if i, ok := byID[ing.Item.ID]; ok {
				merged[i].Required += required
				continue
			}
			byID[ing.Item.ID] = len(merged)
			merged = append(merged, domain.AggregatedIngredient{
				ID:       ing.Item.ID,
				Name:     ing.Item.Name,
				ImageURL: ing.Item.ImageURL,
				Required: required,
			})
		}
	}

	// Collators keep internal buffers, so each call gets its own
	c := collate.New(tag)
	slices.SortStableFunc(merged, func(a, b domain.AggregatedIngredient) int {
		if r := c.CompareString(a.Name, b.Name); r != 0 {
			return r
		}
		return a.ID - b.ID
	})
	return merged
}

// AggregateGrouped returns one group per wishlist entry, in wishlist order.
// Ingredients are scaled by the entry quantity and never merged across groups.
func AggregateGrouped(entries []domain.WishlistEntry) []domain.IngredientGroup {
	groups := make([]domain.IngredientGroup, 0, len(entries))
	for _, entry := range entries {
		group := domain.IngredientGroup{
			Item:     entry.Item,
			Quantity: entry.Quantity,
		}
		if !entry.Item.HasRecipe() {
			group.NoRecipe = true
			groups = append(groups, group)
			continue
		}

		group.Ingredients = make([]domain.AggregatedIngredient, 0, len(entry.Item.Recipe))
		for _, ing := range entry.Item.Recipe {
			group.Ingredients = append(group.Ingredients, domain.AggregatedIngredient{
				ID:       ing.Item.ID,
				Name:     ing.Item.Name,
				ImageURL: ing.Item.ImageURL,
				Required: ing.Quantity * entry.Quantity,
			})
		}
		groups = append(groups, group)
	}
	return groups
}
