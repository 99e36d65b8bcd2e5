package domain

import "fmt"

// IngredientRef is the display snapshot of an ingredient inside a recipe
type IngredientRef struct {
	ID       int    `json:"ankama_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_urls"`
}

// RecipeIngredient is a single (ingredient, quantity-per-craft) pair
type RecipeIngredient struct {
	Quantity int           `json:"quantity"`
	Item     IngredientRef `json:"item"`
}

// PlaceholderIngredient returns the record substituted for an ingredient whose
// details could not be resolved. The identifier is preserved so quantity math still works.
func PlaceholderIngredient(id int) IngredientRef {
	return IngredientRef{
		ID:   id,
		Name: fmt.Sprintf(PlaceholderIngredientNameFmt, id),
	}
}

// WishlistEntry is an item the user wants to craft and how many times
type WishlistEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// AggregatedIngredient is the total demand for one ingredient.
// It is recomputed on every query and never persisted.
type AggregatedIngredient struct {
	ID       int    `json:"ankama_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_urls"`
	Required int    `json:"required"`
}

// IngredientGroup is the per-item breakdown used by the grouped view.
// NoRecipe distinguishes a recipe-less item from one whose ingredient list is empty.
type IngredientGroup struct {
	Item        Item                   `json:"item"`
	Quantity    int                    `json:"quantity"`
	NoRecipe    bool                   `json:"no_recipe"`
	Ingredients []AggregatedIngredient `json:"ingredients"`
}

// Reconciliation compares required against owned quantity.
// Percent may exceed 100 when the user owns more than needed.
type Reconciliation struct {
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// Fill returns Percent clamped to 100 for progress rendering
func (r Reconciliation) Fill() float64 {
	if r.Percent > 100 {
		return 100
	}
	return r.Percent
}

// ReconciledIngredient is an aggregated ingredient joined with the ownership ledger
type ReconciledIngredient struct {
	AggregatedIngredient
	Owned     int     `json:"owned"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
	Fill      float64 `json:"fill"`
}

// ReconciledGroup is an IngredientGroup whose rows carry reconciliation data
type ReconciledGroup struct {
	Item        Item                   `json:"item"`
	Quantity    int                    `json:"quantity"`
	NoRecipe    bool                   `json:"no_recipe"`
	Ingredients []ReconciledIngredient `json:"ingredients"`
}
