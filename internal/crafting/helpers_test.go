package crafting

import "github.com/osse101/CraftPlanner_Go/internal/domain"

// Item fixtures shared by the crafting tests
const (
	itemA  = 100
	itemB  = 200
	itemC  = 300
	ingX   = 1
	ingY   = 2
	ingZ   = 3
	ringID = 400
)

func ingredient(id int, name string, qty int) domain.RecipeIngredient {
	return domain.RecipeIngredient{
		Quantity: qty,
		Item:     domain.IngredientRef{ID: id, Name: name},
	}
}

func craftable(id int, name string, recipe ...domain.RecipeIngredient) domain.Item {
	if recipe == nil {
		recipe = []domain.RecipeIngredient{}
	}
	return domain.Item{ID: id, Name: name, Recipe: recipe}
}

func resource(id int, name string) domain.Item {
	return domain.Item{ID: id, Name: name}
}

// A needs 1×X and 2×Y, B needs 3×X
func sampleEntries() []domain.WishlistEntry {
	a := craftable(itemA, "Amulette", ingredient(ingX, "Xylite", 1), ingredient(ingY, "Yeux", 2))
	b := craftable(itemB, "Bottes", ingredient(ingX, "Xylite", 3))
	return []domain.WishlistEntry{
		{Item: a, Quantity: 2},
		{Item: b, Quantity: 3},
	}
}
