package crafting

import "github.com/osse101/CraftPlanner_Go/internal/domain"

// Reconcile compares a required quantity against what is owned.
// A zero requirement is always 100% complete.
func Reconcile(required, owned int) domain.Reconciliation {
	remaining := required - owned
	if remaining < 0 {
		remaining = 0
	}
	if required == 0 {
		return domain.Reconciliation{Remaining: remaining, Percent: 100}
	}
	return domain.Reconciliation{
		Remaining: remaining,
		Percent:   float64(owned) / float64(required) * 100,
	}
}

func reconcileIngredient(ing domain.AggregatedIngredient, ledger *Ledger) domain.ReconciledIngredient {
	owned := ledger.Owned(ing.ID)
	r := Reconcile(ing.Required, owned)
	return domain.ReconciledIngredient{
		AggregatedIngredient: ing,
		Owned:                owned,
		Remaining:            r.Remaining,
		Percent:              r.Percent,
		Fill:                 r.Fill(),
	}
}

// ReconcileFlat joins the flat aggregate with the ledger
func ReconcileFlat(ingredients []domain.AggregatedIngredient, ledger *Ledger) []domain.ReconciledIngredient {
	out := make([]domain.ReconciledIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, reconcileIngredient(ing, ledger))
	}
	return out
}

// ReconcileGrouped joins each group's rows with the ledger.
// The same ledger count is used for an ingredient in every group it appears in.
func ReconcileGrouped(groups []domain.IngredientGroup, ledger *Ledger) []domain.ReconciledGroup {
	out := make([]domain.ReconciledGroup, 0, len(groups))
	for _, g := range groups {
		rg := domain.ReconciledGroup{
			Item:     g.Item,
			Quantity: g.Quantity,
			NoRecipe: g.NoRecipe,
		}
		if !g.NoRecipe {
			rg.Ingredients = ReconcileFlat(g.Ingredients, ledger)
		}
		out = append(out, rg)
	}
	return out
}
