package crafting

import "github.com/osse101/CraftPlanner_Go/internal/domain"

// Plan is a crafting session: the wishlist plus the owned-ingredient ledger
type Plan struct {
	Wishlist *Wishlist
	Ledger   *Ledger
}

// NewPlan builds a plan from persisted data. Nil inputs yield empty collections.
func NewPlan(entries []domain.WishlistEntry, owned map[int]int) *Plan {
	return &Plan{
		Wishlist: NewWishlist(entries),
		Ledger:   NewLedger(owned),
	}
}

// Clear resets the session: the wishlist is emptied and every owned count is
// dropped, since owned counts are scoped to the current crafting session.
func (p *Plan) Clear() {
	p.Wishlist.Clear()
	p.Ledger.Reset()
}

// Flat returns the merged ingredient demand reconciled with the ledger
func (p *Plan) Flat() []domain.ReconciledIngredient {
	return ReconcileFlat(AggregateFlat(p.Wishlist.Entries()), p.Ledger)
}

// Grouped returns the per-item ingredient breakdown reconciled with the ledger
func (p *Plan) Grouped() []domain.ReconciledGroup {
	return ReconcileGrouped(AggregateGrouped(p.Wishlist.Entries()), p.Ledger)
}
