package crafting

// Ledger records how many of each ingredient the user already owns.
// Entries outlive wishlist membership; only Reset removes them.
type Ledger struct {
	owned map[int]int
}

// NewLedger builds a ledger from persisted counts, flooring negatives at zero
func NewLedger(owned map[int]int) *Ledger {
	l := &Ledger{owned: make(map[int]int, len(owned))}
	for id, count := range owned {
		l.SetOwned(id, count)
	}
	return l
}

// SetOwned stores max(0, count) for the ingredient, overwriting any prior value
func (l *Ledger) SetOwned(ingredientID, count int) int {
	if count < 0 {
		count = 0
	}
	l.owned[ingredientID] = count
	return count
}

// Owned returns the stored count, or 0 when the ingredient was never set
func (l *Ledger) Owned(ingredientID int) int {
	return l.owned[ingredientID]
}

// Reset removes every entry
func (l *Ledger) Reset() {
	l.owned = make(map[int]int)
}

// Snapshot returns a copy of the counts
func (l *Ledger) Snapshot() map[int]int {
	out := make(map[int]int, len(l.owned))
	for id, count := range l.owned {
		out[id] = count
	}
	return out
}
