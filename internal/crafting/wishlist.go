package crafting

import "github.com/osse101/CraftPlanner_Go/internal/domain"

// Wishlist is the ordered list of items a user wants to craft.
// It holds at most one entry per item ID, in insertion order.
type Wishlist struct {
	entries []domain.WishlistEntry
}

// NewWishlist builds a wishlist from persisted entries.
// Entries with a non-positive quantity are dropped and duplicate IDs are folded
// into the first occurrence so the one-entry-per-item invariant holds.
func NewWishlist(entries []domain.WishlistEntry) *Wishlist {
	w := &Wishlist{entries: make([]domain.WishlistEntry, 0, len(entries))}
	for _, e := range entries {
		if e.Quantity <= 0 {
			continue
		}
		if i := w.index(e.Item.ID); i != -1 {
			w.entries[i].Quantity += e.Quantity
			continue
		}
		w.entries = append(w.entries, e)
	}
	return w
}

func (w *Wishlist) index(itemID int) int {
	for i, e := range w.entries {
		if e.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Add increments the entry for item, or appends a new entry with quantity 1
func (w *Wishlist) Add(item domain.Item) domain.WishlistEntry {
	if i := w.index(item.ID); i != -1 {
		w.entries[i].Quantity++
		return w.entries[i]
	}
	entry := domain.WishlistEntry{Item: item, Quantity: 1}
	w.entries = append(w.entries, entry)
	return entry
}

// SetQuantity replaces the desired quantity in place. A quantity of zero or
// less removes the entry. Returns false when the item is not in the list.
func (w *Wishlist) SetQuantity(itemID, quantity int) bool {
	if quantity <= 0 {
		return w.Remove(itemID)
	}
	i := w.index(itemID)
	if i == -1 {
		return false
	}
	w.entries[i].Quantity = quantity
	return true
}

// Remove deletes the entry for itemID. Removing an absent item is a no-op.
func (w *Wishlist) Remove(itemID int) bool {
	i := w.index(itemID)
	if i == -1 {
		return false
	}
	w.entries = append(w.entries[:i], w.entries[i+1:]...)
	return true
}

// Clear empties the wishlist
func (w *Wishlist) Clear() {
	w.entries = w.entries[:0]
}

// Get returns the entry for itemID
func (w *Wishlist) Get(itemID int) (domain.WishlistEntry, bool) {
	i := w.index(itemID)
	if i == -1 {
		return domain.WishlistEntry{}, false
	}
	return w.entries[i], true
}

// Len returns the number of entries
func (w *Wishlist) Len() int {
	return len(w.entries)
}

// Entries returns a copy of the entries in insertion order
func (w *Wishlist) Entries() []domain.WishlistEntry {
	out := make([]domain.WishlistEntry, len(w.entries))
	copy(out, w.entries)
	return out
}
