package sales

import (
	"slices"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// Merge combines existing and incoming records. Records sharing an order number
// are de-duplicated with the incoming record winning, and the result is sorted
// by order number.
func Merge(existing, incoming []domain.SaleRecord) []domain.SaleRecord {
	byOrder := make(map[int]domain.SaleRecord, len(existing)+len(incoming))
	for _, r := range existing {
		byOrder[r.Order] = r
	}
	for _, r := range incoming {
		byOrder[r.Order] = r
	}

	merged := make([]domain.SaleRecord, 0, len(byOrder))
	for _, r := range byOrder {
		merged = append(merged, r)
	}
	slices.SortFunc(merged, func(a, b domain.SaleRecord) int {
		return a.Order - b.Order
	})
	return merged
}
