package crafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		required int
		owned    int
		want     domain.Reconciliation
		wantFill float64
	}{
		{"nothing required", 0, 0, domain.Reconciliation{Remaining: 0, Percent: 100}, 100},
		{"nothing owned", 10, 0, domain.Reconciliation{Remaining: 10, Percent: 0}, 0},
		{"partially owned", 10, 4, domain.Reconciliation{Remaining: 6, Percent: 40}, 40},
		{"surplus", 10, 15, domain.Reconciliation{Remaining: 0, Percent: 150}, 100},
		{"owned without requirement", 0, 5, domain.Reconciliation{Remaining: 0, Percent: 100}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.required, tt.owned)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFill, got.Fill())
		})
	}
}

func TestLedger_ClampsNegative(t *testing.T) {
	l := NewLedger(nil)

	stored := l.SetOwned(ingX, -3)

	assert.Equal(t, 0, stored)
	assert.Equal(t, 0, l.Owned(ingX))
}

func TestLedger_UnknownIsZero(t *testing.T) {
	l := NewLedger(map[int]int{ingY: -4})

	assert.Equal(t, 0, l.Owned(ingX))
	assert.Equal(t, 0, l.Owned(ingY))
}

func TestLedger_ResetAndSnapshot(t *testing.T) {
	l := NewLedger(map[int]int{ingX: 3})
	snap := l.Snapshot()
	snap[ingX] = 50

	assert.Equal(t, 3, l.Owned(ingX))

	l.Reset()
	assert.Empty(t, l.Snapshot())
}

func TestReconcileGrouped_SharesLedgerAcrossGroups(t *testing.T) {
	ledger := NewLedger(map[int]int{ingX: 5})

	groups := ReconcileGrouped(AggregateGrouped(sampleEntries()), ledger)

	require.Len(t, groups, 2)
	// X is counted against the full owned amount in both groups
	assert.Equal(t, 5, groups[0].Ingredients[0].Owned)
	assert.Equal(t, 0, groups[0].Ingredients[0].Remaining)
	assert.Equal(t, 5, groups[1].Ingredients[0].Owned)
	assert.Equal(t, 4, groups[1].Ingredients[0].Remaining)
}

func TestPlan_ClearResetsLedger(t *testing.T) {
	p := NewPlan(sampleEntries(), map[int]int{ingX: 3})

	p.Clear()

	assert.Equal(t, 0, p.Wishlist.Len())
	assert.Equal(t, 0, p.Ledger.Owned(ingX))
	assert.Empty(t, p.Flat())
}

func TestPlan_FlatJoinsLedger(t *testing.T) {
	p := NewPlan(sampleEntries(), map[int]int{ingY: 4})

	flat := p.Flat()

	require.Len(t, flat, 2)
	for _, ing := range flat {
		switch ing.ID {
		case ingX:
			assert.Equal(t, 11, ing.Remaining)
			assert.Equal(t, float64(0), ing.Percent)
		case ingY:
			assert.Equal(t, 0, ing.Remaining)
			assert.Equal(t, float64(100), ing.Percent)
		}
	}
}
