package profile

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// MaxNameLength bounds profile names
const MaxNameLength = 50

// PlanState is the persisted crafting session of a profile: the ordered
// wishlist and the owned-ingredient ledger keyed by ingredient ID.
type PlanState struct {
	Wishlist []domain.WishlistEntry `json:"crafting_list"`
	Owned    map[int]int            `json:"owned_ingredients"`
}

// NewPlanState returns an empty plan with non-nil collections
func NewPlanState() *PlanState {
	return &PlanState{
		Wishlist: []domain.WishlistEntry{},
		Owned:    map[int]int{},
	}
}

// Clone returns a copy whose slices and maps are not shared with s
func (s *PlanState) Clone() *PlanState {
	out := NewPlanState()
	if s == nil {
		return out
	}
	out.Wishlist = append(out.Wishlist, s.Wishlist...)
	for id, count := range s.Owned {
		out.Owned[id] = count
	}
	return out
}

// Store persists per-profile data. Each section is written independently and
// the last write wins. Loading a section that was never saved yields an empty
// collection, not an error. Saving never creates a profile: saving to a
// profile that does not exist returns domain.ErrProfileNotFound.
type Store interface {
	LoadPlan(ctx context.Context, name string) (*PlanState, error)
	SavePlan(ctx context.Context, name string, plan *PlanState) error

	LoadSales(ctx context.Context, name string) ([]domain.SaleRecord, error)
	SaveSales(ctx context.Context, name string, sales []domain.SaleRecord) error

	// Create registers an empty profile; creating an existing profile is a no-op
	Create(ctx context.Context, name string) error
	// List returns profile names in creation order
	List(ctx context.Context) ([]string, error)
	// Delete removes the profile and all of its data
	Delete(ctx context.Context, name string) error
}

// ValidateName checks that a profile name is usable as a storage key
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("profile name cannot be empty: %w", domain.ErrInvalidProfile)
	}
	if trimmed != name {
		return fmt.Errorf("profile name cannot start or end with spaces: %w", domain.ErrInvalidProfile)
	}
	if len([]rune(name)) > MaxNameLength {
		return fmt.Errorf("profile name longer than %d characters: %w", MaxNameLength, domain.ErrInvalidProfile)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("profile name contains control characters: %w", domain.ErrInvalidProfile)
		}
	}
	return nil
}
