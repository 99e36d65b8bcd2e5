package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
)

// ProfileStore implements profile.Store on top of the profiles table
type ProfileStore struct {
	db *pgxpool.Pool
}

// NewProfileStore creates a new postgres-backed profile store
func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

// LoadPlan implements profile.Store
func (s *ProfileStore) LoadPlan(ctx context.Context, name string) (*profile.PlanState, error) {
	query := `
		SELECT crafting_list, owned_ingredients
		FROM profiles
		WHERE name = $1
	`
	var listJSON, ownedJSON []byte
	err := s.db.QueryRow(ctx, query, name).Scan(&listJSON, &ownedJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.NewPlanState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadPlan, err)
	}

	state := profile.NewPlanState()
	if err := json.Unmarshal(listJSON, &state.Wishlist); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToDecodeSection+": %w", ColumnCraftingList, err)
	}
	if err := json.Unmarshal(ownedJSON, &state.Owned); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToDecodeSection+": %w", ColumnOwnedIngredients, err)
	}
	if state.Wishlist == nil {
		state.Wishlist = []domain.WishlistEntry{}
	}
	if state.Owned == nil {
		state.Owned = map[int]int{}
	}
	return state, nil
}

// SavePlan implements profile.Store. Only existing profiles are updated.
func (s *ProfileStore) SavePlan(ctx context.Context, name string, plan *profile.PlanState) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	plan = plan.Clone()

	listJSON, err := json.Marshal(plan.Wishlist)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToEncodeSection+": %w", ColumnCraftingList, err)
	}
	ownedJSON, err := json.Marshal(plan.Owned)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToEncodeSection+": %w", ColumnOwnedIngredients, err)
	}

	query := `
		UPDATE profiles
		SET crafting_list = $2,
		    owned_ingredients = $3,
		    updated_at = NOW()
		WHERE name = $1
	`
	tag, err := s.db.Exec(ctx, query, name, listJSON, ownedJSON)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePlan, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", name, domain.ErrProfileNotFound)
	}
	return nil
}

// LoadSales implements profile.Store
func (s *ProfileStore) LoadSales(ctx context.Context, name string) ([]domain.SaleRecord, error) {
	query := `SELECT sales FROM profiles WHERE name = $1`

	var salesJSON []byte
	err := s.db.QueryRow(ctx, query, name).Scan(&salesJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.SaleRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSales, err)
	}

	sales := []domain.SaleRecord{}
	if err := json.Unmarshal(salesJSON, &sales); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToDecodeSection+": %w", ColumnSales, err)
	}
	if sales == nil {
		sales = []domain.SaleRecord{}
	}
	return sales, nil
}

// SaveSales implements profile.Store. Only existing profiles are updated.
func (s *ProfileStore) SaveSales(ctx context.Context, name string, sales []domain.SaleRecord) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	if sales == nil {
		sales = []domain.SaleRecord{}
	}

	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToEncodeSection+": %w", ColumnSales, err)
	}

	query := `
		UPDATE profiles
		SET sales = $2,
		    updated_at = NOW()
		WHERE name = $1
	`
	tag, err := s.db.Exec(ctx, query, name, salesJSON)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSales, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", name, domain.ErrProfileNotFound)
	}
	return nil
}

// Create implements profile.Store
func (s *ProfileStore) Create(ctx context.Context, name string) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	query := `INSERT INTO profiles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	if _, err := s.db.Exec(ctx, query, name); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateProfile, err)
	}
	return nil
}

// List implements profile.Store
func (s *ProfileStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM profiles ORDER BY profile_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}
	return names, nil
}

// Delete implements profile.Store
func (s *ProfileStore) Delete(ctx context.Context, name string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM profiles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProfile, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", name, domain.ErrProfileNotFound)
	}
	return nil
}
