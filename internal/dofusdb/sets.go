package dofusdb

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// GetSet returns a set with its bonuses sorted by number of equipped pieces
// and its member items resolved. A member that cannot be resolved is replaced
// by a placeholder so the rest of the set is still shown.
func (c *Client) GetSet(ctx context.Context, id int) (*domain.ItemSet, error) {
	var raw rawSet
	if err := c.getJSON(ctx, CategorySets, fmt.Sprintf("sets/%d", id), nil, &raw); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf(ErrMsgSetLookupFmt, id, domain.ErrSetNotFound)
		}
		return nil, fmt.Errorf(ErrMsgSetLookupFmt, id, err)
	}

	set := &domain.ItemSet{
		ID:      raw.AnkamaID,
		Name:    raw.Name,
		Level:   raw.Level,
		Bonuses: setBonuses(raw.Effects),
		Items:   make([]domain.Item, len(raw.EquipmentIDs)),
	}

	g := new(errgroup.Group)
	g.SetLimit(c.cfg.MaxConcurrency)
	for i, itemID := range raw.EquipmentIDs {
		g.Go(func() error {
			item, err := c.GetItem(ctx, itemID)
			if err != nil {
				logger.FromContext(ctx).Warn(LogMsgSetItemDegraded, "setID", id, "itemID", itemID, "error", err)
				set.Items[i] = domain.Item{ID: itemID, Name: fmt.Sprintf(domain.PlaceholderItemNameFmt, itemID)}
				return nil
			}
			set.Items[i] = *item
			return nil
		})
	}
	_ = g.Wait()

	return set, nil
}

// setBonuses turns the API's map of piece count to effects into a sorted list.
// Null entries and non-numeric keys are skipped.
func setBonuses(effects map[string][]rawEffect) []domain.SetBonus {
	bonuses := make([]domain.SetBonus, 0, len(effects))
	for key, list := range effects {
		if list == nil {
			continue
		}
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		bonuses = append(bonuses, domain.SetBonus{NumItems: n, Effects: toEffects(list)})
	}
	slices.SortFunc(bonuses, func(a, b domain.SetBonus) int {
		return a.NumItems - b.NumItems
	})
	return bonuses
}
