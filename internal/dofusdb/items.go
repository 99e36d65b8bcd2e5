package dofusdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/metrics"
)

// itemCategories are tried in order; mounts live under their own path
var itemCategories = []string{CategoryEquipment, CategoryConsumables, CategoryResources, CategoryMounts}

func categoryPath(category string, id int) string {
	if category == CategoryMounts {
		return fmt.Sprintf("mounts/%d", id)
	}
	return fmt.Sprintf("items/%s/%d", category, id)
}

// ingredientCategory maps a recipe subtype to the category to fetch it from.
// Everything that is not a resource or consumable is looked up as equipment.
func ingredientCategory(subtype string) string {
	switch subtype {
	case CategoryResources, CategoryConsumables:
		return subtype
	default:
		return CategoryEquipment
	}
}

// GetItem returns the item with its recipe hydrated. Categories are tried in
// order equipment, consumables, resources, mounts.
// Returns domain.ErrItemNotFound when no category knows the id and
// domain.ErrResolutionFailed when a category could not be queried.
func (c *Client) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	if item, ok := c.items.Get(id); ok {
		metrics.ResolverCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "itemID", id)
		return item, nil
	}
	metrics.ResolverCacheMisses.Inc()

	// Categories are tried one after another, then ingredients in one concurrent round
	v, err := c.shared(ctx, "item:"+strconv.Itoa(id), len(itemCategories)+1, func(ctx context.Context) (interface{}, error) {
		return c.fetchItem(ctx, id)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf(ErrMsgItemLookupFmt, id, err)
		}
		return nil, err
	}
	return v.(*domain.Item), nil
}

func (c *Client) fetchItem(ctx context.Context, id int) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	query := url.Values{"fields": []string{itemFields}}

	var lastErr error
	for _, category := range itemCategories {
		var raw rawItem
		err := c.getJSON(ctx, category, categoryPath(category, id), query, &raw)
		if err == nil {
			item, degraded := c.hydrate(ctx, &raw)
			if !degraded {
				c.items.Set(id, item)
			}
			return item, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf(ErrMsgItemLookupFmt, id, ctx.Err())
		}
		if errors.Is(err, errNotFound) {
			log.Debug(LogMsgCategoryMiss, "itemID", id, "category", category)
			continue
		}
		log.Warn(LogMsgCategoryError, "itemID", id, "category", category, "error", err)
		lastErr = err
	}

	if lastErr != nil {
		return nil, fmt.Errorf(ErrMsgItemLookupFmt, id, lastErr)
	}
	return nil, fmt.Errorf(ErrMsgItemLookupFmt, id, domain.ErrItemNotFound)
}

// hydration is the outcome of resolving one recipe ingredient
type hydration struct {
	quantity int
	ref      domain.IngredientRef
	err      error
}

// hydrate converts a raw item and resolves every recipe ingredient concurrently.
// Failed ingredients are replaced by placeholders; degraded reports whether any were.
func (c *Client) hydrate(ctx context.Context, raw *rawItem) (*domain.Item, bool) {
	item := &domain.Item{
		ID:          raw.AnkamaID,
		Name:        raw.Name,
		Level:       raw.Level,
		Type:        raw.typeName(),
		Description: raw.Description,
		ImageURL:    string(raw.ImageURLs),
		Effects:     toEffects(raw.Effects),
	}
	if raw.Price != nil && raw.Price.Average > 0 {
		item.Price = raw.Price
	}
	if len(raw.Drops) > 0 {
		item.Drops = raw.Drops
	}
	if len(raw.Recipe) == 0 {
		return item, false
	}

	results := make([]hydration, len(raw.Recipe))
	g := new(errgroup.Group)
	g.SetLimit(c.cfg.MaxConcurrency)
	for i, ing := range raw.Recipe {
		g.Go(func() error {
			ref, err := c.getIngredient(ctx, ing.ItemID, ingredientCategory(ing.ItemSubtype))
			results[i] = hydration{quantity: ing.Quantity, ref: ref, err: err}
			return nil
		})
	}
	_ = g.Wait()

	degraded := false
	item.Recipe = make([]domain.RecipeIngredient, 0, len(results))
	for i, r := range results {
		ref := r.ref
		if r.err != nil {
			degraded = true
			metrics.DegradedIngredients.Inc()
			logger.FromContext(ctx).Warn(LogMsgIngredientDegraded,
				"itemID", item.ID, "ingredientID", raw.Recipe[i].ItemID, "error", r.err)
			ref = domain.PlaceholderIngredient(raw.Recipe[i].ItemID)
		}
		item.Recipe = append(item.Recipe, domain.RecipeIngredient{Quantity: r.quantity, Item: ref})
	}
	return item, degraded
}

// getIngredient fetches the display snapshot of a recipe ingredient
func (c *Client) getIngredient(ctx context.Context, id int, category string) (domain.IngredientRef, error) {
	if ref, ok := c.ingredients.Get(id); ok {
		metrics.ResolverCacheHits.Inc()
		return ref, nil
	}
	metrics.ResolverCacheMisses.Inc()

	v, err := c.shared(ctx, "ingredient:"+strconv.Itoa(id), 1, func(ctx context.Context) (interface{}, error) {
		var raw rawItem
		if err := c.getJSON(ctx, category, categoryPath(category, id), nil, &raw); err != nil {
			if errors.Is(err, errNotFound) {
				return domain.IngredientRef{}, fmt.Errorf(ErrMsgItemLookupFmt, id, domain.ErrItemNotFound)
			}
			return domain.IngredientRef{}, err
		}
		ref := domain.IngredientRef{
			ID:       id,
			Name:     raw.Name,
			ImageURL: string(raw.ImageURLs),
		}
		c.ingredients.Set(id, ref)
		return ref, nil
	})
	if err != nil {
		return domain.IngredientRef{}, err
	}
	return v.(domain.IngredientRef), nil
}
