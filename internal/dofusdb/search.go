package dofusdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// searchCategories are queried in parallel; results keep this order
var searchCategories = []string{CategoryEquipment, CategoryResources, CategoryConsumables, CategoryMounts}

func searchPath(category string) string {
	if category == CategoryMounts {
		return "mounts/search"
	}
	return "items/" + category + "/search"
}

// SearchItems searches every item category and mounts by name.
// A failing category is skipped; results are de-duplicated by id keeping the
// first occurrence. Returns an error only when every category failed.
func (c *Client) SearchItems(ctx context.Context, name string) ([]domain.SearchResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.SearchResult{}, nil
	}
	log := logger.FromContext(ctx)
	query := url.Values{"query": []string{name}}

	perCategory := make([][]rawItem, len(searchCategories))
	errs := make([]error, len(searchCategories))
	g := new(errgroup.Group)
	g.SetLimit(c.cfg.MaxConcurrency)
	for i, category := range searchCategories {
		g.Go(func() error {
			var raw []rawItem
			err := c.getJSON(ctx, category, searchPath(category), query, &raw)
			switch {
			case err == nil:
				perCategory[i] = raw
			case errors.Is(err, errNotFound):
				// The API answers 404 when nothing matches
			default:
				log.Warn(LogMsgSearchCategoryError, "category", category, "query", name, "error", err)
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	var lastErr error
	for _, err := range errs {
		if err != nil {
			failed++
			lastErr = err
		}
	}
	if failed == len(searchCategories) {
		return nil, fmt.Errorf(ErrMsgSearchFailedFmt, name, lastErr)
	}

	seen := make(map[int]struct{})
	results := make([]domain.SearchResult, 0)
	for _, raws := range perCategory {
		for i := range raws {
			raw := &raws[i]
			if _, dup := seen[raw.AnkamaID]; dup {
				continue
			}
			seen[raw.AnkamaID] = struct{}{}
			results = append(results, domain.SearchResult{
				ID:       raw.AnkamaID,
				Name:     raw.Name,
				Level:    raw.Level,
				Type:     raw.typeName(),
				ImageURL: string(raw.ImageURLs),
			})
		}
	}
	return results, nil
}

// SearchSets searches equipment sets by name
func (c *Client) SearchSets(ctx context.Context, name string) ([]domain.SetSearchResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.SetSearchResult{}, nil
	}

	var raws []rawSetSearchResult
	err := c.getJSON(ctx, CategorySets, "sets/search", url.Values{"query": []string{name}}, &raws)
	if errors.Is(err, errNotFound) {
		return []domain.SetSearchResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	results := make([]domain.SetSearchResult, 0, len(raws))
	for _, raw := range raws {
		results = append(results, domain.SetSearchResult{
			ID:         raw.AnkamaID,
			Name:       raw.Name,
			Level:      raw.Level,
			ItemsCount: raw.Items,
		})
	}
	return results, nil
}
