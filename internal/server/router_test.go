package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/concurrency"
	"github.com/osse101/CraftPlanner_Go/internal/crafting"
	"github.com/osse101/CraftPlanner_Go/internal/dofusdb"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
	"github.com/osse101/CraftPlanner_Go/internal/sales"
	"github.com/osse101/CraftPlanner_Go/internal/worker"
)

// staticCatalog serves a fixed set of items and satisfies both the crafting
// resolver and the HTTP item catalog
type staticCatalog struct {
	items map[int]*domain.Item
}

func (c *staticCatalog) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	if item, ok := c.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

func (c *staticCatalog) SearchItems(ctx context.Context, name string) ([]domain.SearchResult, error) {
	var out []domain.SearchResult
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(name)) {
			out = append(out, domain.SearchResult{ID: item.ID, Name: item.Name})
		}
	}
	return out, nil
}

func (c *staticCatalog) GetSet(ctx context.Context, id int) (*domain.ItemSet, error) {
	return nil, domain.ErrSetNotFound
}

func (c *staticCatalog) SearchSets(ctx context.Context, name string) ([]domain.SetSearchResult, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog := &staticCatalog{items: map[int]*domain.Item{
		44: {
			ID:   44,
			Name: "Coiffe du Bouftou",
			Recipe: []domain.RecipeIngredient{
				{Quantity: 5, Item: domain.IngredientRef{ID: 1, Name: "Laine de Bouftou"}},
				{Quantity: 1, Item: domain.IngredientRef{ID: 2, Name: "Cuir de Bouftou"}},
			},
		},
	}}

	store := profile.NewMemoryStore()
	locks := concurrency.NewLockManager()
	pool := worker.NewPool(1, 16)
	pool.Start()
	craftSvc := crafting.NewService(store, catalog, pool, locks)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = craftSvc.Shutdown(ctx)
	})

	return NewRouter(Options{}, Services{
		Store:    store,
		Crafting: craftSvc,
		Sales:    sales.NewService(store, nil, locks),
		Catalog:  catalog,
	})
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CraftingFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, "POST", "/api/v1/profiles", `{"name":"alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, "POST", "/api/v1/profiles/alice/wishlist", `{"item_id":44}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, "PUT", "/api/v1/profiles/alice/wishlist/44?quantity=2", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, "PUT", "/api/v1/profiles/alice/owned/1?count=4", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, "GET", "/api/v1/profiles/alice/ingredients", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var flat struct {
		View        string `json:"view"`
		Ingredients []struct {
			ID        int     `json:"ankama_id"`
			Name      string  `json:"name"`
			Required  int     `json:"required"`
			Owned     int     `json:"owned"`
			Remaining int     `json:"remaining"`
			Percent   float64 `json:"percent"`
		} `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &flat))
	assert.Equal(t, "flat", flat.View)
	require.Len(t, flat.Ingredients, 2)
	// French collation: Cuir before Laine
	assert.Equal(t, "Cuir de Bouftou", flat.Ingredients[0].Name)
	assert.Equal(t, 2, flat.Ingredients[0].Required)
	assert.Equal(t, "Laine de Bouftou", flat.Ingredients[1].Name)
	assert.Equal(t, 10, flat.Ingredients[1].Required)
	assert.Equal(t, 4, flat.Ingredients[1].Owned)
	assert.Equal(t, 6, flat.Ingredients[1].Remaining)
	assert.InDelta(t, 40.0, flat.Ingredients[1].Percent, 0.001)

	rec = do(t, h, "GET", "/api/v1/profiles/alice/ingredients?view=grouped", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"groups":[{"item":{"ankama_id":44`)

	rec = do(t, h, "DELETE", "/api/v1/profiles/alice/wishlist", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, "GET", "/api/v1/profiles/alice/wishlist", "")
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())

	rec = do(t, h, "GET", "/api/v1/profiles/alice/owned/1", "")
	assert.JSONEq(t, `{"ingredient_id":1,"owned":0}`, rec.Body.String())
}

func TestRouter_ErrorsAndLookups(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, "POST", "/api/v1/profiles/alice/wishlist", `{"item_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "PUT", "/api/v1/profiles/alice/wishlist/44?quantity=3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "GET", "/api/v1/items/search?q=bouftou", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coiffe du Bouftou")

	rec = do(t, h, "GET", "/api/v1/items/44", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, "GET", "/api/v1/sets/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "GET", "/api/v1/profiles/alice/ingredients?view=tree", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "DELETE", "/api/v1/profiles/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DeletedProfileStaysDeleted(t *testing.T) {
	h := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(t, h, "POST", "/api/v1/profiles", `{"name":"alice"}`).Code)
	require.Equal(t, http.StatusOK, do(t, h, "PUT", "/api/v1/profiles/alice/owned/1?count=5", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, "DELETE", "/api/v1/profiles/alice", "").Code)

	// Writes to a missing profile never register it
	require.Equal(t, http.StatusOK, do(t, h, "PUT", "/api/v1/profiles/ghost/owned/1?count=2", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, "POST", "/api/v1/profiles/ghost/sales",
		`{"sales":[{"order":1,"itemName":"Gelano","quantity":1,"kamas":500,"saleDate":"01/03/2026"}]}`).Code)

	rec := do(t, h, "GET", "/api/v1/profiles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"profiles":[]}`, rec.Body.String())

	rec = do(t, h, "GET", "/api/v1/profiles/alice/owned/1", "")
	assert.JSONEq(t, `{"ingredient_id":1,"owned":0}`, rec.Body.String())
}

func TestRouter_SalesFlow(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, "POST", "/api/v1/profiles", `{"name":"alice"}`).Code)

	rec := do(t, h, "POST", "/api/v1/profiles/alice/sales",
		`{"sales":[{"order":2,"itemName":"Gelano","quantity":1,"kamas":500,"saleDate":"01/03/2026"},{"order":1,"itemName":"Dofus Ocre","quantity":1,"kamas":9000,"saleDate":"02/03/2026"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var listed struct {
		Sales []domain.SaleRecord `json:"sales"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Sales, 2)
	assert.Equal(t, 1, listed.Sales[0].Order)

	rec = do(t, h, "GET", "/api/v1/profiles/alice/sales/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalKamas":9500`)

	rec = do(t, h, "DELETE", "/api/v1/profiles/alice/sales/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, "GET", "/api/v1/profiles/alice/sales", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Sales, 1)
	assert.Equal(t, "Gelano", listed.Sales[0].ItemName)

	// No extractor configured
	req := httptest.NewRequest("POST", "/api/v1/profiles/alice/sales/images",
		strings.NewReader("--x\r\nContent-Disposition: form-data; name=\"images\"; filename=\"a.png\"\r\n\r\npng\r\n--x--\r\n"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(t, h, "GET", "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, "GET", "/readyz", "").Code)

	rec := do(t, h, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRouter_SwaggerDocs(t *testing.T) {
	h := NewRouter(Options{APIKey: "secret"}, Services{})

	rec := do(t, h, "GET", "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code, "swagger is public even with an API key")

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Craft Planner API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/profiles/{profile}/ingredients")
	assert.Contains(t, doc.Paths, "/api/v1/profiles/{profile}/sales/images")
	assert.Contains(t, doc.Paths, "/api/v1/admin/cache/stats")
}

type stubCache struct {
	cleared int
}

func (c *stubCache) CacheStats() dofusdb.CatalogCacheStats {
	return dofusdb.CatalogCacheStats{Items: dofusdb.CacheStats{Hits: 3, Size: 1}}
}

func (c *stubCache) ClearCache() { c.cleared++ }

func TestRouter_AdminCache(t *testing.T) {
	t.Run("not mounted without a cache", func(t *testing.T) {
		h := NewRouter(Options{}, Services{})
		assert.Equal(t, http.StatusNotFound, do(t, h, "GET", "/api/v1/admin/cache/stats", "").Code)
	})

	cache := &stubCache{}
	h := NewRouter(Options{}, Services{Cache: cache})

	rec := do(t, h, "GET", "/api/v1/admin/cache/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats dofusdb.CatalogCacheStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.Items.Hits)

	assert.Equal(t, http.StatusOK, do(t, h, "DELETE", "/api/v1/admin/cache", "").Code)
	assert.Equal(t, 1, cache.cleared)
}
