package dofusdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCache_SetGet(t *testing.T) {
	c := newLookupCache[string](2, time.Minute)

	c.Set(1, "a")
	v, ok := c.Get(1)
	_, missing := c.Get(2)

	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.False(t, missing)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Size: 1}, c.Stats())
}

func TestLookupCache_EvictsOldest(t *testing.T) {
	c := newLookupCache[string](2, time.Minute)

	c.Set(1, "a")
	c.Set(2, "b")
	c.Set(3, "c")

	_, ok := c.Get(1)
	assert.False(t, ok)
	stats := c.Stats()
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, int64(1), stats.Evictions)
}

func TestLookupCache_ClearKeepsCounters(t *testing.T) {
	c := newLookupCache[string](4, time.Minute)
	c.Set(1, "a")
	c.Set(2, "b")
	_, _ = c.Get(1)

	c.Clear()

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Evictions: 2, Size: 0}, c.Stats())
}

func TestLookupCache_Disabled(t *testing.T) {
	c := newLookupCache[string](0, time.Minute)

	c.Set(1, "a")
	_, ok := c.Get(1)
	c.Clear()

	assert.False(t, ok)
	assert.Equal(t, CacheStats{Misses: 1}, c.Stats())
}

func TestClient_ClearCacheRefetches(t *testing.T) {
	api := newFakeAPI()
	api.routes[prefix+"/items/equipment/44"] = amuletFixture()
	api.routes[prefix+"/items/resources/1"] = map[string]interface{}{"ankama_id": 1, "name": "Laine de Bouftou"}
	api.routes[prefix+"/items/resources/2"] = map[string]interface{}{"ankama_id": 2, "name": "Cuir de Bouftou"}
	client := newTestClient(t, api, 10)
	ctx := context.Background()

	_, err := client.GetItem(ctx, 44)
	require.NoError(t, err)
	stats := client.CacheStats()
	assert.Equal(t, 1, stats.Items.Size)
	assert.Equal(t, 2, stats.Ingredients.Size)

	hits := api.hits.Load()
	_, err = client.GetItem(ctx, 44)
	require.NoError(t, err)
	assert.Equal(t, hits, api.hits.Load(), "second lookup is served from the cache")
	assert.Equal(t, int64(1), client.CacheStats().Items.Hits)

	client.ClearCache()
	assert.Equal(t, 0, client.CacheStats().Items.Size)

	_, err = client.GetItem(ctx, 44)
	require.NoError(t, err)
	assert.Greater(t, api.hits.Load(), hits)
}
