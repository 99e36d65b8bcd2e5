package handler

import (
	"net/http"

	"github.com/osse101/CraftPlanner_Go/internal/dofusdb"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// CacheAdmin exposes the item database caches
type CacheAdmin interface {
	CacheStats() dofusdb.CatalogCacheStats
	ClearCache()
}

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	cache CacheAdmin
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(cache CacheAdmin) *AdminCacheHandler {
	return &AdminCacheHandler{cache: cache}
}

// HandleGetCacheStats returns item and ingredient cache statistics
// @Summary Get item cache stats
// @Description Returns hit, miss and eviction counts of the item database caches
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dofusdb.CatalogCacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cache.CacheStats())
}

// HandleClearCache drops every cached item so the next lookups refetch them
// @Summary Clear item cache
// @Description Drops cached items and ingredients, e.g. after a game update
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache [delete]
func (h *AdminCacheHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.cache.ClearCache()
	logger.FromContext(r.Context()).Info("Item cache cleared")
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheCleared})
}
