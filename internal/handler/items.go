package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// ItemCatalog is the read-only view of the item database used by the API
type ItemCatalog interface {
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	SearchItems(ctx context.Context, name string) ([]domain.SearchResult, error)
	GetSet(ctx context.Context, id int) (*domain.ItemSet, error)
	SearchSets(ctx context.Context, name string) ([]domain.SetSearchResult, error)
}

// ItemHandler exposes item and set lookups
type ItemHandler struct {
	catalog ItemCatalog
}

func NewItemHandler(catalog ItemCatalog) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

type ItemSearchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

type SetSearchResponse struct {
	Results []domain.SetSearchResult `json:"results"`
}

// searchQuery reads the q parameter, trimmed and bounded.
// If ok is false, the HTTP response has already been written.
func searchQuery(r *http.Request, w http.ResponseWriter) (string, bool) {
	q, ok := GetQueryParam(r, w, ParamQuery)
	if !ok {
		return "", false
	}
	q = strings.TrimSpace(q)
	if q == "" || len([]rune(q)) > MaxSearchQueryLength {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return "", false
	}
	return q, true
}

// HandleSearchItems searches items by name across every category
// @Summary Search items
// @Tags items
// @Produce json
// @Param q query string true "Name fragment"
// @Success 200 {object} ItemSearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/items/search [get]
func (h *ItemHandler) HandleSearchItems(w http.ResponseWriter, r *http.Request) {
	q, ok := searchQuery(r, w)
	if !ok {
		return
	}

	results, err := h.catalog.SearchItems(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, ActionSearchItems, err)
		return
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	respondJSON(w, http.StatusOK, ItemSearchResponse{Results: results})
}

// HandleGetItem returns an item with its hydrated recipe
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIntParam(r, w, ParamID)
	if !ok {
		return
	}

	item, err := h.catalog.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ActionGetItem, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleSearchSets searches equipment sets by name
// @Summary Search sets
// @Tags items
// @Produce json
// @Param q query string true "Name fragment"
// @Success 200 {object} SetSearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/sets/search [get]
func (h *ItemHandler) HandleSearchSets(w http.ResponseWriter, r *http.Request) {
	q, ok := searchQuery(r, w)
	if !ok {
		return
	}

	results, err := h.catalog.SearchSets(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, ActionSearchSets, err)
		return
	}
	if results == nil {
		results = []domain.SetSearchResult{}
	}
	respondJSON(w, http.StatusOK, SetSearchResponse{Results: results})
}

// HandleGetSet returns a set with its bonuses and member items
// @Summary Get set
// @Tags items
// @Produce json
// @Param id path int true "Set ID"
// @Success 200 {object} domain.ItemSet
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/sets/{id} [get]
func (h *ItemHandler) HandleGetSet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIntParam(r, w, ParamID)
	if !ok {
		return
	}

	set, err := h.catalog.GetSet(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ActionGetSet, err)
		return
	}
	respondJSON(w, http.StatusOK, set)
}
