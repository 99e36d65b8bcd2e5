package handler

import (
	"net/http"

	"github.com/osse101/CraftPlanner_Go/internal/crafting"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// CraftingHandler exposes a profile's crafting list, owned ingredients and
// the aggregated ingredient views
type CraftingHandler struct {
	service crafting.Service
}

func NewCraftingHandler(service crafting.Service) *CraftingHandler {
	return &CraftingHandler{service: service}
}

type AddItemRequest struct {
	ItemID int `json:"item_id" validate:"required,gt=0"`
}

type WishlistResponse struct {
	Items []domain.WishlistEntry `json:"items"`
}

type OwnedResponse struct {
	IngredientID int `json:"ingredient_id"`
	Owned        int `json:"owned"`
}

type FlatIngredientsResponse struct {
	View        string                        `json:"view"`
	Ingredients []domain.ReconciledIngredient `json:"ingredients"`
}

type GroupedIngredientsResponse struct {
	View   string                   `json:"view"`
	Groups []domain.ReconciledGroup `json:"groups"`
}

// HandleGetWishlist returns the crafting list in insertion order
// @Summary Get crafting list
// @Description Returns the profile's crafting list in insertion order
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Success 200 {object} WishlistResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/wishlist [get]
func (h *CraftingHandler) HandleGetWishlist(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	entries, err := h.service.Wishlist(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ActionGetWishlist, err)
		return
	}
	if entries == nil {
		entries = []domain.WishlistEntry{}
	}
	respondJSON(w, http.StatusOK, WishlistResponse{Items: entries})
}

// HandleAddItem resolves an item and adds one craft of it to the list
// @Summary Add item to crafting list
// @Description Resolves the item from the item database and adds one craft, incrementing an existing entry
// @Tags crafting
// @Accept json
// @Produce json
// @Param profile path string true "Profile name"
// @Param request body AddItemRequest true "Item to add"
// @Success 201 {object} domain.WishlistEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/wishlist [post]
func (h *CraftingHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionAddItem); err != nil {
		return
	}

	entry, err := h.service.AddItem(r.Context(), name, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ActionAddItem, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// HandleSetQuantity replaces the desired quantity of a listed item.
// A zero or negative quantity removes the item.
// @Summary Set item quantity
// @Description Unparseable quantities count as 1; zero or less removes the item
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Param itemID path int true "Item ID"
// @Param quantity query string true "Desired quantity"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/wishlist/{itemID} [put]
func (h *CraftingHandler) HandleSetQuantity(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	itemID, ok := GetIntParam(r, w, ParamItemID)
	if !ok {
		return
	}
	raw, ok := GetQueryParam(r, w, ParamQuantity)
	if !ok {
		return
	}

	if err := h.service.SetQuantity(r.Context(), name, itemID, crafting.ParseQuantity(raw)); err != nil {
		respondServiceError(w, r, ActionSetQuantity, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuantityUpdated})
}

// HandleRemoveItem deletes an item from the crafting list
// @Summary Remove item from crafting list
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Param itemID path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/wishlist/{itemID} [delete]
func (h *CraftingHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	itemID, ok := GetIntParam(r, w, ParamItemID)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(r.Context(), name, itemID); err != nil {
		respondServiceError(w, r, ActionRemoveItem, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemoved})
}

// HandleClearWishlist empties the crafting list and resets owned counts
// @Summary Clear crafting list
// @Description Empties the crafting list and resets every owned ingredient count
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/wishlist [delete]
func (h *CraftingHandler) HandleClearWishlist(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}

	if err := h.service.ClearPlan(r.Context(), name); err != nil {
		respondServiceError(w, r, ActionClearWishlist, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCraftListCleared})
}

// HandleSetOwned records how many of an ingredient the user owns
// @Summary Set owned ingredient count
// @Description Unparseable counts are stored as 0 and negative counts are clamped to 0
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Param ingredientID path int true "Ingredient ID"
// @Param count query string false "Owned count"
// @Success 200 {object} OwnedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/owned/{ingredientID} [put]
func (h *CraftingHandler) HandleSetOwned(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	ingredientID, ok := GetIntParam(r, w, ParamIngredientID)
	if !ok {
		return
	}
	raw := GetOptionalQueryParam(r, ParamCount, "")

	owned, err := h.service.SetOwned(r.Context(), name, ingredientID, crafting.ParseOwned(raw))
	if err != nil {
		respondServiceError(w, r, ActionSetOwned, err)
		return
	}

	respondJSON(w, http.StatusOK, OwnedResponse{IngredientID: ingredientID, Owned: owned})
}

// HandleGetOwned returns the owned count of one ingredient
// @Summary Get owned ingredient count
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Param ingredientID path int true "Ingredient ID"
// @Success 200 {object} OwnedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/owned/{ingredientID} [get]
func (h *CraftingHandler) HandleGetOwned(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	ingredientID, ok := GetIntParam(r, w, ParamIngredientID)
	if !ok {
		return
	}

	owned, err := h.service.GetOwned(r.Context(), name, ingredientID)
	if err != nil {
		respondServiceError(w, r, ActionGetOwned, err)
		return
	}

	respondJSON(w, http.StatusOK, OwnedResponse{IngredientID: ingredientID, Owned: owned})
}

// HandleGetIngredients returns the reconciled ingredient demand as a flat list
// (default) or grouped per crafted item
// @Summary Get ingredient demand
// @Description Flat view merges ingredients by ID sorted by name; grouped view breaks them down per listed item
// @Tags crafting
// @Produce json
// @Param profile path string true "Profile name"
// @Param view query string false "flat or grouped" Enums(flat, grouped)
// @Success 200 {object} FlatIngredientsResponse
// @Success 200 {object} GroupedIngredientsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{profile}/ingredients [get]
func (h *CraftingHandler) HandleGetIngredients(w http.ResponseWriter, r *http.Request) {
	name, ok := GetProfileParam(r, w)
	if !ok {
		return
	}
	view, err := crafting.ParseView(GetOptionalQueryParam(r, ParamView, crafting.ViewFlat))
	if err != nil {
		respondServiceError(w, r, ActionGetIngredients, err)
		return
	}

	if view == crafting.ViewGrouped {
		groups, err := h.service.GroupedIngredients(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, ActionGetIngredients, err)
			return
		}
		if groups == nil {
			groups = []domain.ReconciledGroup{}
		}
		respondJSON(w, http.StatusOK, GroupedIngredientsResponse{View: view, Groups: groups})
		return
	}

	ingredients, err := h.service.FlatIngredients(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ActionGetIngredients, err)
		return
	}
	if ingredients == nil {
		ingredients = []domain.ReconciledIngredient{}
	}
	logger.FromContext(r.Context()).Debug("Ingredients computed", "profile", name, "count", len(ingredients))
	respondJSON(w, http.StatusOK, FlatIngredientsResponse{View: view, Ingredients: ingredients})
}
