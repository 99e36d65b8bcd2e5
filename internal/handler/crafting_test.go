package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

func TestHandleAddItem(t *testing.T) {
	tests := []struct {
		name           string
		profile        string
		reqBody        interface{}
		setupMocks     func(*MockCraftingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			profile: "alice",
			reqBody: AddItemRequest{ItemID: 44},
			setupMocks: func(m *MockCraftingService) {
				m.On("AddItem", mock.Anything, "alice", 44).Return(&domain.WishlistEntry{
					Item:     domain.Item{ID: 44, Name: "Coiffe du Bouftou"},
					Quantity: 1,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Coiffe du Bouftou"`,
		},
		{
			name:           "Invalid JSON",
			profile:        "alice",
			reqBody:        "not json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing item id",
			profile:        "alice",
			reqBody:        map[string]int{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"itemid":"This field is required"`,
		},
		{
			name:           "Invalid profile",
			profile:        " alice",
			reqBody:        AddItemRequest{ItemID: 44},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidProfileError,
		},
		{
			name:    "Unknown item",
			profile: "alice",
			reqBody: AddItemRequest{ItemID: 9999},
			setupMocks: func(m *MockCraftingService) {
				m.On("AddItem", mock.Anything, "alice", 9999).
					Return(nil, fmt.Errorf("resolve item 9999: %w", domain.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
		{
			name:    "Item database down",
			profile: "alice",
			reqBody: AddItemRequest{ItemID: 44},
			setupMocks: func(m *MockCraftingService) {
				m.On("AddItem", mock.Anything, "alice", 44).
					Return(nil, fmt.Errorf("resolve item 44: %w", domain.ErrResolutionFailed))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   ErrMsgItemDatabaseDownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCraftingService{}
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			h := NewCraftingHandler(svc)

			req := newRequest(t, http.MethodPost, "/", tt.reqBody, ParamProfile, tt.profile)
			w := httptest.NewRecorder()
			h.HandleAddItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleSetQuantity(t *testing.T) {
	tests := []struct {
		name           string
		itemID         string
		target         string
		setupMocks     func(*MockCraftingService)
		expectedStatus int
	}{
		{
			name:   "Sets quantity",
			itemID: "44",
			target: "/?quantity=5",
			setupMocks: func(m *MockCraftingService) {
				m.On("SetQuantity", mock.Anything, "alice", 44, 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Unparseable quantity falls back to one",
			itemID: "44",
			target: "/?quantity=abc",
			setupMocks: func(m *MockCraftingService) {
				m.On("SetQuantity", mock.Anything, "alice", 44, 1).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Negative quantity is passed through as removal",
			itemID: "44",
			target: "/?quantity=-3",
			setupMocks: func(m *MockCraftingService) {
				m.On("SetQuantity", mock.Anything, "alice", 44, -3).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Item not listed",
			itemID: "45",
			target: "/?quantity=2",
			setupMocks: func(m *MockCraftingService) {
				m.On("SetQuantity", mock.Anything, "alice", 45, 2).
					Return(fmt.Errorf("item 45: %w", domain.ErrNotInWishlist))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing quantity",
			itemID:         "44",
			target:         "/",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid item id",
			itemID:         "abc",
			target:         "/?quantity=2",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCraftingService{}
			if tt.setupMocks != nil {
				tt.setupMocks(svc)
			}
			h := NewCraftingHandler(svc)

			req := newRequest(t, http.MethodPut, tt.target, nil, ParamProfile, "alice", ParamItemID, tt.itemID)
			w := httptest.NewRecorder()
			h.HandleSetQuantity(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetWishlist_EmptyIsArray(t *testing.T) {
	svc := &MockCraftingService{}
	svc.On("Wishlist", mock.Anything, "alice").Return(nil, nil)
	h := NewCraftingHandler(svc)

	w := httptest.NewRecorder()
	h.HandleGetWishlist(w, newRequest(t, http.MethodGet, "/", nil, ParamProfile, "alice"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestHandleRemoveAndClear(t *testing.T) {
	svc := &MockCraftingService{}
	svc.On("RemoveItem", mock.Anything, "alice", 44).Return(nil)
	svc.On("ClearPlan", mock.Anything, "alice").Return(nil)
	h := NewCraftingHandler(svc)

	w := httptest.NewRecorder()
	h.HandleRemoveItem(w, newRequest(t, http.MethodDelete, "/", nil, ParamProfile, "alice", ParamItemID, "44"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgItemRemoved)

	w = httptest.NewRecorder()
	h.HandleClearWishlist(w, newRequest(t, http.MethodDelete, "/", nil, ParamProfile, "alice"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCraftListCleared)

	svc.AssertExpectations(t)
}

func TestHandleSetOwned(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected int
	}{
		{"Count", "/?count=7", 7},
		{"Negative floors at zero", "/?count=-2", 0},
		{"Garbage is zero", "/?count=lots", 0},
		{"Missing is zero", "/", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCraftingService{}
			svc.On("SetOwned", mock.Anything, "alice", 3, tt.expected).Return(tt.expected, nil)
			h := NewCraftingHandler(svc)

			w := httptest.NewRecorder()
			h.HandleSetOwned(w, newRequest(t, http.MethodPut, tt.target, nil, ParamProfile, "alice", ParamIngredientID, "3"))

			assert.Equal(t, http.StatusOK, w.Code)
			var resp OwnedResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, OwnedResponse{IngredientID: 3, Owned: tt.expected}, resp)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetOwned(t *testing.T) {
	svc := &MockCraftingService{}
	svc.On("GetOwned", mock.Anything, "alice", 3).Return(4, nil)
	h := NewCraftingHandler(svc)

	w := httptest.NewRecorder()
	h.HandleGetOwned(w, newRequest(t, http.MethodGet, "/", nil, ParamProfile, "alice", ParamIngredientID, "3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ingredient_id":3,"owned":4}`, w.Body.String())
}

func TestHandleGetIngredients(t *testing.T) {
	flat := []domain.ReconciledIngredient{{
		AggregatedIngredient: domain.AggregatedIngredient{ID: 1, Name: "Laine de Bouftou", Required: 5},
		Owned:                2,
		Remaining:            3,
		Percent:              40,
		Fill:                 40,
	}}
	grouped := []domain.ReconciledGroup{{
		Item:        domain.Item{ID: 44, Name: "Coiffe du Bouftou"},
		Quantity:    1,
		Ingredients: flat,
	}}

	t.Run("Default view is flat", func(t *testing.T) {
		svc := &MockCraftingService{}
		svc.On("FlatIngredients", mock.Anything, "alice").Return(flat, nil)
		h := NewCraftingHandler(svc)

		w := httptest.NewRecorder()
		h.HandleGetIngredients(w, newRequest(t, http.MethodGet, "/", nil, ParamProfile, "alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp FlatIngredientsResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "flat", resp.View)
		assert.Equal(t, flat, resp.Ingredients)
		svc.AssertExpectations(t)
	})

	t.Run("Grouped view", func(t *testing.T) {
		svc := &MockCraftingService{}
		svc.On("GroupedIngredients", mock.Anything, "alice").Return(grouped, nil)
		h := NewCraftingHandler(svc)

		w := httptest.NewRecorder()
		h.HandleGetIngredients(w, newRequest(t, http.MethodGet, "/?view=GROUPED", nil, ParamProfile, "alice"))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp GroupedIngredientsResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "grouped", resp.View)
		assert.Len(t, resp.Groups, 1)
		svc.AssertExpectations(t)
	})

	t.Run("Empty flat view is an array", func(t *testing.T) {
		svc := &MockCraftingService{}
		svc.On("FlatIngredients", mock.Anything, "alice").Return(nil, nil)
		h := NewCraftingHandler(svc)

		w := httptest.NewRecorder()
		h.HandleGetIngredients(w, newRequest(t, http.MethodGet, "/?view=flat", nil, ParamProfile, "alice"))

		assert.JSONEq(t, `{"view":"flat","ingredients":[]}`, w.Body.String())
	})

	t.Run("Unknown view", func(t *testing.T) {
		svc := &MockCraftingService{}
		h := NewCraftingHandler(svc)

		w := httptest.NewRecorder()
		h.HandleGetIngredients(w, newRequest(t, http.MethodGet, "/?view=tree", nil, ParamProfile, "alice"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "FlatIngredients", mock.Anything, mock.Anything)
	})
}
