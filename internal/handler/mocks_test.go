package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPlanner_Go/internal/dofusdb"
	"github.com/osse101/CraftPlanner_Go/internal/domain"
)

// MockCraftingService mocks crafting.Service
type MockCraftingService struct {
	mock.Mock
}

func (m *MockCraftingService) AddItem(ctx context.Context, profileName string, itemID int) (*domain.WishlistEntry, error) {
	args := m.Called(ctx, profileName, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WishlistEntry), args.Error(1)
}

func (m *MockCraftingService) SetQuantity(ctx context.Context, profileName string, itemID, quantity int) error {
	return m.Called(ctx, profileName, itemID, quantity).Error(0)
}

func (m *MockCraftingService) RemoveItem(ctx context.Context, profileName string, itemID int) error {
	return m.Called(ctx, profileName, itemID).Error(0)
}

func (m *MockCraftingService) ClearPlan(ctx context.Context, profileName string) error {
	return m.Called(ctx, profileName).Error(0)
}

func (m *MockCraftingService) SetOwned(ctx context.Context, profileName string, ingredientID, count int) (int, error) {
	args := m.Called(ctx, profileName, ingredientID, count)
	return args.Int(0), args.Error(1)
}

func (m *MockCraftingService) GetOwned(ctx context.Context, profileName string, ingredientID int) (int, error) {
	args := m.Called(ctx, profileName, ingredientID)
	return args.Int(0), args.Error(1)
}

func (m *MockCraftingService) Wishlist(ctx context.Context, profileName string) ([]domain.WishlistEntry, error) {
	args := m.Called(ctx, profileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WishlistEntry), args.Error(1)
}

func (m *MockCraftingService) FlatIngredients(ctx context.Context, profileName string) ([]domain.ReconciledIngredient, error) {
	args := m.Called(ctx, profileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciledIngredient), args.Error(1)
}

func (m *MockCraftingService) GroupedIngredients(ctx context.Context, profileName string) ([]domain.ReconciledGroup, error) {
	args := m.Called(ctx, profileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciledGroup), args.Error(1)
}

func (m *MockCraftingService) DeleteProfile(ctx context.Context, profileName string) error {
	return m.Called(ctx, profileName).Error(0)
}

func (m *MockCraftingService) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	return m.Called(ctx, maxIdle).Int(0)
}

func (m *MockCraftingService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockSalesService mocks sales.Service
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) List(ctx context.Context, profileName string) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, profileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSalesService) Import(ctx context.Context, profileName string, records []domain.SaleRecord) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, profileName, records)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSalesService) ImportImages(ctx context.Context, profileName string, images [][]byte) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, profileName, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockSalesService) Remove(ctx context.Context, profileName string, order int) error {
	return m.Called(ctx, profileName, order).Error(0)
}

func (m *MockSalesService) Clear(ctx context.Context, profileName string) error {
	return m.Called(ctx, profileName).Error(0)
}

func (m *MockSalesService) Summary(ctx context.Context, profileName string) (domain.SalesSummary, error) {
	args := m.Called(ctx, profileName)
	return args.Get(0).(domain.SalesSummary), args.Error(1)
}

// MockCacheAdmin mocks CacheAdmin
type MockCacheAdmin struct {
	mock.Mock
}

func (m *MockCacheAdmin) CacheStats() dofusdb.CatalogCacheStats {
	return m.Called().Get(0).(dofusdb.CatalogCacheStats)
}

func (m *MockCacheAdmin) ClearCache() {
	m.Called()
}

// MockItemCatalog mocks ItemCatalog
type MockItemCatalog struct {
	mock.Mock
}

func (m *MockItemCatalog) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemCatalog) SearchItems(ctx context.Context, name string) ([]domain.SearchResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchResult), args.Error(1)
}

func (m *MockItemCatalog) GetSet(ctx context.Context, id int) (*domain.ItemSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemSet), args.Error(1)
}

func (m *MockItemCatalog) SearchSets(ctx context.Context, name string) ([]domain.SetSearchResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SetSearchResult), args.Error(1)
}

// newRequest builds a request carrying chi URL parameters given as key/value pairs
func newRequest(t *testing.T, method, target string, body interface{}, params ...string) *http.Request {
	t.Helper()
	require.Zero(t, len(params)%2, "params must be key/value pairs")

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, reader)
	rctx := chi.NewRouteContext()
	for i := 0; i < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody unmarshals a recorded JSON response
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
