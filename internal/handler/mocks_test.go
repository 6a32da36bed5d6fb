package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/stats"
)

// MockInventoryService is a testify mock of inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) ListItems(ctx context.Context) []domain.Item {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Item)
}

func (m *MockInventoryService) GetItem(ctx context.Context, id string) (domain.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockInventoryService) AddItem(ctx context.Context, draft domain.ItemDraft) (domain.Item, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockInventoryService) UpdateItem(ctx context.Context, id string, draft domain.ItemDraft) (domain.Item, error) {
	args := m.Called(ctx, id, draft)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockInventoryService) PatchItem(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockInventoryService) DeleteItem(ctx context.Context, id string) (domain.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockInventoryService) RestoreItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockInventoryService) SearchItems(ctx context.Context, query string) []domain.Item {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Item)
}

func (m *MockInventoryService) ListCategories(ctx context.Context) []domain.Category {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Category)
}

func (m *MockInventoryService) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockInventoryService) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockInventoryService) RenameCategory(ctx context.Context, id, name string) (inventory.RenameResult, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(inventory.RenameResult), args.Error(1)
}

func (m *MockInventoryService) DeleteCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockInventoryService) Snapshot(ctx context.Context) inventory.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(inventory.Snapshot)
}

func (m *MockInventoryService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryService) GetCacheStats() inventory.CacheStats {
	args := m.Called()
	return args.Get(0).(inventory.CacheStats)
}

func (m *MockInventoryService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStatsService is a testify mock of stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetDashboard(ctx context.Context) stats.Dashboard {
	args := m.Called(ctx)
	return args.Get(0).(stats.Dashboard)
}

var (
	_ inventory.Service = (*MockInventoryService)(nil)
	_ stats.Service     = (*MockStatsService)(nil)
)

// serve routes one request through a chi router so URL params resolve
func serve(t *testing.T, method, pattern string, h http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func ptr[T any](v T) *T {
	return &v
}

func sampleItem() domain.Item {
	return domain.Item{
		ID:            "item-1",
		Name:          "MacBook Pro",
		Category:      "Electronics",
		PurchaseDate:  "2023-01-15",
		PurchasePrice: 2499,
		CurrentValue:  2000,
		Images:        []string{domain.PlaceholderImage},
	}
}
