package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/event"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *eventRecorder) last() event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func newTestService(t *testing.T, opts ...Option) (Service, *Store, *eventRecorder) {
	t.Helper()
	store := newTestStore(t, Seed{
		Categories: []string{"Electronics", "Furniture"},
		Items:      []domain.ItemDraft{draft("MacBook Pro", "Electronics"), draft("Leather Sofa", "Furniture")},
	}, opts...)
	bus := event.NewMemoryBus()
	rec := &eventRecorder{}
	bus.SubscribeAll(event.InventoryTypes, rec.handle)
	return NewService(store, bus, CacheConfig{Size: 8}), store, rec
}

func TestService_AddItem(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, draft("Samsung OLED TV", "Electronics"))
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 2, countOf(t, store, "Electronics"))

	require.Equal(t, []event.Type{event.ItemAdded}, rec.types())
	payload := rec.last().Payload.(event.ItemPayloadV1)
	assert.Equal(t, item.ID, payload.Item.ID)

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := svc.AddItem(ctx, draft("Thing", "Nowhere"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Len(t, rec.types(), 1, "no event for rejected writes")
	})
}

func TestService_UpdateItem(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()
	sofa := store.Items()[1]

	d := draft("Leather Sofa", "Electronics")
	updated, err := svc.UpdateItem(ctx, sofa.ID, d)
	require.NoError(t, err)
	assert.Equal(t, sofa.ID, updated.ID)
	assert.Equal(t, sofa.Timestamp, updated.Timestamp)
	assert.Equal(t, 0, countOf(t, store, "Furniture"))
	assert.Equal(t, 2, countOf(t, store, "Electronics"))

	payload := rec.last().Payload.(event.ItemPayloadV1)
	assert.Equal(t, event.ItemUpdated, rec.last().Type)
	assert.Equal(t, "Furniture", payload.PreviousCategory)
	assert.Equal(t, updated, payload.Item)
	stored, _ := store.GetItem(sofa.ID)
	assert.Equal(t, stored, updated)

	_, err = svc.UpdateItem(ctx, "missing", d)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_PatchItem(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()
	macbook := store.Items()[0]

	location := "Home Office"
	value := 2100.0
	patched, err := svc.PatchItem(ctx, macbook.ID, domain.ItemPatch{
		Location:     &location,
		CurrentValue: &value,
	})
	require.NoError(t, err)
	assert.Equal(t, "Home Office", patched.Location)
	assert.Equal(t, 2100.0, patched.CurrentValue)
	assert.Equal(t, macbook.Name, patched.Name)
	assert.Equal(t, macbook.Category, patched.Category)

	payload := rec.last().Payload.(event.ItemPayloadV1)
	assert.Empty(t, payload.PreviousCategory, "category did not move")

	t.Run("clearing the warranty", func(t *testing.T) {
		_, err := svc.PatchItem(ctx, macbook.ID, domain.ItemPatch{Warranty: &domain.Warranty{Provider: "AppleCare+", ExpiryDate: "2026-01-15"}})
		require.NoError(t, err)
		cleared, err := svc.PatchItem(ctx, macbook.ID, domain.ItemPatch{Warranty: &domain.Warranty{}})
		require.NoError(t, err)
		assert.Nil(t, cleared.Warranty)
	})

	t.Run("unknown category", func(t *testing.T) {
		bad := "Nowhere"
		_, err := svc.PatchItem(ctx, macbook.ID, domain.ItemPatch{Category: &bad})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestService_DeleteAndRestore(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()
	before := store.Items()

	removed, err := svc.DeleteItem(ctx, before[0].ID)
	require.NoError(t, err)
	assert.Equal(t, before[0].ID, removed.ID)
	assert.Equal(t, 0, countOf(t, store, "Electronics"))

	restored, err := svc.RestoreItem(ctx, removed)
	require.NoError(t, err)
	assert.Equal(t, removed.ID, restored.ID)
	assert.Equal(t, before, store.Items())

	assert.Equal(t, []event.Type{event.ItemDeleted, event.ItemRestored}, rec.types())
	assert.Equal(t, restored, rec.last().Payload.(event.ItemPayloadV1).Item)

	_, err = svc.RestoreItem(ctx, removed)
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)

	_, err = svc.DeleteItem(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_GetItem(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.GetItem(ctx, store.Items()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro", item.Name)

	_, err = svc.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_SearchItems(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	results := svc.SearchItems(ctx, "macbook")
	require.Len(t, results, 1)
	assert.Equal(t, "MacBook Pro", results[0].Name)

	stats := svc.GetCacheStats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)

	again := svc.SearchItems(ctx, "MACBOOK")
	assert.Equal(t, results, again)
	assert.Equal(t, int64(1), svc.GetCacheStats().Hits, "case variants share an entry")

	t.Run("mutation invalidates", func(t *testing.T) {
		_, err := svc.AddItem(ctx, draft("MacBook Air", "Electronics"))
		require.NoError(t, err)

		results := svc.SearchItems(ctx, "macbook")
		assert.Len(t, results, 2)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, svc.SearchItems(ctx, ""), 3)
	})

	t.Run("cached results are copies", func(t *testing.T) {
		first := svc.SearchItems(ctx, "sofa")
		require.Len(t, first, 1)
		first[0].Name = "mutated"

		second := svc.SearchItems(ctx, "sofa")
		assert.Equal(t, "Leather Sofa", second[0].Name)
	})
}

func TestService_Categories(t *testing.T) {
	svc, _, rec := newTestService(t)
	ctx := context.Background()

	garden, err := svc.AddCategory(ctx, "Garden")
	require.NoError(t, err)

	got, err := svc.GetCategory(ctx, garden.ID)
	require.NoError(t, err)
	assert.Equal(t, garden, got)

	result, err := svc.RenameCategory(ctx, garden.ID, "Outdoor")
	require.NoError(t, err)
	assert.Equal(t, "Outdoor", result.Category.Name)

	renamed := rec.last()
	assert.Equal(t, event.CategoryRenamed, renamed.Type)
	assert.Equal(t, "Garden", renamed.Payload.(event.CategoryPayloadV1).OldName)

	_, err = svc.DeleteCategory(ctx, garden.ID)
	require.NoError(t, err)

	assert.Equal(t, []event.Type{event.CategoryAdded, event.CategoryRenamed, event.CategoryDeleted}, rec.types())
	assert.Len(t, svc.ListCategories(ctx), 2)

	_, err = svc.GetCategory(ctx, garden.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestService_RenameCategoryOrphans(t *testing.T) {
	svc, store, rec := newTestService(t)
	ctx := context.Background()
	electronics, _ := store.CategoryByName("Electronics")

	result, err := svc.RenameCategory(ctx, electronics.ID, "Devices")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Orphaned)
	assert.Equal(t, 1, rec.last().Payload.(event.CategoryPayloadV1).Orphaned)
	assert.NoError(t, svc.CheckHealth(ctx))

	t.Run("same name publishes nothing", func(t *testing.T) {
		n := len(rec.types())
		_, err := svc.RenameCategory(ctx, electronics.ID, "Devices")
		require.NoError(t, err)
		assert.Len(t, rec.types(), n)
	})
}

func TestService_DeleteCategoryInUse(t *testing.T) {
	svc, store, rec := newTestService(t)
	furniture, _ := store.CategoryByName("Furniture")

	_, err := svc.DeleteCategory(context.Background(), furniture.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
	assert.Empty(t, rec.types())
}

func TestService_CheckHealth(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CheckHealth(ctx))

	store.mu.Lock()
	store.categories[1].ItemCount = 9
	store.mu.Unlock()

	assert.ErrorIs(t, svc.CheckHealth(ctx), domain.ErrCountDrift)
}

func TestService_HandlerErrorDoesNotFailMutation(t *testing.T) {
	store := newTestStore(t, Seed{Categories: []string{"Art"}})
	bus := event.NewMemoryBus()
	bus.Subscribe(event.ItemAdded, func(context.Context, event.Event) error {
		return errors.New("subscriber down")
	})
	svc := NewService(store, bus, DefaultCacheConfig())

	item, err := svc.AddItem(context.Background(), draft("Vase", "Art"))
	require.NoError(t, err)
	_, ok := store.GetItem(item.ID)
	assert.True(t, ok)
}

func TestService_NilBus(t *testing.T) {
	store := newTestStore(t, Seed{Categories: []string{"Art"}})
	svc := NewService(store, nil, DefaultCacheConfig())

	_, err := svc.AddItem(context.Background(), draft("Vase", "Art"))
	require.NoError(t, err)
	assert.Len(t, svc.ListItems(context.Background()), 1)
	assert.Equal(t, uint64(1), svc.Snapshot(context.Background()).Version)
}

func TestService_Shutdown(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.SearchItems(ctx, "sofa")
	require.Equal(t, 1, svc.GetCacheStats().Size)

	require.NoError(t, svc.Shutdown(ctx))
	assert.Equal(t, 0, svc.GetCacheStats().Size)
}
