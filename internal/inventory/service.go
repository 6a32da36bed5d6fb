package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/event"
	"github.com/osse101/HomeInventory_Go/internal/logger"
	"github.com/osse101/HomeInventory_Go/internal/metrics"
	"github.com/osse101/HomeInventory_Go/internal/search"
)

// Service defines the interface for inventory operations
type Service interface {
	// Items
	ListItems(ctx context.Context) []domain.Item
	GetItem(ctx context.Context, id string) (domain.Item, error)
	AddItem(ctx context.Context, draft domain.ItemDraft) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, draft domain.ItemDraft) (domain.Item, error)
	PatchItem(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) (domain.Item, error)
	RestoreItem(ctx context.Context, item domain.Item) (domain.Item, error)
	SearchItems(ctx context.Context, query string) []domain.Item

	// Categories
	ListCategories(ctx context.Context) []domain.Category
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	AddCategory(ctx context.Context, name string) (domain.Category, error)
	RenameCategory(ctx context.Context, id, name string) (RenameResult, error)
	DeleteCategory(ctx context.Context, id string) (domain.Category, error)

	Snapshot(ctx context.Context) Snapshot
	CheckHealth(ctx context.Context) error
	GetCacheStats() CacheStats
	Shutdown(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	store *Store
	bus   event.Bus
	cache *searchCache
}

// NewService creates the inventory service over store. bus may be nil, in which case
// no events are published.
func NewService(store *Store, bus event.Bus, cacheConfig CacheConfig) Service {
	s := &service{
		store: store,
		bus:   bus,
		cache: newSearchCache(cacheConfig),
	}
	s.recordInventory()
	return s
}

func (s *service) ListItems(ctx context.Context) []domain.Item {
	return s.store.Items()
}

func (s *service) GetItem(ctx context.Context, id string) (domain.Item, error) {
	item, ok := s.store.GetItem(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

func (s *service) AddItem(ctx context.Context, draft domain.ItemDraft) (domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.requireCategory(draft.Category); err != nil {
		metrics.RecordOperation(OpAddItem, err)
		return domain.Item{}, err
	}

	id := s.store.AddItem(draft)
	item, ok := s.store.GetItem(id)
	if !ok {
		// Deleted by a concurrent request between the two calls
		err := fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		metrics.RecordOperation(OpAddItem, err)
		return domain.Item{}, err
	}

	metrics.RecordOperation(OpAddItem, nil)
	log.Info(LogMsgItemAdded, "id", item.ID, "name", item.Name, "category", item.Category)
	s.afterMutation(ctx, event.NewItemEvent(event.ItemAdded, item, ""))
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, id string, draft domain.ItemDraft) (domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.requireCategory(draft.Category); err != nil {
		metrics.RecordOperation(OpUpdateItem, err)
		return domain.Item{}, err
	}

	previous, item, err := s.store.UpdateItem(id, draft.ToItem())
	metrics.RecordOperation(OpUpdateItem, err)
	if err != nil {
		return domain.Item{}, err
	}

	log.Info(LogMsgItemUpdated, "id", id, "category", item.Category, "previous_category", previous.Category)
	s.afterMutation(ctx, event.NewItemEvent(event.ItemUpdated, item, movedFrom(previous, item)))
	return item, nil
}

func (s *service) PatchItem(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, error) {
	log := logger.FromContext(ctx)

	if patch.Category != nil {
		if err := s.requireCategory(*patch.Category); err != nil {
			metrics.RecordOperation(OpPatchItem, err)
			return domain.Item{}, err
		}
	}

	before, after, err := s.store.ModifyItem(id, func(item *domain.Item) error {
		patch.Apply(item)
		return nil
	})
	metrics.RecordOperation(OpPatchItem, err)
	if err != nil {
		return domain.Item{}, err
	}

	log.Info(LogMsgItemUpdated, "id", id, "category", after.Category, "previous_category", before.Category)
	s.afterMutation(ctx, event.NewItemEvent(event.ItemUpdated, after, movedFrom(before, after)))
	return after, nil
}

func (s *service) DeleteItem(ctx context.Context, id string) (domain.Item, error) {
	log := logger.FromContext(ctx)

	removed, err := s.store.DeleteItem(id)
	metrics.RecordOperation(OpDeleteItem, err)
	if err != nil {
		return domain.Item{}, err
	}

	log.Info(LogMsgItemDeleted, "id", id, "name", removed.Name, "category", removed.Category)
	s.afterMutation(ctx, event.NewItemEvent(event.ItemDeleted, removed, ""))
	return removed, nil
}

func (s *service) RestoreItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	log := logger.FromContext(ctx)

	restored, err := s.store.RestoreItem(item)
	metrics.RecordOperation(OpRestoreItem, err)
	if err != nil {
		return domain.Item{}, err
	}

	log.Info(LogMsgItemRestored, "id", restored.ID, "name", restored.Name, "category", restored.Category)
	s.afterMutation(ctx, event.NewItemEvent(event.ItemRestored, restored, ""))
	return restored, nil
}

// SearchItems returns the items matching query. Results are cached per store version.
func (s *service) SearchItems(ctx context.Context, query string) []domain.Item {
	metrics.SearchesPerformed.Inc()
	if query == "" {
		return s.store.Items()
	}

	if items, ok := s.cache.Get(s.store.Version(), query); ok {
		metrics.SearchCacheHits.Inc()
		return items
	}
	metrics.SearchCacheMisses.Inc()

	snap := s.store.Snapshot()
	results := search.Filter(snap.Items, query)
	s.cache.Set(snap.Version, query, results)

	logger.FromContext(ctx).Debug("Search computed", "query", query, "results", len(results), "version", snap.Version)
	return results
}

func (s *service) ListCategories(ctx context.Context) []domain.Category {
	return s.store.Categories()
}

func (s *service) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	c, ok := s.store.GetCategory(id)
	if !ok {
		return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	return c, nil
}

func (s *service) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	c, err := s.store.AddCategory(name)
	metrics.RecordOperation(OpAddCategory, err)
	if err != nil {
		return domain.Category{}, err
	}

	logger.FromContext(ctx).Info(LogMsgCategoryAdded, "id", c.ID, "name", c.Name, "item_count", c.ItemCount)
	s.afterMutation(ctx, event.NewCategoryEvent(event.CategoryAdded, c, "", 0))
	return c, nil
}

func (s *service) RenameCategory(ctx context.Context, id, name string) (RenameResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.store.UpdateCategory(id, name)
	metrics.RecordOperation(OpRenameCategory, err)
	if err != nil {
		return RenameResult{}, err
	}
	if result.OldName == result.Category.Name {
		return result, nil
	}

	log.Info(LogMsgCategoryRenamed, "id", id, "old_name", result.OldName, "new_name", result.Category.Name,
		"relabeled", result.Relabeled)
	if result.Orphaned > 0 {
		log.Warn(LogMsgCategoryOrphans, "old_name", result.OldName, "orphaned", result.Orphaned)
	}
	s.afterMutation(ctx, event.NewCategoryEvent(event.CategoryRenamed, result.Category, result.OldName, result.Orphaned))
	return result, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) (domain.Category, error) {
	c, err := s.store.DeleteCategory(id)
	metrics.RecordOperation(OpDeleteCategory, err)
	if err != nil {
		return domain.Category{}, err
	}

	logger.FromContext(ctx).Info(LogMsgCategoryDeleted, "id", c.ID, "name", c.Name)
	s.afterMutation(ctx, event.NewCategoryEvent(event.CategoryDeleted, c, "", 0))
	return c, nil
}

func (s *service) Snapshot(ctx context.Context) Snapshot {
	return s.store.Snapshot()
}

// CheckHealth reports count drift between the category counters and the item list
func (s *service) CheckHealth(ctx context.Context) error {
	if err := s.store.Verify(); err != nil {
		logger.FromContext(ctx).Error(LogMsgCountDrift, "error", err)
		return err
	}
	return nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.GetStats()
}

// Shutdown drops cached search results. Events are published synchronously, so there is
// no background work to wait for.
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServiceShutdown)
	s.cache.Clear()
	return ctx.Err()
}

// requireCategory rejects item writes naming a category that does not exist.
func (s *service) requireCategory(name string) error {
	if _, ok := s.store.CategoryByName(name); !ok {
		return fmt.Errorf(ErrFmtUnknownCategory, domain.ErrInvalidInput, name)
	}
	return nil
}

// afterMutation refreshes gauges and publishes evt. The mutation is already committed,
// so handler failures are logged and counted but not returned.
func (s *service) afterMutation(ctx context.Context, evt event.Event) {
	s.recordInventory()

	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) recordInventory() {
	snap := s.store.Snapshot()
	metrics.RecordInventory(snap.Items, snap.Categories)
}

func movedFrom(before, after domain.Item) string {
	if before.Category != after.Category {
		return before.Category
	}
	return ""
}
