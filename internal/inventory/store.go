package inventory

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// Seed is the initial content of a store
type Seed struct {
	Categories []string
	Items      []domain.ItemDraft
}

// Snapshot is a consistent copy of the store taken under a single read lock
type Snapshot struct {
	Items      []domain.Item
	Categories []domain.Category
	Version    uint64
}

// RenameResult describes the effect of a category rename
type RenameResult struct {
	Category domain.Category
	OldName  string
	// Orphaned is the number of items still carrying OldName after a non-cascading rename
	Orphaned int
	// Relabeled is the number of items moved to the new name by a cascading rename
	Relabeled int
}

// Store is the single in-memory source of truth for items and categories.
//
// Items are kept ordered by ID, which is generation order for IDs produced by
// the store's IDGenerator. Category item counts are maintained incrementally
// and are only ever mutated together with the item list, under the same lock.
type Store struct {
	mu         sync.RWMutex
	items      []domain.Item
	categories []domain.Category
	version    uint64

	ids            IDGenerator
	clock          Clock
	cascadeRenames bool
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the generator used for item, receipt and category IDs
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock sets the clock used to timestamp new items
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithCascadeRenames makes category renames relabel the items that referenced the old name
func WithCascadeRenames(enabled bool) Option {
	return func(s *Store) { s.cascadeRenames = enabled }
}

// NewStore creates a store holding the seed categories and items.
// Blank and duplicate seed category names are skipped.
func NewStore(seed Seed, opts ...Option) *Store {
	s := &Store{
		ids:   UUIDv7Generator{},
		clock: RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, name := range seed.Categories {
		_, _ = s.addCategoryLocked(name)
	}
	for _, draft := range seed.Items {
		s.addItemLocked(draft)
	}
	s.version = 0

	return s
}

// Version returns a counter that changes on every successful mutation
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Items returns a copy of the item list in store order
func (s *Store) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Categories returns a copy of the categories with their current counts
func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Snapshot returns items, categories and version as observed at one instant
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items:      cloneItems(s.items),
		Categories: slices.Clone(s.categories),
		Version:    s.version,
	}
}

// GetItem looks up an item by ID
func (s *Store) GetItem(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfItem(id)
	if idx < 0 {
		return domain.Item{}, false
	}
	return s.items[idx].Clone(), true
}

// AddItem stores a new item and returns its generated ID.
// CurrentValue defaults to PurchasePrice, and an item without images gets the placeholder image.
func (s *Store) AddItem(draft domain.ItemDraft) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.addItemLocked(draft)
	s.version++
	return id
}

func (s *Store) addItemLocked(draft domain.ItemDraft) string {
	item := draft.ToItem().Clone()
	item.ID = s.ids.NewID()
	item.Timestamp = s.clock.Now()
	s.normalize(&item)

	s.insertItem(item)
	s.adjustCount(item.Category, 1)
	return item.ID
}

// UpdateItem replaces the stored fields of an item, keeping its ID.
// Returns the value it replaced and the value now stored.
// A zero Timestamp in updated keeps the original creation time.
// Returns ErrItemNotFound, leaving the store untouched, if id is unknown.
func (s *Store) UpdateItem(id string, updated domain.Item) (before, after domain.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfItem(id)
	if idx < 0 {
		return domain.Item{}, domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	before = s.items[idx].Clone()
	s.replaceLocked(idx, updated)
	return before, s.items[idx].Clone(), nil
}

// ModifyItem applies fn to a copy of the stored item and stores the result,
// all under the write lock. An error from fn aborts the change.
// Returns the item before and after the change.
func (s *Store) ModifyItem(id string, fn func(*domain.Item) error) (before, after domain.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfItem(id)
	if idx < 0 {
		return domain.Item{}, domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	before = s.items[idx].Clone()
	working := before.Clone()
	if err := fn(&working); err != nil {
		return domain.Item{}, domain.Item{}, err
	}

	s.replaceLocked(idx, working)
	return before, s.items[idx].Clone(), nil
}

func (s *Store) replaceLocked(idx int, updated domain.Item) {
	existing := s.items[idx]
	item := updated.Clone()
	item.ID = existing.ID
	if item.Timestamp.IsZero() {
		item.Timestamp = existing.Timestamp
	}
	s.normalize(&item)

	if existing.Category != item.Category {
		s.adjustCount(existing.Category, -1)
		s.adjustCount(item.Category, 1)
	}
	s.items[idx] = item
	s.version++
}

// DeleteItem removes an item and returns the removed value.
// The store keeps no tombstone: callers that want undo must hold on to the returned item.
// Returns ErrItemNotFound, leaving the store untouched, if id is unknown.
func (s *Store) DeleteItem(id string) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfItem(id)
	if idx < 0 {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	removed := s.items[idx]
	s.adjustCount(removed.Category, -1)
	s.items = slices.Delete(s.items, idx, idx+1)
	s.version++
	return removed.Clone(), nil
}

// RestoreItem re-inserts a previously deleted item at its ID-ordered position.
// The item must keep its original ID; an ID already present is rejected.
// Returns the item as stored.
func (s *Store) RestoreItem(item domain.Item) (domain.Item, error) {
	if item.ID == "" {
		return domain.Item{}, fmt.Errorf("%w: restored item has no id", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfItem(item.ID) >= 0 {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.ID)
	}

	restored := item.Clone()
	if restored.Timestamp.IsZero() {
		restored.Timestamp = s.clock.Now()
	}
	s.normalize(&restored)

	s.insertItem(restored)
	s.adjustCount(restored.Category, 1)
	s.version++
	return restored.Clone(), nil
}

// GetCategory looks up a category by ID
func (s *Store) GetCategory(id string) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfCategory(id)
	if idx < 0 {
		return domain.Category{}, false
	}
	return s.categories[idx], true
}

// CategoryByName looks up a category by its exact name
func (s *Store) CategoryByName(name string) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Category{}, false
}

// AddCategory creates a category. Names are unique, compared case-insensitively.
// Items that already carry the name are counted.
func (s *Store) AddCategory(name string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.addCategoryLocked(name)
	if err != nil {
		return domain.Category{}, err
	}
	s.version++
	return c, nil
}

func (s *Store) addCategoryLocked(name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is empty", domain.ErrInvalidInput)
	}
	if s.nameTaken(name, "") {
		return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryExists, name)
	}

	c := domain.Category{
		ID:        s.ids.NewID(),
		Name:      name,
		ItemCount: s.countItems(name),
	}
	s.categories = append(s.categories, c)
	return c, nil
}

// UpdateCategory renames a category.
//
// Without cascading, items keep the old label and the category's count is
// recomputed for its new name; the number of items left on the old label is
// reported as Orphaned. With cascading, those items are relabeled instead.
func (s *Store) UpdateCategory(id, name string) (RenameResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return RenameResult{}, fmt.Errorf("%w: category name is empty", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfCategory(id)
	if idx < 0 {
		return RenameResult{}, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	if s.nameTaken(name, id) {
		return RenameResult{}, fmt.Errorf("%w: %s", domain.ErrCategoryExists, name)
	}

	oldName := s.categories[idx].Name
	result := RenameResult{OldName: oldName}
	if oldName == name {
		result.Category = s.categories[idx]
		return result, nil
	}

	if s.cascadeRenames {
		for i := range s.items {
			if s.items[i].Category == oldName {
				s.items[i].Category = name
				result.Relabeled++
			}
		}
		s.categories[idx].Name = name
	} else {
		s.categories[idx].Name = name
		s.categories[idx].ItemCount = s.countItems(name)
		result.Orphaned = s.countItems(oldName)
	}

	s.version++
	result.Category = s.categories[idx]
	return result, nil
}

// DeleteCategory removes a category that no item references.
// Returns ErrCategoryInUse while its count is above zero.
func (s *Store) DeleteCategory(id string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfCategory(id)
	if idx < 0 {
		return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}

	c := s.categories[idx]
	if c.ItemCount > 0 {
		return domain.Category{}, fmt.Errorf("%w: %s has %d items", domain.ErrCategoryInUse, c.Name, c.ItemCount)
	}

	s.categories = slices.Delete(s.categories, idx, idx+1)
	s.version++
	return c, nil
}

// Verify recounts every category from the item list and compares the result
// with the incrementally maintained counters.
func (s *Store) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actual := make(map[string]int, len(s.categories))
	for _, item := range s.items {
		actual[item.Category]++
	}

	var drift []string
	for _, c := range s.categories {
		if c.ItemCount != actual[c.Name] {
			drift = append(drift, fmt.Sprintf("%s: counted %d, holds %d", c.Name, c.ItemCount, actual[c.Name]))
		}
	}

	if len(drift) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrCountDrift, strings.Join(drift, "; "))
	}
	return nil
}

// normalize applies the storage guarantees shared by add, update and restore.
// Caller must hold the write lock.
func (s *Store) normalize(item *domain.Item) {
	if len(item.Images) == 0 {
		item.Images = []string{domain.PlaceholderImage}
	}
	if item.Warranty.IsEmpty() {
		item.Warranty = nil
	}
	for i := range item.Receipts {
		if item.Receipts[i].ID == "" {
			item.Receipts[i].ID = s.ids.NewID()
		}
	}
}

func (s *Store) insertItem(item domain.Item) {
	pos, _ := slices.BinarySearchFunc(s.items, item.ID, func(e domain.Item, id string) int {
		return cmp.Compare(e.ID, id)
	})
	s.items = slices.Insert(s.items, pos, item)
}

// adjustCount moves the count of the named category by delta, floored at zero.
// Names without a category are ignored.
func (s *Store) adjustCount(name string, delta int) {
	for i := range s.categories {
		if s.categories[i].Name == name {
			s.categories[i].ItemCount = max(0, s.categories[i].ItemCount+delta)
			return
		}
	}
}

func (s *Store) countItems(name string) int {
	n := 0
	for _, item := range s.items {
		if item.Category == name {
			n++
		}
	}
	return n
}

func (s *Store) nameTaken(name, exceptID string) bool {
	for _, c := range s.categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) indexOfItem(id string) int {
	return slices.IndexFunc(s.items, func(item domain.Item) bool { return item.ID == id })
}

func (s *Store) indexOfCategory(id string) int {
	return slices.IndexFunc(s.categories, func(c domain.Category) bool { return c.ID == id })
}

func cloneItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
