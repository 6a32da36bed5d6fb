package inventory

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// CacheSchemaVersion prefixes every search cache key.
// Increment this when the cached data structure changes so old entries are never hit.
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the search result cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache settings used when none are configured
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: DefaultSearchCacheSize,
		TTL:  DefaultSearchCacheTTL,
	}
}

// CacheStats reports search cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedSearchEntry struct {
	Items    []domain.Item
	CachedAt time.Time
}

// searchCache holds search results keyed by schema and store version plus the folded query.
// A store mutation bumps the version, so entries from before it are never hit again
// and age out through the LRU.
type searchCache struct {
	lru    *expirable.LRU[string, *cachedSearchEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newSearchCache(config CacheConfig) *searchCache {
	if config.Size <= 0 {
		config.Size = DefaultSearchCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultSearchCacheTTL
	}
	return &searchCache{
		lru: expirable.NewLRU[string, *cachedSearchEntry](config.Size, nil, config.TTL),
	}
}

func searchKey(version uint64, query string) string {
	return CacheSchemaVersion + ":" + strconv.FormatUint(version, 10) + ":" + cases.Lower(language.Und).String(query)
}

// Get returns a copy of the cached results, if present
func (c *searchCache) Get(version uint64, query string) ([]domain.Item, bool) {
	entry, found := c.lru.Get(searchKey(version, query))
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return cloneItems(entry.Items), true
}

// Set stores a private copy of items
func (c *searchCache) Set(version uint64, query string, items []domain.Item) {
	c.lru.Add(searchKey(version, query), &cachedSearchEntry{
		Items:    cloneItems(items),
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache.
func (c *searchCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit and miss counters and the current entry count
func (c *searchCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
