package inventory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

func TestSearchKey(t *testing.T) {
	key := searchKey(3, "LapTop")

	assert.True(t, strings.HasPrefix(key, CacheSchemaVersion+":"), "schema version leads the key")
	assert.Equal(t, key, searchKey(3, "laptop"), "query is case folded")
	assert.NotEqual(t, key, searchKey(4, "laptop"), "store version separates entries")
}

func TestSearchCache_GetSet(t *testing.T) {
	c := newSearchCache(CacheConfig{Size: 4, TTL: time.Minute})

	_, ok := c.Get(1, "sofa")
	assert.False(t, ok)

	items := []domain.Item{{ID: "id-1", Name: "Sofa", Images: []string{"a.jpg"}}}
	c.Set(1, "Sofa", items)
	items[0].Images[0] = "mutated.jpg"

	got, ok := c.Get(1, "sofa")
	require.True(t, ok)
	assert.Equal(t, "a.jpg", got[0].Images[0], "cache keeps a private copy")

	got[0].Name = "changed"
	again, ok := c.Get(1, "SOFA")
	require.True(t, ok)
	assert.Equal(t, "Sofa", again[0].Name, "callers get their own copy")

	_, ok = c.Get(2, "sofa")
	assert.False(t, ok, "a newer store version misses")

	assert.Equal(t, CacheStats{Hits: 2, Misses: 2, Size: 1}, c.GetStats())

	c.Clear()
	assert.Equal(t, 0, c.GetStats().Size)
}
