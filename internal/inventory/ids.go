package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces unique identifiers.
// Successive IDs must sort lexicographically in generation order: the store
// relies on that to keep the item list in insertion order across restores.
type IDGenerator interface {
	NewID() string
}

// UUIDv7Generator produces time-ordered UUIDs
type UUIDv7Generator struct{}

func (UUIDv7Generator) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SequentialIDGenerator produces zero-padded sequential IDs such as "item-000001".
// Deterministic, so tests use it.
type SequentialIDGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewSequentialIDGenerator creates a generator whose first ID is prefix + "000001"
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{Prefix: prefix}
}

func (g *SequentialIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s%06d", g.Prefix, g.next)
}

// Clock abstracts time retrieval so item timestamps are deterministic in tests
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
