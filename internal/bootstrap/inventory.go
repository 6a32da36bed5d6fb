package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/HomeInventory_Go/internal/config"
	"github.com/osse101/HomeInventory_Go/internal/event"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/seed"
)

// InitializeInventory loads the configured seed (or the embedded default),
// builds the store and wraps it in the inventory service.
func InitializeInventory(ctx context.Context, cfg *config.Config, bus event.Bus, clock inventory.Clock) (inventory.Service, error) {
	loader, err := seed.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLoader, err)
	}

	data, err := loader.Load(ctx, cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
	}
	if err := loader.Validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidSeed, err)
	}

	store := inventory.NewStore(data.ToSeed(),
		inventory.WithClock(clock),
		inventory.WithCascadeRenames(cfg.CascadeRenames))
	if err := store.Verify(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInitialCountDrift, err)
	}

	svc := inventory.NewService(store, bus, inventory.CacheConfig{
		Size: cfg.SearchCacheSize,
		TTL:  cfg.SearchCacheTTL,
	})

	snapshot := store.Snapshot()
	slog.Info(LogMsgInventoryInitialized,
		"items", len(snapshot.Items),
		"categories", len(snapshot.Categories),
		"cascade_renames", cfg.CascadeRenames)

	return svc, nil
}
