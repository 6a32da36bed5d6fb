package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/HomeInventory_Go/internal/event"
	"github.com/osse101/HomeInventory_Go/internal/metrics"
	"github.com/osse101/HomeInventory_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and the SSE hub that streams bus events to clients.
// The hub is started; GracefulShutdown stops it.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()

	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.InventoryTypes))
	return bus, hub
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Metrics collector (per-category gauges and event counters)
// - SSE subscriber (forwards inventory events to connected clients)
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
