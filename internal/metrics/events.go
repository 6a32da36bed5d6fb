package metrics

import (
	"context"

	"github.com/osse101/HomeInventory_Go/internal/event"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all inventory events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.InventoryTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics.
// Gauges of renamed or deleted categories are dropped so the old label stops being exported.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CategoryRenamed:
		payload, err := event.DecodePayload[event.CategoryPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		if payload.OldName != "" && payload.OldName != payload.Category.Name {
			CategoryItems.DeleteLabelValues(payload.OldName)
		}

	case event.CategoryDeleted:
		payload, err := event.DecodePayload[event.CategoryPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		CategoryItems.DeleteLabelValues(payload.Category.Name)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
