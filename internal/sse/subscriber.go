package sse

import (
	"context"

	"github.com/osse101/HomeInventory_Go/internal/event"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for every inventory event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.InventoryTypes))
	for _, t := range event.InventoryTypes {
		switch t {
		case event.CategoryAdded, event.CategoryRenamed, event.CategoryDeleted:
			s.bus.Subscribe(t, s.handleCategoryEvent)
		default:
			s.bus.Subscribe(t, s.handleItemEvent)
		}
		types = append(types, string(t))
	}

	logger.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) handleItemEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.ItemPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), ItemChangedPayload{
		Item:             payload.Item,
		PreviousCategory: payload.PreviousCategory,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "item_id", payload.Item.ID)
	return nil
}

func (s *Subscriber) handleCategoryEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.CategoryPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), CategoryChangedPayload{
		Category: payload.Category,
		OldName:  payload.OldName,
		Orphaned: payload.Orphaned,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "category", payload.Category.Name)
	return nil
}
