package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Inventory event types
const (
	ItemAdded       Type = domain.EventTypeItemAdded
	ItemUpdated     Type = domain.EventTypeItemUpdated
	ItemDeleted     Type = domain.EventTypeItemDeleted
	ItemRestored    Type = domain.EventTypeItemRestored
	CategoryAdded   Type = domain.EventTypeCategoryAdded
	CategoryRenamed Type = domain.EventTypeCategoryRenamed
	CategoryDeleted Type = domain.EventTypeCategoryDeleted
)

// InventoryTypes lists every event type published by the inventory service
var InventoryTypes = []Type{
	ItemAdded,
	ItemUpdated,
	ItemDeleted,
	ItemRestored,
	CategoryAdded,
	CategoryRenamed,
	CategoryDeleted,
}

// Typed event payloads for type safety

// ItemPayloadV1 is the payload of every item event
type ItemPayloadV1 struct {
	Item domain.Item `json:"item"`
	// PreviousCategory is set on updates that moved the item to another category
	PreviousCategory string `json:"previous_category,omitempty"`
}

// CategoryPayloadV1 is the payload of every category event
type CategoryPayloadV1 struct {
	Category domain.Category `json:"category"`
	OldName  string          `json:"old_name,omitempty"`
	Orphaned int             `json:"orphaned,omitempty"`
}

// NewItemEvent creates an item event with a typed payload
func NewItemEvent(t Type, item domain.Item, previousCategory string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: ItemPayloadV1{
			Item:             item,
			PreviousCategory: previousCategory,
		},
		Timestamp: time.Now().Unix(),
	}
}

// NewCategoryEvent creates a category event with a typed payload
func NewCategoryEvent(t Type, category domain.Category, oldName string, orphaned int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: CategoryPayloadV1{
			Category: category,
			OldName:  oldName,
			Orphaned: orphaned,
		},
		Timestamp: time.Now().Unix(),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event's type before returning
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every type in types
func (b *MemoryBus) SubscribeAll(types []Type, handler Handler) {
	for _, t := range types {
		b.Subscribe(t, handler)
	}
}
