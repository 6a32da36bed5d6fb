package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(ItemAdded, func(ctx context.Context, event Event) error {
		assert.Equal(t, ItemAdded, event.Type)
		payload, ok := event.Payload.(ItemPayloadV1)
		require.True(t, ok, "payload should be ItemPayloadV1")
		assert.Equal(t, "Lamp", payload.Item.Name)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewItemEvent(ItemAdded, domain.Item{ID: "1", Name: "Lamp"}, ""))

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(ItemDeleted, handler)
	bus.Subscribe(ItemDeleted, handler)

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ItemDeleted})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(CategoryAdded, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: CategoryAdded})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: CategoryDeleted}))
}

func TestMemoryBus_SubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}

	bus.SubscribeAll(InventoryTypes, func(ctx context.Context, event Event) error {
		seen[event.Type]++
		return nil
	})

	for _, typ := range InventoryTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}

	assert.Len(t, seen, len(InventoryTypes))
	for _, typ := range InventoryTypes {
		assert.Equal(t, 1, seen[typ], "type %s", typ)
	}
}

func TestNewCategoryEvent(t *testing.T) {
	evt := NewCategoryEvent(CategoryRenamed, domain.Category{ID: "c1", Name: "Gadgets"}, "Electronics", 2)

	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, CategoryRenamed, evt.Type)
	assert.NotZero(t, evt.Timestamp)

	payload, ok := evt.Payload.(CategoryPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "Electronics", payload.OldName)
	assert.Equal(t, 2, payload.Orphaned)
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload", func(t *testing.T) {
		evt := NewItemEvent(ItemUpdated, domain.Item{ID: "1", Category: "Art"}, "Books")
		payload, err := DecodePayload[ItemPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "Books", payload.PreviousCategory)
	})

	t.Run("generic map payload", func(t *testing.T) {
		var generic map[string]interface{}
		raw, err := json.Marshal(CategoryPayloadV1{Category: domain.Category{Name: "Tools", ItemCount: 3}})
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &generic))

		payload, err := DecodePayload[CategoryPayloadV1](generic)
		require.NoError(t, err)
		assert.Equal(t, "Tools", payload.Category.Name)
		assert.Equal(t, 3, payload.Category.ItemCount)
	})
}
