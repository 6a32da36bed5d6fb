package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/event"
)

func TestSubscriber_ForwardsItemEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	item := domain.Item{ID: "id-1", Name: "Desk", Category: "Furniture"}
	require.NoError(t, bus.Publish(context.Background(), event.NewItemEvent(event.ItemUpdated, item, "Office")))

	evt := receive(t, client)
	assert.Equal(t, "item.updated", evt.Type)
	payload, ok := evt.Payload.(ItemChangedPayload)
	require.True(t, ok)
	assert.Equal(t, item, payload.Item)
	assert.Equal(t, "Office", payload.PreviousCategory)
}

func TestSubscriber_ForwardsCategoryEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register([]string{"category.renamed"})
	waitForClients(t, hub, 1)

	cat := domain.Category{ID: "c1", Name: "Gadgets"}
	require.NoError(t, bus.Publish(context.Background(), event.NewCategoryEvent(event.CategoryRenamed, cat, "Electronics", 2)))

	evt := receive(t, client)
	payload, ok := evt.Payload.(CategoryChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "Gadgets", payload.Category.Name)
	assert.Equal(t, "Electronics", payload.OldName)
	assert.Equal(t, 2, payload.Orphaned)
}

func TestSubscriber_IgnoresBadPayload(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	err := bus.Publish(context.Background(), event.Event{Type: event.ItemAdded, Payload: "not an item"})
	assert.NoError(t, err)
	assertNoEvent(t, client)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	server := httptest.NewServer(Handler(hub))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"?types=item.deleted", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	connected := readEvent(t, reader)
	assert.Equal(t, EventTypeConnected, connected.Type)

	waitForClients(t, hub, 1)
	hub.Broadcast("item.added", nil)
	hub.Broadcast("item.deleted", map[string]string{"id": "x"})

	deleted := readEvent(t, reader)
	assert.Equal(t, "item.deleted", deleted.Type)
	assert.Equal(t, map[string]interface{}{"id": "x"}, deleted.Payload)

	cancel()
	waitForClients(t, hub, 0)
}

// readEvent reads one "id/event/data" block and decodes its data line
func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	var evt Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return evt
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(t, json.Unmarshal([]byte(data), &evt))
		}
	}
}
