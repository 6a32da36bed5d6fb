package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/testing/leaktest"
)

const testWait = time.Second

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, testWait, 5*time.Millisecond)
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-client.EventChannel:
		require.True(t, ok, "client channel closed")
		return evt
	case <-time.After(testWait):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, client *Client) {
	t.Helper()
	select {
	case evt := <-client.EventChannel:
		t.Fatalf("unexpected event %q", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := startHub(t)

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, ok := <-client.EventChannel
	assert.False(t, ok, "unregister closes the client channel")
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := startHub(t)

	a := hub.Register(nil)
	b := hub.Register(nil)
	waitForClients(t, hub, 2)

	hub.Broadcast("item.added", map[string]string{"name": "Lamp"})

	for _, c := range []*Client{a, b} {
		evt := receive(t, c)
		assert.Equal(t, "item.added", evt.Type)
		assert.NotEmpty(t, evt.ID)
		assert.NotZero(t, evt.Timestamp)
		assert.Equal(t, map[string]string{"name": "Lamp"}, evt.Payload)
	}
}

func TestHub_FilterByEventType(t *testing.T) {
	hub := startHub(t)

	categories := hub.Register([]string{"category.added", "category.renamed"})
	everything := hub.Register(nil)
	waitForClients(t, hub, 2)

	hub.Broadcast("item.deleted", nil)
	hub.Broadcast("category.renamed", nil)

	assert.Equal(t, "item.deleted", receive(t, everything).Type)
	assert.Equal(t, "category.renamed", receive(t, everything).Type)

	assert.Equal(t, "category.renamed", receive(t, categories).Type)
	assertNoEvent(t, categories)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := startHub(t)

	slow := hub.Register(nil)
	fast := hub.Register([]string{"ping"})
	waitForClients(t, hub, 2)

	for i := 0; i < ClientEventBuffer+10; i++ {
		hub.Broadcast("item.updated", i)
	}
	hub.Broadcast("ping", nil)

	assert.Equal(t, "ping", receive(t, fast).Type)
	assert.LessOrEqual(t, len(slow.EventChannel), ClientEventBuffer)
}

func TestHub_StopClosesClients(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()
	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-client.EventChannel
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())

	late := hub.Register(nil)
	_, ok = <-late.EventChannel
	assert.False(t, ok, "register after stop returns a closed client")
	hub.Unregister(late.ID)

	checker.Check(0, testWait)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{
		ID:        "abc",
		Type:      "item.added",
		Timestamp: 1700000000,
		Payload:   map[string]int{"count": 1},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"id: abc\nevent: item.added\ndata: {\"id\":\"abc\",\"type\":\"item.added\",\"timestamp\":1700000000,\"payload\":{\"count\":1}}\n\n",
		string(msg))
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "item.added", []string{"item.added"}},
		{"trims and skips blanks", " item.added, ,category.deleted ", []string{"item.added", "category.deleted"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTypes(tt.param))
		})
	}
}
