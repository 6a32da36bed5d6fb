package sse

import "github.com/osse101/HomeInventory_Go/internal/domain"

// ItemChangedPayload is the SSE payload of every item event.
// Deleted events carry the full removed item so a client can offer undo.
type ItemChangedPayload struct {
	Item             domain.Item `json:"item"`
	PreviousCategory string      `json:"previous_category,omitempty"`
}

// CategoryChangedPayload is the SSE payload of every category event
type CategoryChangedPayload struct {
	Category domain.Category `json:"category"`
	OldName  string          `json:"old_name,omitempty"`
	// Orphaned counts items left on OldName by a rename
	Orphaned int `json:"orphaned,omitempty"`
}

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}
