package domain

// PlaceholderImage is stored when an item is created without any image
const PlaceholderImage = "/placeholder.svg?height=400&width=600&text=No+Image"

// DateLayout is the layout of every date string on items, warranties and receipts
const DateLayout = "2006-01-02"

// Event types published after inventory mutations
const (
	EventTypeItemAdded       = "item.added"
	EventTypeItemUpdated     = "item.updated"
	EventTypeItemDeleted     = "item.deleted"
	EventTypeItemRestored    = "item.restored"
	EventTypeCategoryAdded   = "category.added"
	EventTypeCategoryRenamed = "category.renamed"
	EventTypeCategoryDeleted = "category.deleted"
)
