package inventory

import "time"

// Search cache defaults
const (
	DefaultSearchCacheSize = 256
	DefaultSearchCacheTTL  = 5 * time.Minute
)

// Operation names used as metric labels
const (
	OpAddItem        = "add_item"
	OpUpdateItem     = "update_item"
	OpPatchItem      = "patch_item"
	OpDeleteItem     = "delete_item"
	OpRestoreItem    = "restore_item"
	OpSearchItems    = "search_items"
	OpAddCategory    = "add_category"
	OpRenameCategory = "rename_category"
	OpDeleteCategory = "delete_category"
)

// Log messages
const (
	LogMsgItemAdded       = "Item added"
	LogMsgItemUpdated     = "Item updated"
	LogMsgItemDeleted     = "Item deleted"
	LogMsgItemRestored    = "Item restored"
	LogMsgCategoryAdded   = "Category added"
	LogMsgCategoryRenamed = "Category renamed"
	LogMsgCategoryDeleted = "Category deleted"
	LogMsgCategoryOrphans = "Category rename left items on the old name"
	LogMsgPublishFailed   = "Event handlers failed after commit"
	LogMsgCountDrift      = "Category counts drifted from item list"
	LogMsgServiceShutdown = "Inventory service shutting down"
)

// ErrFmtUnknownCategory wraps ErrInvalidInput for item writes naming a missing category
const ErrFmtUnknownCategory = "%w: unknown category %q"
