package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Query parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Item operation error messages
	ErrMsgAddItemFailed     = "Failed to add item"
	ErrMsgUpdateItemFailed  = "Failed to update item"
	ErrMsgDeleteItemFailed  = "Failed to delete item"
	ErrMsgRestoreItemFailed = "Failed to restore item"
	ErrMsgGetItemFailed     = "Failed to get item"

	// Category operation error messages
	ErrMsgAddCategoryFailed    = "Failed to add category"
	ErrMsgRenameCategoryFailed = "Failed to rename category"
	ErrMsgDeleteCategoryFailed = "Failed to delete category"

	// Report error messages
	ErrMsgExportFailed = "Failed to export report"
)

// Log messages
const (
	LogMsgDecodeFailedFormat   = "Failed to decode %s request"
	LogMsgDecodedFormat        = "%s request decoded"
	LogMsgValidationFailed     = "Request validation failed"
	LogMsgServiceErrorFormat   = "%s failed"
	LogMsgItemAdded            = "Item added"
	LogMsgItemUpdated          = "Item updated"
	LogMsgItemDeleted          = "Item deleted"
	LogMsgItemRestored         = "Item restored"
	LogMsgCategoryAdded        = "Category added"
	LogMsgCategoryRenamed      = "Category renamed"
	LogMsgCategoryDeleted      = "Category deleted"
	LogMsgReportExported       = "Report exported"
	LogMsgReadinessCheckFailed = "Readiness check failed"
	LogMsgEncodeFailed         = "Failed to encode JSON response"
	LogMsgWriteFailed          = "Failed to write response buffer"
)

// Operation names used in logs and error responses
const (
	OpAddItem        = "Add item"
	OpUpdateItem     = "Update item"
	OpPatchItem      = "Patch item"
	OpDeleteItem     = "Delete item"
	OpRestoreItem    = "Restore item"
	OpGetItem        = "Get item"
	OpAddCategory    = "Add category"
	OpRenameCategory = "Rename category"
	OpDeleteCategory = "Delete category"
	OpGetCategory    = "Get category"
	OpExportReport   = "Export report"
)

// URL and query parameter names
const (
	URLParamID = "id"

	QueryParamSearch          = "q"
	QueryParamType            = "type"
	QueryParamCategories      = "categories"
	QueryParamIncludeWarranty = "include_warranty"
	QueryParamIncludeImages   = "include_images"
	QueryParamIncludeReceipts = "include_receipts"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgCountDrift     = "category counts out of sync"
	HealthMsgCheckFailed    = "health check failed"
)
