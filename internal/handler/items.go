package handler

import (
	"net/http"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// ItemListResponse is the body of the item list endpoint
type ItemListResponse struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
	Query string        `json:"query,omitempty"`
}

// HandleListItems lists all items, or the items matching q
// @Summary List items
// @Description List every item in insertion order. With q, only items whose name, category, description, location, model or serial number contain q (case-insensitive).
// @Tags items
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} ItemListResponse
// @Router /api/v1/items [get]
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := GetOptionalQueryParam(r, QueryParamSearch, "")

		var items []domain.Item
		if query == "" {
			items = svc.ListItems(r.Context())
		} else {
			items = svc.SearchItems(r.Context(), query)
		}
		if items == nil {
			items = []domain.Item{}
		}

		respondJSON(w, http.StatusOK, ItemListResponse{
			Items: items,
			Count: len(items),
			Query: query,
		})
	}
}

// HandleGetItem returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func HandleGetItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.GetItem(r.Context(), idParam(r))
		if err != nil {
			respondServiceError(w, r, OpGetItem, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleAddItem creates an item
// @Summary Add item
// @Description Create an item. current_value defaults to purchase_price. An item without images gets a placeholder image.
// @Tags items
// @Accept json
// @Produce json
// @Param request body ItemRequest true "Item details"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items [post]
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddItem); err != nil {
			return
		}

		item, err := svc.AddItem(r.Context(), req.ToDraft())
		if err != nil {
			respondServiceError(w, r, OpAddItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemAdded, "item_id", item.ID, "category", item.Category)
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleUpdateItem replaces every field of an item except its ID and timestamp
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body ItemRequest true "Item details"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [put]
func HandleUpdateItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpUpdateItem); err != nil {
			return
		}

		item, err := svc.UpdateItem(r.Context(), idParam(r), req.ToDraft())
		if err != nil {
			respondServiceError(w, r, OpUpdateItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemUpdated, "item_id", item.ID)
		respondJSON(w, http.StatusOK, item)
	}
}

// HandlePatchItem updates the fields present in the body
// @Summary Patch item
// @Description Partial update. An empty warranty object removes the warranty.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body PatchItemRequest true "Fields to change"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [patch]
func HandlePatchItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PatchItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpPatchItem); err != nil {
			return
		}

		item, err := svc.PatchItem(r.Context(), idParam(r), req.ToPatch())
		if err != nil {
			respondServiceError(w, r, OpPatchItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemUpdated, "item_id", item.ID)
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleDeleteItem removes an item and returns it so the client can offer undo
// @Summary Delete item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func HandleDeleteItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := svc.DeleteItem(r.Context(), idParam(r))
		if err != nil {
			respondServiceError(w, r, OpDeleteItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemDeleted, "item_id", item.ID, "category", item.Category)
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleRestoreItem re-inserts a deleted item under its original ID
// @Summary Restore item
// @Description Undo a delete by posting back the item returned from DELETE.
// @Tags items
// @Accept json
// @Produce json
// @Param request body RestoreItemRequest true "Deleted item"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/items/restore [post]
func HandleRestoreItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RestoreItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRestoreItem); err != nil {
			return
		}

		item, err := svc.RestoreItem(r.Context(), req.ToItem())
		if err != nil {
			respondServiceError(w, r, OpRestoreItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemRestored, "item_id", item.ID)
		respondJSON(w, http.StatusCreated, item)
	}
}
