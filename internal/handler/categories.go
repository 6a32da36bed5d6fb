package handler

import (
	"net/http"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// CategoryRenameResponse reports a rename and its effect on items
type CategoryRenameResponse struct {
	Category domain.Category `json:"category"`
	OldName  string          `json:"old_name"`
	// Orphaned items still carry the old name
	Orphaned  int `json:"orphaned"`
	Relabeled int `json:"relabeled"`
}

// HandleListCategories lists categories with their item counts
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/v1/categories [get]
func HandleListCategories(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := svc.ListCategories(r.Context())
		if categories == nil {
			categories = []domain.Category{}
		}
		respondJSON(w, http.StatusOK, categories)
	}
}

// HandleGetCategory returns one category
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{id} [get]
func HandleGetCategory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := svc.GetCategory(r.Context(), idParam(r))
		if err != nil {
			respondServiceError(w, r, OpGetCategory, err)
			return
		}
		respondJSON(w, http.StatusOK, category)
	}
}

// HandleAddCategory creates an empty category
// @Summary Add category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category name"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/categories [post]
func HandleAddCategory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddCategory); err != nil {
			return
		}

		category, err := svc.AddCategory(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, r, OpAddCategory, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCategoryAdded, "category", category.Name)
		respondJSON(w, http.StatusCreated, category)
	}
}

// HandleRenameCategory renames a category
// @Summary Rename category
// @Description Items are relabeled only when the server runs with cascading renames. Otherwise they keep the old name and are reported as orphaned.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body CategoryRequest true "New name"
// @Success 200 {object} CategoryRenameResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/categories/{id} [put]
func HandleRenameCategory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRenameCategory); err != nil {
			return
		}

		result, err := svc.RenameCategory(r.Context(), idParam(r), req.Name)
		if err != nil {
			respondServiceError(w, r, OpRenameCategory, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCategoryRenamed,
			"old_name", result.OldName,
			"new_name", result.Category.Name,
			"orphaned", result.Orphaned)

		respondJSON(w, http.StatusOK, CategoryRenameResponse{
			Category:  result.Category,
			OldName:   result.OldName,
			Orphaned:  result.Orphaned,
			Relabeled: result.Relabeled,
		})
	}
}

// HandleDeleteCategory removes an empty category
// @Summary Delete category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Category still has items"
// @Router /api/v1/categories/{id} [delete]
func HandleDeleteCategory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := svc.DeleteCategory(r.Context(), idParam(r))
		if err != nil {
			respondServiceError(w, r, OpDeleteCategory, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgCategoryDeleted, "category", category.Name)
		respondJSON(w, http.StatusOK, category)
	}
}
