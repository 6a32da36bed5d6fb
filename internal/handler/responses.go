package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps its error onto an HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" failed", "error", err, "status", status)
	}

	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgDuplicateItemError    = "An item with that ID already exists"
	ErrMsgCategoryNotFoundError = "Category not found"
	ErrMsgCategoryExistsError   = "A category with that name already exists"
	ErrMsgCategoryInUseError    = "Category still has items. Move or delete them first"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
	ErrMsgCountDriftError       = "Inventory counts are out of sync"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Invalid-input errors carry their detail through, since it names the offending field or value.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, ErrMsgCategoryNotFoundError
	case errors.Is(err, domain.ErrDuplicateItem):
		return http.StatusConflict, ErrMsgDuplicateItemError
	case errors.Is(err, domain.ErrCategoryExists):
		return http.StatusConflict, ErrMsgCategoryExistsError
	case errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusConflict, ErrMsgCategoryInUseError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrCountDrift):
		return http.StatusInternalServerError, ErrMsgCountDriftError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
