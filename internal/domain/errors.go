package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgDuplicateItem = "item already exists"

	// Category errors
	ErrMsgCategoryNotFound = "category not found"
	ErrMsgCategoryExists   = "category already exists"
	ErrMsgCategoryInUse    = "category still has items"

	// Consistency errors
	ErrMsgCountDrift = "category count drift"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItem = errors.New(ErrMsgDuplicateItem)

	// Category errors
	ErrCategoryNotFound = errors.New(ErrMsgCategoryNotFound)
	ErrCategoryExists   = errors.New(ErrMsgCategoryExists)
	ErrCategoryInUse    = errors.New(ErrMsgCategoryInUse)

	// Consistency errors
	ErrCountDrift = errors.New(ErrMsgCountDrift)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
