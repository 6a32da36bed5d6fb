package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dateStruct struct {
	Date string `json:"date" validate:"dateonly"`
}

type imageStruct struct {
	Images []string `json:"images" validate:"dive,imageref"`
}

func TestValidator_DateOnly(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid date", "2024-02-29", false},
		{"empty allowed", "", false},
		{"not a leap year", "2023-02-29", true},
		{"wrong layout", "01/15/2023", true},
		{"timestamp", "2023-01-15T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(dateStruct{Date: tt.date})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ImageRef(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		image   string
		wantErr bool
	}{
		{"https url", "https://cdn.example.com/a.jpg", false},
		{"http url", "http://example.com/a.jpg", false},
		{"absolute path", "/placeholder.svg?height=400", false},
		{"data uri", "data:image/jpeg;base64,/9j/4AAQ", false},
		{"bare slash", "/", true},
		{"relative path", "images/a.jpg", true},
		{"non image data uri", "data:text/plain;base64,aGk=", true},
		{"ftp", "ftp://example.com/a.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(imageStruct{Images: []string{tt.image}})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("Uses JSON paths", func(t *testing.T) {
		req := validItemRequest()
		req.Name = ""
		req.Warranty.ExpiryDate = "later"
		req.Images = []string{"nope"}

		fields := FormatValidationError(v.ValidateStruct(req))

		assert.Equal(t, "This field is required", fields["name"])
		assert.Equal(t, "Must be a date in YYYY-MM-DD format", fields["warranty.expiry_date"])
		assert.Contains(t, fields, "images[0]")
	})

	t.Run("Embedded struct fields are flattened", func(t *testing.T) {
		req := RestoreItemRequest{ID: "x", ItemRequest: validItemRequest()}
		req.Category = ""

		fields := FormatValidationError(v.ValidateStruct(req))

		require.Len(t, fields, 1)
		assert.Contains(t, fields, "category")
	})

	t.Run("Non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestItemRequest_ToDraft(t *testing.T) {
	req := validItemRequest()
	req.Warranty = &WarrantyRequest{}

	draft := req.ToDraft()

	assert.Nil(t, draft.Warranty, "empty warranty is dropped")
	assert.Equal(t, 2000.0, *draft.CurrentValue)
	require.Len(t, draft.Receipts, 1)
	assert.Equal(t, "https://example.com/invoice.pdf", draft.Receipts[0].URL)
}
