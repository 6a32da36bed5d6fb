// Package seed loads the initial inventory: categories and items validated against an
// embedded JSON schema.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/logger"
	"github.com/osse101/HomeInventory_Go/internal/validation"
)

// ErrInvalidSeed wraps every semantic seed validation failure
var ErrInvalidSeed = errors.New("invalid seed data")

// Data represents the JSON seed document
type Data struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Categories []string           `json:"categories"`
	Items      []domain.ItemDraft `json:"items"`
}

// ToSeed converts the document into store seed content
func (d *Data) ToSeed() inventory.Seed {
	return inventory.Seed{
		Categories: d.Categories,
		Items:      d.Items,
	}
}

// Loader handles loading and validating seed data
type Loader interface {
	// Load reads path, or the embedded default data set when path is empty, and checks it
	// against the schema.
	Load(ctx context.Context, path string) (*Data, error)
	// Validate checks what the schema cannot: unique categories, known item categories,
	// real calendar dates.
	Validate(data *Data) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, Schema); err != nil {
		return nil, fmt.Errorf(ErrMsgRegisterSchema, err)
	}
	return &loader{schemaValidator: v}, nil
}

func (l *loader) Load(ctx context.Context, path string) (*Data, error) {
	source := path
	raw := DefaultData
	if path == "" {
		source = DefaultSource
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadSeedFileFailed, err)
		}
		raw = b
	}

	if err := l.schemaValidator.ValidateBytes(raw, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaInvalid, source, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgSeedLoaded,
		"source", source,
		"version", data.Version,
		"categories", len(data.Categories),
		"items", len(data.Items))
	return &data, nil
}

func (l *loader) Validate(data *Data) error {
	if data == nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeed, ErrMsgDataNil)
	}

	known := make(map[string]bool, len(data.Categories))
	folded := make(map[string]bool, len(data.Categories))
	for _, name := range data.Categories {
		key := strings.ToLower(strings.TrimSpace(name))
		if folded[key] {
			return fmt.Errorf(ErrFmtDuplicateCategory, ErrInvalidSeed, name)
		}
		folded[key] = true
		known[strings.TrimSpace(name)] = true
	}

	for i := range data.Items {
		if err := validateItem(i, &data.Items[i], known); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(index int, item *domain.ItemDraft, known map[string]bool) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidSeed, index)
	}
	if !known[item.Category] {
		return fmt.Errorf(ErrFmtItemUnknownCategory, ErrInvalidSeed, item.Name, item.Category)
	}

	if !validDate(item.PurchaseDate) {
		return fmt.Errorf(ErrFmtItemBadDate, ErrInvalidSeed, item.Name, "purchase_date", item.PurchaseDate)
	}
	if item.Warranty != nil && item.Warranty.ExpiryDate != "" && !validDate(item.Warranty.ExpiryDate) {
		return fmt.Errorf(ErrFmtItemBadDate, ErrInvalidSeed, item.Name, "warranty expiry_date", item.Warranty.ExpiryDate)
	}

	if item.PurchasePrice < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidSeed, item.Name, "purchase_price")
	}
	if item.CurrentValue != nil && *item.CurrentValue < 0 {
		return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidSeed, item.Name, "current_value")
	}

	for _, r := range item.Receipts {
		if (r.URL == "") == (r.Data == "") {
			return fmt.Errorf(ErrFmtItemReceiptAmbiguous, ErrInvalidSeed, item.Name, r.Name)
		}
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}
