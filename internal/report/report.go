// Package report renders the inventory as a downloadable CSV report.
package report

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// Options controls report contents
type Options struct {
	Type Type
	// Categories restricts the report to items in these categories. Empty means all.
	Categories      []string
	IncludeWarranty bool
	IncludeImages   bool
	IncludeReceipts bool
	// Date is printed in the trailer and file name
	Date time.Time
}

// ParseType validates a report type name. An empty name selects the full report.
func ParseType(s string) (Type, error) {
	if s == "" {
		return TypeFull, nil
	}
	t := Type(s)
	if !slices.Contains(Types, t) {
		return "", fmt.Errorf("%w: unknown report type %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// FileName returns the download name of a report generated on date
func FileName(t Type, date time.Time) string {
	return fmt.Sprintf(FileNameFormat, t, date.Format(domain.DateLayout))
}

// Select returns the items a report of the given options contains, in report order.
// items is not modified.
func Select(items []domain.Item, opts Options) []domain.Item {
	selected := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, item.Category) {
			continue
		}
		if opts.Type == TypeWarranty && item.Warranty.IsEmpty() {
			continue
		}
		selected = append(selected, item)
	}

	switch opts.Type {
	case TypeSummary:
		slices.SortStableFunc(selected, func(a, b domain.Item) int {
			return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
		})
	case TypeValue:
		slices.SortStableFunc(selected, func(a, b domain.Item) int {
			return cmp.Compare(b.Value(), a.Value())
		})
	case TypeWarranty:
		slices.SortStableFunc(selected, func(a, b domain.Item) int {
			return compareExpiry(a.Warranty.ExpiryDate, b.Warranty.ExpiryDate)
		})
	}
	return selected
}

// Write renders the report as CSV: a header row, one row per selected item, then a blank
// line and the generation date.
func Write(w io.Writer, items []domain.Item, opts Options) error {
	if opts.Type == "" {
		opts.Type = TypeFull
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	withWarranty := opts.IncludeWarranty || opts.Type == TypeWarranty

	cols := header(withWarranty, opts)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}

	selected := Select(items, opts)
	var total float64
	for _, item := range selected {
		total += item.Value()
		if err := cw.Write(row(item, withWarranty, opts)); err != nil {
			return err
		}
	}

	if opts.Type == TypeSummary {
		totalRow := make([]string, len(cols))
		totalRow[0] = LabelTotalValue
		totalRow[4] = FormatMoney(total)
		if err := cw.Write(totalRow); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n"+GeneratedOnFormat+"\n", opts.Date.Format(domain.DateLayout))
	return err
}

// FormatMoney renders an amount the way the report prints it, e.g. "$2499" or "$12.5"
func FormatMoney(v float64) string {
	return CurrencySymbol + strconv.FormatFloat(v, 'f', -1, 64)
}

func header(withWarranty bool, opts Options) []string {
	cols := []string{ColItemName, ColCategory, ColPurchaseDate, ColPurchasePrice, ColCurrentValue, ColLocation}
	if withWarranty {
		cols = append(cols, ColWarrantyProvider, ColWarrantyExpiry)
	}
	if opts.IncludeImages {
		cols = append(cols, ColImageCount)
	}
	if opts.IncludeReceipts {
		cols = append(cols, ColReceiptCount)
	}
	return cols
}

func row(item domain.Item, withWarranty bool, opts Options) []string {
	category := item.Category
	if category == "" {
		category = DefaultCategoryName
	}
	rec := []string{
		item.Name,
		category,
		item.PurchaseDate,
		FormatMoney(item.PurchasePrice),
		FormatMoney(item.Value()),
		item.Location,
	}
	if withWarranty {
		var provider, expiry string
		if item.Warranty != nil {
			provider, expiry = item.Warranty.Provider, item.Warranty.ExpiryDate
		}
		rec = append(rec, provider, expiry)
	}
	if opts.IncludeImages {
		rec = append(rec, strconv.Itoa(countImages(item.Images)))
	}
	if opts.IncludeReceipts {
		rec = append(rec, strconv.Itoa(len(item.Receipts)))
	}
	return rec
}

// countImages ignores the placeholder the store inserts for items without images
func countImages(images []string) int {
	n := 0
	for _, img := range images {
		if img != domain.PlaceholderImage {
			n++
		}
	}
	return n
}

// compareExpiry orders YYYY-MM-DD dates ascending with missing dates last
func compareExpiry(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return cmp.Compare(a, b)
}
