package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

var reportDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func reportItems() []domain.Item {
	return []domain.Item{
		{
			ID: "1", Name: `MacBook Pro 16"`, Category: "Electronics", PurchaseDate: "2023-01-15",
			PurchasePrice: 2499, CurrentValue: 2100, Location: "Home Office",
			Warranty: &domain.Warranty{Provider: "Apple Care+", ExpiryDate: "2026-01-15"},
			Images:   []string{"/a.png", "/b.png"},
			Receipts: []domain.Receipt{{ID: "r1", Name: "invoice.pdf"}},
		},
		{
			ID: "2", Name: "Leather Sofa", Category: "Furniture", PurchaseDate: "2023-02-20",
			PurchasePrice: 1200, CurrentValue: 1000, Location: "Living Room",
			Images: []string{domain.PlaceholderImage},
		},
		{
			ID: "3", Name: `Samsung 65" OLED TV`, Category: "Electronics", PurchaseDate: "2023-03-10",
			PurchasePrice: 1800, CurrentValue: 1500, Location: "Living Room",
			Warranty: &domain.Warranty{Provider: "Samsung", ExpiryDate: "2025-03-10"},
		},
	}
}

func lines(t *testing.T, opts Options) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reportItems(), opts))
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestWrite_Full(t *testing.T) {
	got := lines(t, Options{Type: TypeFull, Date: reportDate})

	want := []string{
		"Item Name,Category,Purchase Date,Purchase Price,Current Value,Location",
		`"MacBook Pro 16""",Electronics,2023-01-15,$2499,$2100,Home Office`,
		"Leather Sofa,Furniture,2023-02-20,$1200,$1000,Living Room",
		`"Samsung 65"" OLED TV",Electronics,2023-03-10,$1800,$1500,Living Room`,
		"",
		"Report generated on: 2024-06-30",
	}
	assert.Equal(t, want, got)
}

func TestWrite_Summary(t *testing.T) {
	got := lines(t, Options{Type: TypeSummary, Date: reportDate})

	require.Len(t, got, 7)
	assert.True(t, strings.HasPrefix(got[1], `"MacBook Pro`))
	assert.True(t, strings.HasPrefix(got[2], `"Samsung`))
	assert.True(t, strings.HasPrefix(got[3], "Leather Sofa"))
	assert.Equal(t, "Total Current Value,,,,$4600,", got[4])
}

func TestWrite_Value(t *testing.T) {
	got := lines(t, Options{Type: TypeValue, Date: reportDate})

	assert.Contains(t, got[1], "$2100")
	assert.Contains(t, got[2], "$1500")
	assert.Contains(t, got[3], "$1000")
}

func TestWrite_Warranty(t *testing.T) {
	got := lines(t, Options{Type: TypeWarranty, Date: reportDate})

	require.Len(t, got, 5)
	assert.Equal(t, "Item Name,Category,Purchase Date,Purchase Price,Current Value,Location,Warranty Provider,Warranty Expiry", got[0])
	assert.True(t, strings.HasSuffix(got[1], "Samsung,2025-03-10"), "soonest expiry first")
	assert.True(t, strings.HasSuffix(got[2], "Apple Care+,2026-01-15"))
}

func TestWrite_Options(t *testing.T) {
	got := lines(t, Options{
		Type:            TypeFull,
		Categories:      []string{"Electronics"},
		IncludeWarranty: true,
		IncludeImages:   true,
		IncludeReceipts: true,
		Date:            reportDate,
	})

	require.Len(t, got, 5)
	assert.True(t, strings.HasSuffix(got[0], "Warranty Provider,Warranty Expiry,Images,Receipts"))
	assert.True(t, strings.HasSuffix(got[1], "Apple Care+,2026-01-15,2,1"))
	assert.True(t, strings.HasSuffix(got[2], "Samsung,2025-03-10,0,0"))
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Options{Date: reportDate}))

	assert.Equal(t,
		"Item Name,Category,Purchase Date,Purchase Price,Current Value,Location\n\nReport generated on: 2024-06-30\n",
		buf.String())
}

func TestSelect_DoesNotReorderInput(t *testing.T) {
	items := reportItems()
	_ = Select(items, Options{Type: TypeValue})
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
}

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		got, err := ParseType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := ParseType("")
	require.NoError(t, err)
	assert.Equal(t, TypeFull, got)

	_, err = ParseType("quarterly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "warranty-inventory-report-2024-06-30.csv", FileName(TypeWarranty, reportDate))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$2499", FormatMoney(2499))
	assert.Equal(t, "$12.5", FormatMoney(12.5))
	assert.Equal(t, "$0", FormatMoney(0))
}
