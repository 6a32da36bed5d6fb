package report

// Type selects which items a report contains and how they are ordered
type Type string

// Report types
const (
	TypeFull     Type = "full"
	TypeSummary  Type = "summary"
	TypeValue    Type = "value"
	TypeWarranty Type = "warranty"
)

// Types lists every supported report type
var Types = []Type{TypeFull, TypeSummary, TypeValue, TypeWarranty}

// CSV layout
const (
	ColItemName      = "Item Name"
	ColCategory      = "Category"
	ColPurchaseDate  = "Purchase Date"
	ColPurchasePrice = "Purchase Price"
	ColCurrentValue  = "Current Value"
	ColLocation      = "Location"

	ColWarrantyProvider = "Warranty Provider"
	ColWarrantyExpiry   = "Warranty Expiry"
	ColImageCount       = "Images"
	ColReceiptCount     = "Receipts"

	LabelTotalValue     = "Total Current Value"
	GeneratedOnFormat   = "Report generated on: %s"
	FileNameFormat      = "%s-inventory-report-%s.csv"
	ContentType         = "text/csv; charset=utf-8"
	CurrencySymbol      = "$"
	DefaultCategoryName = "Uncategorized"
)
