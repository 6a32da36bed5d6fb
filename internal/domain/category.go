package domain

// Category is a named grouping of items.
// ItemCount is derived: it always equals the number of items whose Category equals Name.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// PredefinedCategories is the category set every inventory starts with
var PredefinedCategories = []string{
	"Electronics",
	"Furniture",
	"Appliances",
	"Jewelry",
	"Art",
	"Clothing",
	"Books",
	"Tools",
	"Sports Equipment",
	"Collectibles",
}
