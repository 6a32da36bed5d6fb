package domain

import (
	"slices"
	"time"
)

// Item is a tracked belonging with purchase, valuation, warranty and media metadata.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	PurchaseDate  string    `json:"purchase_date"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentValue  float64   `json:"current_value"`
	Location      string    `json:"location,omitempty"`
	SerialNumber  string    `json:"serial_number,omitempty"`
	Model         string    `json:"model,omitempty"`
	Warranty      *Warranty `json:"warranty,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Receipts      []Receipt `json:"receipts,omitempty"`
	Images        []string  `json:"images"`
	Timestamp     time.Time `json:"timestamp"`
}

// ItemDraft is an item that has not been stored yet.
// CurrentValue is optional so that "not supplied" can be told apart from zero.
type ItemDraft struct {
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	PurchaseDate  string    `json:"purchase_date"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentValue  *float64  `json:"current_value,omitempty"`
	Location      string    `json:"location,omitempty"`
	SerialNumber  string    `json:"serial_number,omitempty"`
	Model         string    `json:"model,omitempty"`
	Warranty      *Warranty `json:"warranty,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Receipts      []Receipt `json:"receipts,omitempty"`
	Images        []string  `json:"images,omitempty"`
}

// ItemPatch is a partial update. Nil fields are left as they are.
// A non-nil Warranty with every field empty removes the warranty.
type ItemPatch struct {
	Name          *string
	Description   *string
	Category      *string
	PurchaseDate  *string
	PurchasePrice *float64
	CurrentValue  *float64
	Location      *string
	SerialNumber  *string
	Model         *string
	Warranty      *Warranty
	Notes         *string
	Receipts      *[]Receipt
	Images        *[]string
}

// Apply writes every set field of p onto item
func (p ItemPatch) Apply(item *Item) {
	setIf(&item.Name, p.Name)
	setIf(&item.Description, p.Description)
	setIf(&item.Category, p.Category)
	setIf(&item.PurchaseDate, p.PurchaseDate)
	setIf(&item.PurchasePrice, p.PurchasePrice)
	setIf(&item.CurrentValue, p.CurrentValue)
	setIf(&item.Location, p.Location)
	setIf(&item.SerialNumber, p.SerialNumber)
	setIf(&item.Model, p.Model)
	setIf(&item.Notes, p.Notes)
	if p.Warranty != nil {
		w := *p.Warranty
		item.Warranty = &w
	}
	if p.Receipts != nil {
		item.Receipts = slices.Clone(*p.Receipts)
	}
	if p.Images != nil {
		item.Images = slices.Clone(*p.Images)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Warranty holds the coverage details of an item
type Warranty struct {
	Provider   string `json:"provider"`
	ExpiryDate string `json:"expiry_date"`
	Details    string `json:"details,omitempty"`
}

// IsEmpty reports whether no warranty field carries a value
func (w *Warranty) IsEmpty() bool {
	return w == nil || (w.Provider == "" && w.ExpiryDate == "" && w.Details == "")
}

// Receipt is a proof of purchase, either linked by URL or embedded as a data URI
type Receipt struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
	URL  string `json:"url,omitempty"`
	Data string `json:"data,omitempty"`
}

// Value returns the item's insured value: the current value, or the purchase
// price when no current value has been recorded.
func (i Item) Value() float64 {
	if i.CurrentValue != 0 {
		return i.CurrentValue
	}
	return i.PurchasePrice
}

// Clone returns a copy that shares no slices or pointers with i.
func (i Item) Clone() Item {
	c := i
	c.Images = slices.Clone(i.Images)
	c.Receipts = slices.Clone(i.Receipts)
	if i.Warranty != nil {
		w := *i.Warranty
		c.Warranty = &w
	}
	return c
}

// ToItem converts the draft into an Item without an ID.
// CurrentValue falls back to PurchasePrice when the draft leaves it unset.
func (d ItemDraft) ToItem() Item {
	current := d.PurchasePrice
	if d.CurrentValue != nil {
		current = *d.CurrentValue
	}
	return Item{
		Name:          d.Name,
		Description:   d.Description,
		Category:      d.Category,
		PurchaseDate:  d.PurchaseDate,
		PurchasePrice: d.PurchasePrice,
		CurrentValue:  current,
		Location:      d.Location,
		SerialNumber:  d.SerialNumber,
		Model:         d.Model,
		Warranty:      d.Warranty,
		Notes:         d.Notes,
		Receipts:      d.Receipts,
		Images:        d.Images,
	}
}
