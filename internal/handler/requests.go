package handler

import (
	"time"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// WarrantyRequest is the warranty part of an item request
type WarrantyRequest struct {
	Provider   string `json:"provider" validate:"max=200"`
	ExpiryDate string `json:"expiry_date" validate:"dateonly"`
	Details    string `json:"details,omitempty" validate:"max=2000"`
}

// ReceiptRequest is a receipt attached to an item. Exactly one of URL and Data must be set.
type ReceiptRequest struct {
	ID   string `json:"id,omitempty" validate:"max=100"`
	Name string `json:"name" validate:"required,max=200"`
	Date string `json:"date,omitempty" validate:"dateonly"`
	URL  string `json:"url,omitempty" validate:"required_without=Data,excluded_with=Data,omitempty,url"`
	Data string `json:"data,omitempty" validate:"omitempty,datauri"`
}

// ItemRequest is the body of item create and full update requests
type ItemRequest struct {
	Name          string           `json:"name" validate:"required,max=200,excludesall=\x00"`
	Description   string           `json:"description,omitempty" validate:"max=5000"`
	Category      string           `json:"category" validate:"required,max=100"`
	PurchaseDate  string           `json:"purchase_date" validate:"required,dateonly"`
	PurchasePrice float64          `json:"purchase_price" validate:"min=0"`
	CurrentValue  *float64         `json:"current_value,omitempty" validate:"omitempty,min=0"`
	Location      string           `json:"location,omitempty" validate:"max=200"`
	SerialNumber  string           `json:"serial_number,omitempty" validate:"max=200"`
	Model         string           `json:"model,omitempty" validate:"max=200"`
	Warranty      *WarrantyRequest `json:"warranty,omitempty"`
	Notes         string           `json:"notes,omitempty" validate:"max=5000"`
	Receipts      []ReceiptRequest `json:"receipts,omitempty" validate:"max=50,dive"`
	Images        []string         `json:"images,omitempty" validate:"max=50,dive,imageref"`
}

// ToDraft converts the request into a domain draft
func (r ItemRequest) ToDraft() domain.ItemDraft {
	return domain.ItemDraft{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		PurchaseDate:  r.PurchaseDate,
		PurchasePrice: r.PurchasePrice,
		CurrentValue:  r.CurrentValue,
		Location:      r.Location,
		SerialNumber:  r.SerialNumber,
		Model:         r.Model,
		Warranty:      r.Warranty.toDomain(),
		Notes:         r.Notes,
		Receipts:      toReceipts(r.Receipts),
		Images:        r.Images,
	}
}

// PatchItemRequest is the body of a partial item update. Omitted fields are left unchanged.
type PatchItemRequest struct {
	Name          *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200,excludesall=\x00"`
	Description   *string           `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category      *string           `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	PurchaseDate  *string           `json:"purchase_date,omitempty" validate:"omitempty,min=1,dateonly"`
	PurchasePrice *float64          `json:"purchase_price,omitempty" validate:"omitempty,min=0"`
	CurrentValue  *float64          `json:"current_value,omitempty" validate:"omitempty,min=0"`
	Location      *string           `json:"location,omitempty" validate:"omitempty,max=200"`
	SerialNumber  *string           `json:"serial_number,omitempty" validate:"omitempty,max=200"`
	Model         *string           `json:"model,omitempty" validate:"omitempty,max=200"`
	Warranty      *WarrantyRequest  `json:"warranty,omitempty"`
	Notes         *string           `json:"notes,omitempty" validate:"omitempty,max=5000"`
	Receipts      *[]ReceiptRequest `json:"receipts,omitempty" validate:"omitempty,max=50,dive"`
	Images        *[]string         `json:"images,omitempty" validate:"omitempty,max=50,dive,imageref"`
}

// ToPatch converts the request into a domain patch
func (r PatchItemRequest) ToPatch() domain.ItemPatch {
	patch := domain.ItemPatch{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		PurchaseDate:  r.PurchaseDate,
		PurchasePrice: r.PurchasePrice,
		CurrentValue:  r.CurrentValue,
		Location:      r.Location,
		SerialNumber:  r.SerialNumber,
		Model:         r.Model,
		Warranty:      r.Warranty.toDomain(),
		Notes:         r.Notes,
		Images:        r.Images,
	}
	if r.Warranty != nil && patch.Warranty == nil {
		// An empty warranty object clears the warranty
		patch.Warranty = &domain.Warranty{}
	}
	if r.Receipts != nil {
		receipts := toReceipts(*r.Receipts)
		if receipts == nil {
			receipts = []domain.Receipt{}
		}
		patch.Receipts = &receipts
	}
	return patch
}

// RestoreItemRequest carries a previously deleted item back, including its original ID
type RestoreItemRequest struct {
	ID string `json:"id" validate:"required,max=100"`
	ItemRequest
	Timestamp time.Time `json:"timestamp"`
}

// ToItem converts the request into the item to re-insert
func (r RestoreItemRequest) ToItem() domain.Item {
	item := r.ToDraft().ToItem()
	item.ID = r.ID
	item.Timestamp = r.Timestamp
	return item
}

// CategoryRequest is the body of category create and rename requests
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00"`
}

func (w *WarrantyRequest) toDomain() *domain.Warranty {
	if w == nil {
		return nil
	}
	warranty := &domain.Warranty{
		Provider:   w.Provider,
		ExpiryDate: w.ExpiryDate,
		Details:    w.Details,
	}
	if warranty.IsEmpty() {
		return nil
	}
	return warranty
}

func toReceipts(in []ReceiptRequest) []domain.Receipt {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Receipt, len(in))
	for i, r := range in {
		out[i] = domain.Receipt{
			ID:   r.ID,
			Name: r.Name,
			Date: r.Date,
			URL:  r.URL,
			Data: r.Data,
		}
	}
	return out
}
