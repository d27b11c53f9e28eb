package models

import "time"

// Product is a stocked catalog item. Quantity reflects the current on-hand
// amount and is adjusted only through stock movements, never by direct edits.
type Product struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Unit is the measurement unit quantities are expressed in (pcs, kg, l).
	Unit string `json:"unit"`

	CategoryID int64 `json:"category_id"`
	SupplierID int64 `json:"supplier_id"`

	// Price is the current unit price used when valuing stock.
	Price float64 `json:"price"`

	// Quantity is the current on-hand stock level.
	Quantity float64 `json:"quantity"`

	// LowStockThreshold is the level at or below which the product is
	// reported as LOW_STOCK and picked up by restock recommendations.
	LowStockThreshold float64 `json:"low_stock_threshold"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductFilter narrows ListProducts results. Zero-valued fields are ignored.
type ProductFilter struct {
	CategoryID int64
	SupplierID int64

	// Search matches case-insensitively against product name and SKU.
	Search string
}
