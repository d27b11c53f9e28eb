package models

import "time"

// Stock status values reported per product by the stock-status report.
const (
	StockStatusInStock    = "IN_STOCK"
	StockStatusLowStock   = "LOW_STOCK"
	StockStatusOutOfStock = "OUT_OF_STOCK"
)

// SummaryMetrics is the dashboard headline report: whole-inventory counts
// and valuations as of the moment the report is generated.
type SummaryMetrics struct {
	TotalProducts   int64   `json:"total_products"`
	TotalCategories int64   `json:"total_categories"`
	TotalSuppliers  int64   `json:"total_suppliers"`
	TotalStockValue float64 `json:"total_stock_value"`
	LowStockCount   int64   `json:"low_stock_count"`
	OutOfStockCount int64   `json:"out_of_stock_count"`
	MovementsToday  int64   `json:"movements_today"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// InventoryStats aggregates stock movements over a reporting period.
type InventoryStats struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`

	// NetChange is TotalIn - TotalOut for the period.
	NetChange float64 `json:"net_change"`

	ValueIn  float64 `json:"value_in"`
	ValueOut float64 `json:"value_out"`

	MovementCount int64 `json:"movement_count"`

	// BusiestDepartment is the department with the most movements in the
	// period; nil when the period has no department-attributed movements.
	BusiestDepartment *string `json:"busiest_department,omitempty"`
}

// CategoryPerformance reports per-category stock composition and value.
type CategoryPerformance struct {
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	ProductCount int64   `json:"product_count"`
	OnHand       float64 `json:"on_hand"`
	StockValue   float64 `json:"stock_value"`

	// ValueShare is this category's fraction of the total stock value,
	// in [0, 1]. Zero when the inventory as a whole holds no value.
	ValueShare float64 `json:"value_share"`
}

// ProductPerformance reports per-product movement activity and turnover.
type ProductPerformance struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`

	UnitsIn  float64 `json:"units_in"`
	UnitsOut float64 `json:"units_out"`

	// Turnover is units issued divided by the average stock level over the
	// product's movement history. Zero when no positive average exists.
	Turnover float64 `json:"turnover"`

	MovementCount int64 `json:"movement_count"`
}

// SupplierPerformance reports per-supplier sourcing activity.
type SupplierPerformance struct {
	SupplierID   int64  `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	ProductCount int64  `json:"product_count"`

	ReceivedQuantity float64 `json:"received_quantity"`
	ReceivedValue    float64 `json:"received_value"`

	// LastDelivery is the timestamp of the most recent inbound movement for
	// any of the supplier's products; nil when nothing was ever received.
	LastDelivery *time.Time `json:"last_delivery,omitempty"`
}

// StockStatus classifies a single product against its low-stock threshold.
type StockStatus struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Quantity    float64 `json:"quantity"`
	Threshold   float64 `json:"threshold"`
	Status      string  `json:"status"`
}

// Recommendation is a generated restock suggestion for a product whose
// on-hand quantity is at or below its low-stock threshold.
type Recommendation struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`

	// Type is the recommendation kind. Currently always "RESTOCK".
	Type string `json:"type"`

	Message string `json:"message"`

	// SuggestedQuantity is the reorder amount that would bring the product
	// to twice its threshold, never less than one unit.
	SuggestedQuantity float64 `json:"suggested_quantity"`
}
