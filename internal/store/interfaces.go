package store

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

// ProductRepository persists products. Product quantity is never written
// directly through this interface; it changes only via MovementRepository.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// MovementRepository records stock movements and adjusts product stock levels
// atomically.
type MovementRepository interface {
	// RecordMovement inserts the movement and applies its quantity delta to
	// the owning product inside a single transaction. Outbound movements
	// exceeding the on-hand quantity fail with ErrInsufficientStock.
	RecordMovement(ctx context.Context, movement models.StockMovement) (models.StockMovement, error)
	ListMovements(ctx context.Context, filter models.MovementFilter) ([]models.StockMovement, error)
}

// ReportRepository computes the analytics read models via SQL aggregation.
type ReportRepository interface {
	SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error)
	InventoryStats(ctx context.Context, filter models.MovementFilter) (models.InventoryStats, error)
	CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error)
	ProductPerformance(ctx context.Context, limit uint64) ([]models.ProductPerformance, error)
	SupplierPerformance(ctx context.Context) ([]models.SupplierPerformance, error)
	StockStatus(ctx context.Context) ([]models.StockStatus, error)
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
}

// ErrorClassificator maps low-level database errors to a retry decision.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
