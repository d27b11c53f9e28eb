package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type SupplierService interface {
	CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// MovementService records stock ledger entries. The recording user is taken
// from the request context, and the movement's total value is computed
// server-side before persistence.
type MovementService interface {
	RecordMovement(ctx context.Context, movement models.StockMovement) (models.StockMovement, error)
	ListMovements(ctx context.Context, filter models.MovementFilter) ([]models.StockMovement, error)
}

type ReportService interface {
	SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error)
	InventoryStats(ctx context.Context, filter models.MovementFilter) (models.InventoryStats, error)
	CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error)
	ProductPerformance(ctx context.Context, limit uint64) ([]models.ProductPerformance, error)
	SupplierPerformance(ctx context.Context) ([]models.SupplierPerformance, error)
	StockStatus(ctx context.Context) ([]models.StockStatus, error)
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
