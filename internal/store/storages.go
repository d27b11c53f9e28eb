// Package store implements the PostgreSQL persistence layer: repositories
// for users, the inventory catalog, the stock movement ledger, and the
// SQL-aggregated analytics read models.
package store

import (
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
)

// Storages aggregates every repository backed by the shared database handle.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	SupplierRepository SupplierRepository
	ProductRepository  ProductRepository
	MovementRepository MovementRepository
	ReportRepository   ReportRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		SupplierRepository: NewSupplierRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		MovementRepository: NewMovementRepository(db, logger),
		ReportRepository:   NewReportRepository(db, logger),
	}
}
