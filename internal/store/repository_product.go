package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/jackc/pgerrcode"
)

const (
	createProduct = `INSERT INTO products
        (sku, name, description, unit, category_id, supplier_id, price, quantity, low_stock_threshold)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, sku, name, description, unit, category_id, supplier_id,
        price, quantity, low_stock_threshold, created_at, updated_at;`

	getProduct = `SELECT id, sku, name, description, unit, category_id, supplier_id,
        price, quantity, low_stock_threshold, created_at, updated_at
    FROM products
    WHERE id = $1;`

	// quantity is deliberately absent from the SET list: stock levels change
	// only through recorded movements.
	updateProduct = `UPDATE products
    SET sku = $2, name = $3, description = $4, unit = $5, category_id = $6,
        supplier_id = $7, price = $8, low_stock_threshold = $9, updated_at = NOW()
    WHERE id = $1
    RETURNING id, sku, name, description, unit, category_id, supplier_id,
        price, quantity, low_stock_threshold, created_at, updated_at;`

	deleteProduct = `DELETE FROM products WHERE id = $1;`
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository].
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func scanProduct(row interface{ Scan(...any) error }, product *models.Product) error {
	return row.Scan(
		&product.ID, &product.SKU, &product.Name, &product.Description, &product.Unit,
		&product.CategoryID, &product.SupplierID,
		&product.Price, &product.Quantity, &product.LowStockThreshold,
		&product.CreatedAt, &product.UpdatedAt,
	)
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProduct,
		product.SKU, product.Name, product.Description, product.Unit,
		product.CategoryID, product.SupplierID,
		product.Price, product.Quantity, product.LowStockThreshold,
	)
	if err := scanProduct(row, &product); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error saving product")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Product{}, ErrDuplicateName
		case pgerrcode.ForeignKeyViolation:
			return models.Product{}, ErrReferenceNotFound
		default:
			return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return product, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	var product models.Product
	row := r.db.QueryRowContext(ctx, getProduct, id)
	if err := scanProduct(row, &product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error scanning product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}

// ListProducts returns products matching the filter, ordered by name.
// The query is built dynamically with squirrel; zero-valued filter fields
// add no predicates.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err := scanProduct(rows, &product); err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error scanning product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateProduct,
		product.ID, product.SKU, product.Name, product.Description, product.Unit,
		product.CategoryID, product.SupplierID,
		product.Price, product.LowStockThreshold,
	)
	if err := scanProduct(row, &product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Product{}, ErrDuplicateName
		case pgerrcode.ForeignKeyViolation:
			return models.Product{}, ErrReferenceNotFound
		}

		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error updating product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrEntityInUse
		}

		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
