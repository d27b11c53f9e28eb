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
	createSupplier = `INSERT INTO suppliers (name, contact_email, phone, address)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, contact_email, phone, address, created_at;`

	getSupplier = `SELECT id, name, contact_email, phone, address, created_at
    FROM suppliers
    WHERE id = $1;`

	listSuppliers = `SELECT id, name, contact_email, phone, address, created_at
    FROM suppliers
    ORDER BY name;`

	updateSupplier = `UPDATE suppliers
    SET name = $2, contact_email = $3, phone = $4, address = $5
    WHERE id = $1
    RETURNING id, name, contact_email, phone, address, created_at;`

	deleteSupplier = `DELETE FROM suppliers WHERE id = $1;`
)

// supplierRepository is the PostgreSQL-backed implementation of
// [SupplierRepository].
type supplierRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSupplierRepository constructs a [SupplierRepository] backed by the
// provided database connection and logger.
func NewSupplierRepository(db *DB, logger *logger.Logger) SupplierRepository {
	logger.Debug().Msg("creating supplier repository")
	return &supplierRepository{
		db:     db,
		logger: logger,
	}
}

func (r *supplierRepository) CreateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSupplier, supplier.Name, supplier.ContactEmail, supplier.Phone, supplier.Address)
	if err := row.Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail, &supplier.Phone, &supplier.Address, &supplier.CreatedAt); err != nil {
		log.Err(err).Str("func", "*supplierRepository.CreateSupplier").Msg("error saving supplier")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Supplier{}, ErrDuplicateName
		}
		return models.Supplier{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return supplier, nil
}

func (r *supplierRepository) GetSupplier(ctx context.Context, id int64) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	var supplier models.Supplier
	row := r.db.QueryRowContext(ctx, getSupplier, id)
	if err := row.Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail, &supplier.Phone, &supplier.Address, &supplier.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Supplier{}, ErrSupplierNotFound
		}

		log.Err(err).Str("func", "*supplierRepository.GetSupplier").Msg("error scanning supplier")
		return models.Supplier{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return supplier, nil
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSuppliers)
	if err != nil {
		log.Err(err).Str("func", "*supplierRepository.ListSuppliers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	suppliers := make([]models.Supplier, 0)
	for rows.Next() {
		var supplier models.Supplier
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail, &supplier.Phone, &supplier.Address, &supplier.CreatedAt); err != nil {
			log.Err(err).Str("func", "*supplierRepository.ListSuppliers").Msg("error scanning supplier row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return suppliers, nil
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateSupplier, supplier.ID, supplier.Name, supplier.ContactEmail, supplier.Phone, supplier.Address)
	if err := row.Scan(&supplier.ID, &supplier.Name, &supplier.ContactEmail, &supplier.Phone, &supplier.Address, &supplier.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Supplier{}, ErrSupplierNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Supplier{}, ErrDuplicateName
		}

		log.Err(err).Str("func", "*supplierRepository.UpdateSupplier").Msg("error updating supplier")
		return models.Supplier{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return supplier, nil
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSupplier, id)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrEntityInUse
		}

		log.Err(err).Str("func", "*supplierRepository.DeleteSupplier").Msg("error deleting supplier")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}
