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
	// FOR UPDATE serialises concurrent movements against the same product so
	// the insufficient-stock check and the quantity update stay consistent.
	lockProductQuantity = `SELECT quantity FROM products WHERE id = $1 FOR UPDATE;`

	insertMovement = `INSERT INTO stock_movements
        (product_id, type, quantity, price_per_unit, total_value, department, note, recorded_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, product_id, type, quantity, price_per_unit, total_value,
        department, note, recorded_by, occurred_at;`

	applyMovementDelta = `UPDATE products
    SET quantity = quantity + $2, updated_at = NOW()
    WHERE id = $1;`
)

// movementRepository is the PostgreSQL-backed implementation of
// [MovementRepository]. Movement recording and the matching product quantity
// adjustment happen inside one transaction.
type movementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovementRepository constructs a [MovementRepository] backed by the
// provided database connection and logger.
func NewMovementRepository(db *DB, logger *logger.Logger) MovementRepository {
	logger.Debug().Msg("creating movement repository")
	return &movementRepository{
		db:     db,
		logger: logger,
	}
}

// RecordMovement inserts the movement and applies its quantity delta to the
// owning product in a single transaction.
//
// The product row is locked first; an outbound movement whose quantity
// exceeds the locked on-hand value fails with [ErrInsufficientStock] and the
// transaction is rolled back.
func (r *movementRepository) RecordMovement(ctx context.Context, movement models.StockMovement) (models.StockMovement, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*movementRepository.RecordMovement").Msg("error beginning transaction")
		return models.StockMovement{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	var onHand float64
	if err := tx.QueryRowContext(ctx, lockProductQuantity, movement.ProductID).Scan(&onHand); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StockMovement{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*movementRepository.RecordMovement").Msg("error locking product row")
		return models.StockMovement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	delta := movement.Quantity
	if movement.Type == models.MovementOut {
		if movement.Quantity > onHand {
			log.Warn().
				Int64("product_id", movement.ProductID).
				Float64("requested", movement.Quantity).
				Float64("on_hand", onHand).
				Msg("outbound movement exceeds on-hand quantity")
			return models.StockMovement{}, ErrInsufficientStock
		}
		delta = -movement.Quantity
	}

	row := tx.QueryRowContext(ctx, insertMovement,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.PricePerUnit, movement.TotalValue,
		movement.Department, movement.Note, movement.RecordedBy,
	)
	if err := row.Scan(
		&movement.ID, &movement.ProductID, &movement.Type,
		&movement.Quantity, &movement.PricePerUnit, &movement.TotalValue,
		&movement.Department, &movement.Note, &movement.RecordedBy, &movement.OccurredAt,
	); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.StockMovement{}, ErrReferenceNotFound
		}

		log.Err(err).Str("func", "*movementRepository.RecordMovement").Msg("error inserting movement")
		return models.StockMovement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, applyMovementDelta, movement.ProductID, delta); err != nil {
		log.Err(err).Str("func", "*movementRepository.RecordMovement").Msg("error applying quantity delta")
		return models.StockMovement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*movementRepository.RecordMovement").Msg("error committing transaction")
		return models.StockMovement{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return movement, nil
}

// ListMovements returns movements matching the filter, newest first.
func (r *movementRepository) ListMovements(ctx context.Context, filter models.MovementFilter) ([]models.StockMovement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMovementsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*movementRepository.ListMovements").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movementRepository.ListMovements").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movements := make([]models.StockMovement, 0)
	for rows.Next() {
		var movement models.StockMovement
		if err := rows.Scan(
			&movement.ID, &movement.ProductID, &movement.Type,
			&movement.Quantity, &movement.PricePerUnit, &movement.TotalValue,
			&movement.Department, &movement.Note, &movement.RecordedBy, &movement.OccurredAt,
		); err != nil {
			log.Err(err).Str("func", "*movementRepository.ListMovements").Msg("error scanning movement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movements = append(movements, movement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movements, nil
}
