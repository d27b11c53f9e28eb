// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// reportRepository is the PostgreSQL-backed implementation of
// [ReportRepository]. Every report is a single aggregation query; derived
// ratios that need whole-result context (value share, turnover, suggested
// restock quantity) are computed in Go after scanning.
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] backed by the provided
// database connection and logger.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

// SummaryMetrics computes the whole-inventory headline numbers in one query.
func (r *reportRepository) SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error) {
	log := logger.FromContext(ctx)

	var metrics models.SummaryMetrics
	row := r.db.QueryRowContext(ctx, summaryMetrics)
	if err := row.Scan(
		&metrics.TotalProducts, &metrics.TotalCategories, &metrics.TotalSuppliers,
		&metrics.TotalStockValue, &metrics.LowStockCount, &metrics.OutOfStockCount,
		&metrics.MovementsToday,
	); err != nil {
		log.Err(err).Str("func", "*reportRepository.SummaryMetrics").Msg("error scanning summary metrics")
		return models.SummaryMetrics{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	metrics.GeneratedAt = time.Now()
	return metrics, nil
}

// InventoryStats aggregates movement totals over the filter period and
// resolves the busiest department with a second grouped query.
func (r *reportRepository) InventoryStats(ctx context.Context, filter models.MovementFilter) (models.InventoryStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInventoryStatsQuery(filter)
	if err != nil {
		return models.InventoryStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stats := models.InventoryStats{From: filter.From, To: filter.To}
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&stats.TotalIn, &stats.TotalOut, &stats.ValueIn, &stats.ValueOut, &stats.MovementCount); err != nil {
		log.Err(err).Str("func", "*reportRepository.InventoryStats").Msg("error scanning inventory stats")
		return models.InventoryStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	stats.NetChange = stats.TotalIn - stats.TotalOut

	query, args, err = buildBusiestDepartmentQuery(filter)
	if err != nil {
		return models.InventoryStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var department string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&department)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no department-attributed movements in the period
	case err != nil:
		log.Err(err).Str("func", "*reportRepository.InventoryStats").Msg("error scanning busiest department")
		return models.InventoryStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		stats.BusiestDepartment = &department
	}

	return stats, nil
}

// CategoryPerformance aggregates stock composition per category and computes
// each category's share of the total stock value.
func (r *reportRepository) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCategoryPerformanceQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.CategoryPerformance").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	report := make([]models.CategoryPerformance, 0)
	var totalValue float64
	for rows.Next() {
		var entry models.CategoryPerformance
		if err := rows.Scan(&entry.CategoryID, &entry.CategoryName, &entry.ProductCount, &entry.OnHand, &entry.StockValue); err != nil {
			log.Err(err).Str("func", "*reportRepository.CategoryPerformance").Msg("error scanning category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		totalValue += entry.StockValue
		report = append(report, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if totalValue > 0 {
		for i := range report {
			report[i].ValueShare = report[i].StockValue / totalValue
		}
	}

	return report, nil
}

// ProductPerformance aggregates movement activity per product. Turnover is
// units issued over the average stock level, with the opening level
// reconstructed from the current quantity and the net movement change.
func (r *reportRepository) ProductPerformance(ctx context.Context, limit uint64) ([]models.ProductPerformance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProductPerformanceQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.ProductPerformance").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	report := make([]models.ProductPerformance, 0)
	for rows.Next() {
		var entry models.ProductPerformance
		var onHand float64
		if err := rows.Scan(&entry.ProductID, &entry.ProductName, &entry.SKU, &onHand, &entry.UnitsIn, &entry.UnitsOut, &entry.MovementCount); err != nil {
			log.Err(err).Str("func", "*reportRepository.ProductPerformance").Msg("error scanning product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		// average stock is (opening + closing) / 2; opening is the
		// current quantity minus the net movement change
		averageStock := onHand - (entry.UnitsIn-entry.UnitsOut)/2
		if averageStock > 0 {
			entry.Turnover = entry.UnitsOut / averageStock
		}
		report = append(report, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return report, nil
}

// SupplierPerformance aggregates sourcing activity per supplier.
func (r *reportRepository) SupplierPerformance(ctx context.Context) ([]models.SupplierPerformance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSupplierPerformanceQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.SupplierPerformance").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	report := make([]models.SupplierPerformance, 0)
	for rows.Next() {
		var entry models.SupplierPerformance
		var lastDelivery sql.NullTime
		if err := rows.Scan(&entry.SupplierID, &entry.SupplierName, &entry.ProductCount, &entry.ReceivedQuantity, &entry.ReceivedValue, &lastDelivery); err != nil {
			log.Err(err).Str("func", "*reportRepository.SupplierPerformance").Msg("error scanning supplier row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if lastDelivery.Valid {
			entry.LastDelivery = &lastDelivery.Time
		}
		report = append(report, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return report, nil
}

// StockStatus classifies every product against its low-stock threshold.
func (r *reportRepository) StockStatus(ctx context.Context) ([]models.StockStatus, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStockStatusQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.StockStatus").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	report := make([]models.StockStatus, 0)
	for rows.Next() {
		var entry models.StockStatus
		if err := rows.Scan(&entry.ProductID, &entry.ProductName, &entry.SKU, &entry.Quantity, &entry.Threshold, &entry.Status); err != nil {
			log.Err(err).Str("func", "*reportRepository.StockStatus").Msg("error scanning stock status row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		report = append(report, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return report, nil
}

// Recommendations builds RESTOCK suggestions for products at or below their
// threshold. The suggested quantity tops the product up to twice its
// threshold and is never below one unit.
func (r *reportRepository) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecommendationsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Recommendations").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	report := make([]models.Recommendation, 0)
	for rows.Next() {
		var entry models.Recommendation
		var quantity, threshold float64
		if err := rows.Scan(&entry.ProductID, &entry.ProductName, &entry.SKU, &quantity, &threshold); err != nil {
			log.Err(err).Str("func", "*reportRepository.Recommendations").Msg("error scanning recommendation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.Type = "RESTOCK"
		entry.SuggestedQuantity = threshold*2 - quantity
		if entry.SuggestedQuantity < 1 {
			entry.SuggestedQuantity = 1
		}
		entry.Message = fmt.Sprintf("%s is down to %g (threshold %g): order %g more",
			entry.ProductName, quantity, threshold, entry.SuggestedQuantity)

		report = append(report, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return report, nil
}
