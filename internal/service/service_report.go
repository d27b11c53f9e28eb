package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// defaultProductPerformanceLimit caps the product performance report when the
// caller does not ask for a specific size.
const defaultProductPerformanceLimit = 20

// reportService is the concrete implementation of ReportService. All
// aggregation happens in the repository; the service applies defaults and
// normalises filters.
type reportService struct {
	reportRepository store.ReportRepository

	logger *logger.Logger
}

// NewReportService constructs a ReportService wired to the given repository.
func NewReportService(reportRepository store.ReportRepository, logger *logger.Logger) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		logger:           logger,
	}
}

func (s *reportService) SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error) {
	log := logger.FromContext(ctx)

	metrics, err := s.reportRepository.SummaryMetrics(ctx)
	if err != nil {
		log.Err(err).Msg("summary metrics report failed")
		return models.SummaryMetrics{}, fmt.Errorf("summary metrics report failed: %w", err)
	}

	return metrics, nil
}

// InventoryStats aggregates movement totals over the requested period.
// A From bound after the To bound is rejected.
func (s *reportService) InventoryStats(ctx context.Context, filter models.MovementFilter) (models.InventoryStats, error) {
	log := logger.FromContext(ctx)

	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		log.Error().Time("from", filter.From).Time("to", filter.To).Msg("inverted report period")
		return models.InventoryStats{}, ErrInvalidDataProvided
	}

	stats, err := s.reportRepository.InventoryStats(ctx, filter)
	if err != nil {
		log.Err(err).Msg("inventory stats report failed")
		return models.InventoryStats{}, fmt.Errorf("inventory stats report failed: %w", err)
	}

	return stats, nil
}

func (s *reportService) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error) {
	log := logger.FromContext(ctx)

	report, err := s.reportRepository.CategoryPerformance(ctx)
	if err != nil {
		log.Err(err).Msg("category performance report failed")
		return nil, fmt.Errorf("category performance report failed: %w", err)
	}

	return report, nil
}

// ProductPerformance returns movement activity per product. A zero limit
// falls back to the default report size.
func (s *reportService) ProductPerformance(ctx context.Context, limit uint64) ([]models.ProductPerformance, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		limit = defaultProductPerformanceLimit
	}

	report, err := s.reportRepository.ProductPerformance(ctx, limit)
	if err != nil {
		log.Err(err).Msg("product performance report failed")
		return nil, fmt.Errorf("product performance report failed: %w", err)
	}

	return report, nil
}

func (s *reportService) SupplierPerformance(ctx context.Context) ([]models.SupplierPerformance, error) {
	log := logger.FromContext(ctx)

	report, err := s.reportRepository.SupplierPerformance(ctx)
	if err != nil {
		log.Err(err).Msg("supplier performance report failed")
		return nil, fmt.Errorf("supplier performance report failed: %w", err)
	}

	return report, nil
}

func (s *reportService) StockStatus(ctx context.Context) ([]models.StockStatus, error) {
	log := logger.FromContext(ctx)

	report, err := s.reportRepository.StockStatus(ctx)
	if err != nil {
		log.Err(err).Msg("stock status report failed")
		return nil, fmt.Errorf("stock status report failed: %w", err)
	}

	return report, nil
}

func (s *reportService) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	log := logger.FromContext(ctx)

	report, err := s.reportRepository.Recommendations(ctx)
	if err != nil {
		log.Err(err).Msg("recommendations report failed")
		return nil, fmt.Errorf("recommendations report failed: %w", err)
	}

	return report, nil
}
