package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// mockReportService implements service.ReportService with overridable
// function fields; only the methods the snapshot touches matter here.
type mockReportService struct {
	summaryFn     func(ctx context.Context) (models.SummaryMetrics, error)
	stockStatusFn func(ctx context.Context) ([]models.StockStatus, error)
}

func (m *mockReportService) SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error) {
	return m.summaryFn(ctx)
}

func (m *mockReportService) InventoryStats(ctx context.Context, filter models.MovementFilter) (models.InventoryStats, error) {
	return models.InventoryStats{}, nil
}

func (m *mockReportService) CategoryPerformance(ctx context.Context) ([]models.CategoryPerformance, error) {
	return nil, nil
}

func (m *mockReportService) ProductPerformance(ctx context.Context, limit uint64) ([]models.ProductPerformance, error) {
	return nil, nil
}

func (m *mockReportService) SupplierPerformance(ctx context.Context) ([]models.SupplierPerformance, error) {
	return nil, nil
}

func (m *mockReportService) StockStatus(ctx context.Context) ([]models.StockStatus, error) {
	return m.stockStatusFn(ctx)
}

func (m *mockReportService) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	return nil, nil
}

func TestStockSnapshotWorker_Snapshot(t *testing.T) {
	var summaryCalls, statusCalls int
	reports := &mockReportService{
		summaryFn: func(ctx context.Context) (models.SummaryMetrics, error) {
			summaryCalls++
			return models.SummaryMetrics{TotalProducts: 3, LowStockCount: 1}, nil
		},
		stockStatusFn: func(ctx context.Context) ([]models.StockStatus, error) {
			statusCalls++
			return []models.StockStatus{
				{ProductID: 1, ProductName: "Milk", Status: models.StockStatusInStock},
				{ProductID: 2, ProductName: "Flour", Status: models.StockStatusLowStock},
			}, nil
		},
	}

	w := newStockSnapshotWorker(reports, time.Minute, logger.Nop())
	w.snapshot(context.Background())

	if summaryCalls != 1 {
		t.Errorf("expected 1 summary call, got %d", summaryCalls)
	}
	if statusCalls != 1 {
		t.Errorf("expected 1 stock status call, got %d", statusCalls)
	}
}

func TestStockSnapshotWorker_Snapshot_SummaryError(t *testing.T) {
	var statusCalls int
	reports := &mockReportService{
		summaryFn: func(ctx context.Context) (models.SummaryMetrics, error) {
			return models.SummaryMetrics{}, errors.New("db down")
		},
		stockStatusFn: func(ctx context.Context) ([]models.StockStatus, error) {
			statusCalls++
			return nil, nil
		},
	}

	w := newStockSnapshotWorker(reports, time.Minute, logger.Nop())
	w.snapshot(context.Background())

	// a failed summary skips the per-product pass
	if statusCalls != 0 {
		t.Errorf("expected no stock status calls after summary error, got %d", statusCalls)
	}
}
