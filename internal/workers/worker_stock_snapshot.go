package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// stockSnapshotWorker periodically records a summary of the inventory to the
// log: headline metrics plus every product currently low on or out of stock.
// The snapshot gives operators a trail of stock levels between report calls.
type stockSnapshotWorker struct {
	reports  service.ReportService
	interval time.Duration
	logger   *logger.Logger
}

func newStockSnapshotWorker(reports service.ReportService, interval time.Duration, logger *logger.Logger) *stockSnapshotWorker {
	return &stockSnapshotWorker{
		reports:  reports,
		interval: interval,
		logger:   logger,
	}
}

// Run implements Worker. It spawns a goroutine that takes a snapshot every
// interval until the process exits.
func (w *stockSnapshotWorker) Run() {
	go func() {
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for range t.C {
			w.snapshot(context.Background())
		}
	}()
}

func (w *stockSnapshotWorker) snapshot(ctx context.Context) {
	metrics, err := w.reports.SummaryMetrics(ctx)
	if err != nil {
		w.logger.Error().Str("func", "snapshot").Err(err).Msg("summary metrics collection failed")
		return
	}

	w.logger.Info().
		Str("func", "snapshot").
		Int64("total_products", metrics.TotalProducts).
		Int64("low_stock_count", metrics.LowStockCount).
		Int64("out_of_stock_count", metrics.OutOfStockCount).
		Float64("total_stock_value", metrics.TotalStockValue).
		Msg("inventory snapshot")

	statuses, err := w.reports.StockStatus(ctx)
	if err != nil {
		w.logger.Error().Str("func", "snapshot").Err(err).Msg("stock status collection failed")
		return
	}

	for _, status := range statuses {
		if status.Status == models.StockStatusInStock {
			continue
		}

		w.logger.Warn().
			Str("func", "snapshot").
			Int64("product_id", status.ProductID).
			Str("product_name", status.ProductName).
			Float64("quantity", status.Quantity).
			Str("status", status.Status).
			Msg("product needs attention")
	}
}
