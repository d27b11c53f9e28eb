package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryReport(t *testing.T) {
	reports := &mockReportService{
		summaryFn: func(_ context.Context) (models.SummaryMetrics, error) {
			return models.SummaryMetrics{TotalProducts: 12, LowStockCount: 3}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ReportService: reports})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil)
	rec := httptest.NewRecorder()

	h.summaryReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var metrics models.SummaryMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	assert.Equal(t, int64(12), metrics.TotalProducts)
}

func TestStatsReport_PeriodFromQuery(t *testing.T) {
	reports := &mockReportService{
		statsFn: func(_ context.Context, filter models.MovementFilter) (models.InventoryStats, error) {
			assert.Equal(t, 2026, filter.From.Year())
			assert.Equal(t, time.February, filter.To.Month())
			return models.InventoryStats{From: filter.From, To: filter.To}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ReportService: reports})

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/stats?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()

	h.statsReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestStatsReport_InvertedPeriod(t *testing.T) {
	reports := &mockReportService{
		statsFn: func(_ context.Context, filter models.MovementFilter) (models.InventoryStats, error) {
			return models.InventoryStats{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{ReportService: reports})

	req := httptest.NewRequest(http.MethodGet,
		"/api/reports/stats?from=2026-02-01T00:00:00Z&to=2026-01-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()

	h.statsReport(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductReport_LimitFromQuery(t *testing.T) {
	reports := &mockReportService{
		productsFn: func(_ context.Context, limit uint64) ([]models.ProductPerformance, error) {
			assert.Equal(t, uint64(5), limit)
			return []models.ProductPerformance{{ProductID: 1}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ReportService: reports})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/products?limit=5", nil)
	rec := httptest.NewRecorder()

	h.productReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRecommendationsReport(t *testing.T) {
	reports := &mockReportService{
		recommendationsFn: func(_ context.Context) ([]models.Recommendation, error) {
			return []models.Recommendation{{ProductID: 1, Type: "RESTOCK", SuggestedQuantity: 16}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ReportService: reports})

	req := httptest.NewRequest(http.MethodGet, "/api/reports/recommendations", nil)
	rec := httptest.NewRecorder()

	h.recommendationsReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var recs []models.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "RESTOCK", recs[0].Type)
}
