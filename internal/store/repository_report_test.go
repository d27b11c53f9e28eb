// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func newTestReportRepo(t *testing.T) (*reportRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &reportRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func TestSummaryMetrics_Success(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"total_products", "total_categories", "total_suppliers", "total_stock_value", "low_stock_count", "out_of_stock_count", "movements_today"}).
		AddRow(25, 4, 3, 1204.5, 2, 1, 7)

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	metrics, err := repo.SummaryMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.TotalProducts != 25 {
		t.Errorf("expected 25 products, got %d", metrics.TotalProducts)
	}
	if metrics.TotalStockValue != 1204.5 {
		t.Errorf("expected stock value 1204.5, got %g", metrics.TotalStockValue)
	}
	if metrics.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be stamped")
	}
}

func TestInventoryStats_NetChangeAndBusiestDepartment(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	filter := models.MovementFilter{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("FROM stock_movements").
		WillReturnRows(sqlmock.
			NewRows([]string{"total_in", "total_out", "value_in", "value_out", "movement_count"}).
			AddRow(100.0, 40.0, 500.0, 220.0, 12))
	mock.ExpectQuery("GROUP BY department").
		WillReturnRows(sqlmock.NewRows([]string{"department"}).AddRow("kitchen"))

	stats, err := repo.InventoryStats(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.NetChange != 60 {
		t.Errorf("expected net change 60, got %g", stats.NetChange)
	}
	if stats.BusiestDepartment == nil || *stats.BusiestDepartment != "kitchen" {
		t.Errorf("expected busiest department kitchen, got %v", stats.BusiestDepartment)
	}
}

func TestInventoryStats_NoDepartmentData(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM stock_movements").
		WillReturnRows(sqlmock.
			NewRows([]string{"total_in", "total_out", "value_in", "value_out", "movement_count"}).
			AddRow(0.0, 0.0, 0.0, 0.0, 0))
	mock.ExpectQuery("GROUP BY department").
		WillReturnError(sql.ErrNoRows)

	stats, err := repo.InventoryStats(context.Background(), models.MovementFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.BusiestDepartment != nil {
		t.Errorf("expected nil busiest department, got %v", *stats.BusiestDepartment)
	}
}

func TestCategoryPerformance_ValueShare(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "product_count", "on_hand", "stock_value"}).
		AddRow(1, "Dairy", 5, 120.0, 750.0).
		AddRow(2, "Grains", 3, 80.0, 250.0)

	mock.ExpectQuery("FROM categories").WillReturnRows(rows)

	report, err := repo.CategoryPerformance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report))
	}
	if report[0].ValueShare != 0.75 {
		t.Errorf("expected value share 0.75, got %g", report[0].ValueShare)
	}
	if report[1].ValueShare != 0.25 {
		t.Errorf("expected value share 0.25, got %g", report[1].ValueShare)
	}
}

func TestProductPerformance_Turnover(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "sku", "quantity", "units_in", "units_out", "movement_count"}).
		AddRow(1, "Milk", "MLK-01", 10.0, 10.0, 30.0, 5).
		AddRow(2, "Flour", "FLR-01", 0.0, 0.0, 30.0, 3).
		AddRow(3, "Rice", "RCE-01", 0.0, 10.0, 10.0, 2)

	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	report, err := repo.ProductPerformance(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// opened at 30, closed at 10: average stock 20, not the closing 10
	if report[0].Turnover != 1.5 {
		t.Errorf("expected turnover 1.5, got %g", report[0].Turnover)
	}
	// drained to zero: opening 30, average 15
	if report[1].Turnover != 2 {
		t.Errorf("expected turnover 2 for drained product, got %g", report[1].Turnover)
	}
	// turnover is undefined with no positive average stock
	if report[2].Turnover != 0 {
		t.Errorf("expected turnover 0 for empty stock, got %g", report[2].Turnover)
	}
}

func TestSupplierPerformance_LastDelivery(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	delivered := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "name", "product_count", "received_quantity", "received_value", "last_delivery"}).
		AddRow(1, "Acme Foods", 4, 300.0, 1500.0, delivered).
		AddRow(2, "Idle Supplies", 0, 0.0, 0.0, nil)

	mock.ExpectQuery("FROM suppliers").WillReturnRows(rows)

	report, err := repo.SupplierPerformance(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report[0].LastDelivery == nil || !report[0].LastDelivery.Equal(delivered) {
		t.Errorf("expected last delivery %v, got %v", delivered, report[0].LastDelivery)
	}
	if report[1].LastDelivery != nil {
		t.Errorf("expected nil last delivery for supplier without inbound movements, got %v", report[1].LastDelivery)
	}
}

func TestStockStatus_Classification(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "sku", "quantity", "low_stock_threshold", "status"}).
		AddRow(1, "Milk", "MLK-01", 0.0, 10.0, models.StockStatusOutOfStock).
		AddRow(2, "Rice", "RCE-01", 5.0, 10.0, models.StockStatusLowStock).
		AddRow(3, "Salt", "SLT-01", 90.0, 10.0, models.StockStatusInStock)

	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	report, err := repo.StockStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report))
	}
	if report[0].Status != models.StockStatusOutOfStock {
		t.Errorf("expected OUT_OF_STOCK, got %s", report[0].Status)
	}
}

func TestRecommendations_SuggestedQuantity(t *testing.T) {
	repo, mock, db := newTestReportRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "sku", "quantity", "low_stock_threshold"}).
		AddRow(1, "Milk", "MLK-01", 4.0, 10.0).
		AddRow(2, "Salt", "SLT-01", 10.0, 5.0)

	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	report, err := repo.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(report))
	}
	if report[0].SuggestedQuantity != 16 {
		t.Errorf("expected suggested quantity 16, got %g", report[0].SuggestedQuantity)
	}
	if report[0].Type != "RESTOCK" {
		t.Errorf("expected RESTOCK type, got %s", report[0].Type)
	}
	if !strings.Contains(report[0].Message, "Milk") {
		t.Errorf("expected message to name the product, got %q", report[0].Message)
	}
	// suggested quantity never drops below one unit
	if report[1].SuggestedQuantity != 1 {
		t.Errorf("expected minimum suggested quantity 1, got %g", report[1].SuggestedQuantity)
	}
}
