package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/models"
)

func assertContainsParts(t *testing.T, query string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(query, part) {
			t.Errorf("query %q does not contain %q", query, part)
		}
	}
}

func Test_buildListProductsQuery_NoFilter(t *testing.T) {
	query, args, err := buildListProductsQuery(models.ProductFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query, "SELECT", "FROM products", "ORDER BY name ASC")
	if strings.Contains(query, "WHERE") {
		t.Errorf("empty filter must not add predicates, got %q", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func Test_buildListProductsQuery_AllFilters(t *testing.T) {
	filter := models.ProductFilter{CategoryID: 3, SupplierID: 7, Search: "flour"}

	query, args, err := buildListProductsQuery(filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"category_id = $1",
		"supplier_id = $2",
		"name ILIKE $3",
		"sku ILIKE $4",
	)
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
	if args[2] != "%flour%" {
		t.Errorf("expected ILIKE pattern %%flour%%, got %v", args[2])
	}
}

func Test_buildListMovementsQuery_PeriodFilter(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	filter := models.MovementFilter{ProductID: 10, Type: models.MovementOut, From: from, To: to}

	query, args, err := buildListMovementsQuery(filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"FROM stock_movements",
		"product_id = $1",
		"type = $2",
		"occurred_at >= $3",
		"occurred_at < $4",
		"ORDER BY occurred_at DESC",
	)
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
}

func Test_buildInventoryStatsQuery_SQLContainsParts(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildInventoryStatsQuery(models.MovementFilter{From: from})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"FILTER (WHERE type = 'in')",
		"FILTER (WHERE type = 'out')",
		"COUNT(*)",
		"FROM stock_movements",
		"occurred_at >= $1",
	)
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %v", args)
	}
}

func Test_buildBusiestDepartmentQuery_SQLContainsParts(t *testing.T) {
	query, _, err := buildBusiestDepartmentQuery(models.MovementFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"GROUP BY department",
		"ORDER BY COUNT(*) DESC",
		"LIMIT 1",
	)
}

func Test_buildCategoryPerformanceQuery_SQLContainsParts(t *testing.T) {
	query, _, err := buildCategoryPerformanceQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"FROM categories c",
		"LEFT JOIN products p ON p.category_id = c.id",
		"GROUP BY c.id, c.name",
	)
}

func Test_buildProductPerformanceQuery_Limit(t *testing.T) {
	query, _, err := buildProductPerformanceQuery(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContainsParts(t, query, "LIMIT 10", "LEFT JOIN stock_movements m ON m.product_id = p.id")

	query, _, err = buildProductPerformanceQuery(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "LIMIT") {
		t.Errorf("zero limit must not cap the result, got %q", query)
	}
}

func Test_buildSupplierPerformanceQuery_SQLContainsParts(t *testing.T) {
	query, _, err := buildSupplierPerformanceQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"COUNT(DISTINCT p.id)",
		"FILTER (WHERE m.type = 'in')",
		"FROM suppliers s",
		"GROUP BY s.id, s.name",
	)
}

func Test_buildStockStatusQuery_SQLContainsParts(t *testing.T) {
	query, _, err := buildStockStatusQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"'OUT_OF_STOCK'",
		"'LOW_STOCK'",
		"'IN_STOCK'",
		"FROM products",
	)
}

func Test_buildRecommendationsQuery_SQLContainsParts(t *testing.T) {
	query, _, err := buildRecommendationsQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContainsParts(t, query,
		"quantity <= low_stock_threshold",
		"ORDER BY quantity ASC",
	)
}
