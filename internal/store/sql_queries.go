// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-stock-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders. All dynamically built queries go through it.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Static queries. Simple single-row statements stay as plain SQL constants;
// squirrel is reserved for queries with dynamic filters or heavy grouping.
const (
	createUser = `INSERT INTO users (login, name, role, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, login, name, role, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, role, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, name, role, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	summaryMetrics = `SELECT
        (SELECT COUNT(*) FROM products)                                           AS total_products,
        (SELECT COUNT(*) FROM categories)                                         AS total_categories,
        (SELECT COUNT(*) FROM suppliers)                                          AS total_suppliers,
        (SELECT COALESCE(SUM(quantity * price), 0) FROM products)                 AS total_stock_value,
        (SELECT COUNT(*) FROM products
            WHERE quantity > 0 AND quantity <= low_stock_threshold)               AS low_stock_count,
        (SELECT COUNT(*) FROM products WHERE quantity <= 0)                       AS out_of_stock_count,
        (SELECT COUNT(*) FROM stock_movements
            WHERE occurred_at >= date_trunc('day', NOW()))                        AS movements_today;`
)

// buildListProductsQuery builds the filtered product listing. Zero-valued
// filter fields are skipped.
func buildListProductsQuery(filter models.ProductFilter) (string, []any, error) {
	builder := psql.
		Select(
			"id", "sku", "name", "description", "unit",
			"category_id", "supplier_id",
			"price", "quantity", "low_stock_threshold",
			"created_at", "updated_at",
		).
		From("products").
		OrderBy("name ASC")

	if filter.CategoryID != 0 {
		builder = builder.Where(sq.Eq{"category_id": filter.CategoryID})
	}
	if filter.SupplierID != 0 {
		builder = builder.Where(sq.Eq{"supplier_id": filter.SupplierID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"sku": pattern},
		})
	}

	return builder.ToSql()
}

// buildListMovementsQuery builds the filtered stock movement listing, newest
// entries first.
func buildListMovementsQuery(filter models.MovementFilter) (string, []any, error) {
	builder := psql.
		Select(
			"id", "product_id", "type", "quantity", "price_per_unit",
			"total_value", "department", "note", "recorded_by", "occurred_at",
		).
		From("stock_movements").
		OrderBy("occurred_at DESC")

	if filter.ProductID != 0 {
		builder = builder.Where(sq.Eq{"product_id": filter.ProductID})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"type": filter.Type})
	}
	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"occurred_at": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.Lt{"occurred_at": filter.To})
	}

	return builder.ToSql()
}

// buildInventoryStatsQuery aggregates movement totals over the filter period.
func buildInventoryStatsQuery(filter models.MovementFilter) (string, []any, error) {
	builder := psql.
		Select(
			"COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0)     AS total_in",
			"COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0)    AS total_out",
			"COALESCE(SUM(total_value) FILTER (WHERE type = 'in'), 0)  AS value_in",
			"COALESCE(SUM(total_value) FILTER (WHERE type = 'out'), 0) AS value_out",
			"COUNT(*)                                                  AS movement_count",
		).
		From("stock_movements")

	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"occurred_at": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.Lt{"occurred_at": filter.To})
	}

	return builder.ToSql()
}

// buildBusiestDepartmentQuery finds the department with the most movements in
// the filter period. Movements without a department are ignored.
func buildBusiestDepartmentQuery(filter models.MovementFilter) (string, []any, error) {
	builder := psql.
		Select("department").
		From("stock_movements").
		Where(sq.NotEq{"department": ""}).
		GroupBy("department").
		OrderBy("COUNT(*) DESC", "department ASC").
		Limit(1)

	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"occurred_at": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.Lt{"occurred_at": filter.To})
	}

	return builder.ToSql()
}

// buildCategoryPerformanceQuery aggregates product counts and stock value per
// category. Categories without products are included with zeroes.
func buildCategoryPerformanceQuery() (string, []any, error) {
	return psql.
		Select(
			"c.id",
			"c.name",
			"COUNT(p.id)                          AS product_count",
			"COALESCE(SUM(p.quantity), 0)         AS on_hand",
			"COALESCE(SUM(p.quantity * p.price), 0) AS stock_value",
		).
		From("categories c").
		LeftJoin("products p ON p.category_id = c.id").
		GroupBy("c.id", "c.name").
		OrderBy("stock_value DESC", "c.name ASC").
		ToSql()
}

// buildProductPerformanceQuery aggregates movement activity per product,
// most-issued products first.
func buildProductPerformanceQuery(limit uint64) (string, []any, error) {
	builder := psql.
		Select(
			"p.id",
			"p.name",
			"p.sku",
			"p.quantity",
			"COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'in'), 0)  AS units_in",
			"COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'out'), 0) AS units_out",
			"COUNT(m.id)                                                AS movement_count",
		).
		From("products p").
		LeftJoin("stock_movements m ON m.product_id = p.id").
		GroupBy("p.id", "p.name", "p.sku", "p.quantity").
		OrderBy("units_out DESC", "p.name ASC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

// buildSupplierPerformanceQuery aggregates sourcing activity per supplier.
// Only inbound movements count towards received quantity and value.
func buildSupplierPerformanceQuery() (string, []any, error) {
	return psql.
		Select(
			"s.id",
			"s.name",
			"COUNT(DISTINCT p.id)                                       AS product_count",
			"COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'in'), 0)  AS received_quantity",
			"COALESCE(SUM(m.total_value) FILTER (WHERE m.type = 'in'), 0) AS received_value",
			"MAX(m.occurred_at) FILTER (WHERE m.type = 'in')             AS last_delivery",
		).
		From("suppliers s").
		LeftJoin("products p ON p.supplier_id = s.id").
		LeftJoin("stock_movements m ON m.product_id = p.id").
		GroupBy("s.id", "s.name").
		OrderBy("received_value DESC", "s.name ASC").
		ToSql()
}

// buildStockStatusQuery classifies every product against its threshold.
func buildStockStatusQuery() (string, []any, error) {
	return psql.
		Select(
			"id",
			"name",
			"sku",
			"quantity",
			"low_stock_threshold",
			`CASE
                WHEN quantity <= 0 THEN 'OUT_OF_STOCK'
                WHEN quantity <= low_stock_threshold THEN 'LOW_STOCK'
                ELSE 'IN_STOCK'
            END AS status`,
		).
		From("products").
		OrderBy("quantity ASC", "name ASC").
		ToSql()
}

// buildRecommendationsQuery selects products at or below their low-stock
// threshold, the restock candidates.
func buildRecommendationsQuery() (string, []any, error) {
	return psql.
		Select("id", "name", "sku", "quantity", "low_stock_threshold").
		From("products").
		Where("quantity <= low_stock_threshold").
		OrderBy("quantity ASC", "name ASC").
		ToSql()
}
