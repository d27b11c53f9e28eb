// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Stock movement directions. "in" receives stock (delivery, return),
// "out" issues stock (sale, write-off).
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// StockMovement is a single immutable stock ledger entry. Recording a
// movement atomically adjusts the owning product's on-hand quantity.
type StockMovement struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Type      string `json:"type"`

	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`

	// TotalValue is Quantity * PricePerUnit, computed server-side.
	TotalValue float64 `json:"total_value"`

	// Department is the internal unit the movement is attributed to.
	Department string `json:"department,omitempty"`

	Note string `json:"note,omitempty"`

	// RecordedBy is the ID of the user who recorded the movement.
	RecordedBy int64 `json:"recorded_by"`

	OccurredAt time.Time `json:"occurred_at"`
}

// TableName returns the name of the database table
// associated with the StockMovement model.
func (m StockMovement) TableName() string {
	return "stock_movements"
}

// MovementFilter narrows ListMovements results. Zero-valued fields are ignored.
type MovementFilter struct {
	ProductID int64
	Type      string
	From      time.Time
	To        time.Time
}
