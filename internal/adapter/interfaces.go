// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-stock-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the admin CLI
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-stock-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the sanitized user record. Returns an error if the
	// request fails or the server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the sanitized user
	// record. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.User, error)

	// ListProducts fetches the product catalog filtered by the zero-value-
	// optional fields of filter. Requires a valid bearer token.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// RecordMovement submits a stock movement and returns the persisted
	// entry with server-computed fields populated. Returns [ErrConflict]
	// (wrapped) when the server rejects an outbound movement exceeding the
	// on-hand quantity. Requires a valid bearer token.
	RecordMovement(ctx context.Context, movement models.StockMovement) (models.StockMovement, error)

	// SummaryMetrics fetches the dashboard headline report. Requires a valid
	// bearer token.
	SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error)

	// Recommendations fetches the current restock suggestions. Requires a
	// valid bearer token.
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
}
