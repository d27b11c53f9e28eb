package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the
// sanitized server-side user record. Returns an error if the request fails,
// the server returns a non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

// ListProducts implements [ServerAdapter]. It GETs /api/products with the
// non-zero filter fields passed as query parameters and decodes the product
// list from the response body.
func (h *httpServerAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	req := h.authedRequest(ctx)
	if filter.CategoryID > 0 {
		req.SetQueryParam("category_id", strconv.FormatInt(filter.CategoryID, 10))
	}
	if filter.SupplierID > 0 {
		req.SetQueryParam("supplier_id", strconv.FormatInt(filter.SupplierID, 10))
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	resp, err := req.Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("decode products response: %w", err)
	}

	return products, nil
}

// RecordMovement implements [ServerAdapter]. It POSTs the movement to
// POST /api/movements and decodes the persisted entry from the response body.
// Returns [ErrConflict] (wrapped) on HTTP 409, which the server uses for
// outbound movements exceeding the on-hand quantity.
func (h *httpServerAdapter) RecordMovement(ctx context.Context, movement models.StockMovement) (models.StockMovement, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movement).
		Post("/api/movements")
	if err != nil {
		return models.StockMovement{}, fmt.Errorf("record movement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StockMovement{}, err
	}

	var recorded models.StockMovement
	if err = json.Unmarshal(resp.Body(), &recorded); err != nil {
		return models.StockMovement{}, fmt.Errorf("decode movement response: %w", err)
	}

	return recorded, nil
}

// SummaryMetrics implements [ServerAdapter]. It GETs /api/reports/summary and
// decodes the headline metrics from the response body.
func (h *httpServerAdapter) SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error) {
	resp, err := h.authedRequest(ctx).Get("/api/reports/summary")
	if err != nil {
		return models.SummaryMetrics{}, fmt.Errorf("summary metrics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SummaryMetrics{}, err
	}

	var metrics models.SummaryMetrics
	if err = json.Unmarshal(resp.Body(), &metrics); err != nil {
		return models.SummaryMetrics{}, fmt.Errorf("decode summary metrics response: %w", err)
	}

	return metrics, nil
}

// Recommendations implements [ServerAdapter]. It GETs
// /api/reports/recommendations and decodes the restock suggestions from the
// response body.
func (h *httpServerAdapter) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	resp, err := h.authedRequest(ctx).Get("/api/reports/recommendations")
	if err != nil {
		return nil, fmt.Errorf("recommendations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var recommendations []models.Recommendation
	if err = json.Unmarshal(resp.Body(), &recommendations); err != nil {
		return nil, fmt.Errorf("decode recommendations response: %w", err)
	}

	return recommendations, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
