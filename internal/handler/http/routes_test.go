package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/stretchr/testify/require"
)

// authAs returns an AuthService mock that accepts any bearer token and
// resolves it to a user with the given role.
func authAs(role string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: 1}, nil
		},
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: 1, Login: "tester", Role: role}, nil
		},
	}
}

func TestRoutes_PublicWithoutToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ProtectedWithoutToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/categories"},
		{http.MethodGet, "/api/suppliers"},
		{http.MethodGet, "/api/products"},
		{http.MethodGet, "/api/movements"},
		{http.MethodGet, "/api/reports/summary"},
		{http.MethodGet, "/api/reports/recommendations"},
		{http.MethodPost, "/api/categories"},
		{http.MethodDelete, "/api/products/1"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

// TestRoutes_AdminGate verifies that catalog structure changes are rejected
// for STAFF and pass through to the handlers for ADMIN.
func TestRoutes_AdminGate(t *testing.T) {
	categories := &mockCategoryService{
		createFn: func(_ context.Context, category models.Category) (models.Category, error) {
			category.ID = 1
			return category, nil
		},
	}

	adminGated := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/categories"},
		{http.MethodPut, "/api/categories/1"},
		{http.MethodDelete, "/api/categories/1"},
		{http.MethodPost, "/api/suppliers"},
		{http.MethodDelete, "/api/products/1"},
	}

	h := newTestHandler(t, &service.Services{
		AuthService:     authAs(models.RoleStaff),
		CategoryService: categories,
	})
	router := h.Init()

	for _, route := range adminGated {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer staff.token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equalf(t, http.StatusForbidden, rec.Code, "%s %s", route.method, route.path)
	}

	h = newTestHandler(t, &service.Services{
		AuthService:     authAs(models.RoleAdmin),
		CategoryService: categories,
	})
	router = h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/categories", jsonReader(t, models.Category{Name: "Dairy"}))
	req.Header.Set("Authorization", "Bearer admin.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRoutes_StaffCanRecordMovements(t *testing.T) {
	movements := &mockMovementService{
		recordFn: func(_ context.Context, movement models.StockMovement) (models.StockMovement, error) {
			movement.ID = 1
			return movement, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService:     authAs(models.RoleStaff),
		MovementService: movements,
	})
	router := h.Init()

	movement := models.StockMovement{ProductID: 1, Type: models.MovementIn, Quantity: 2}
	req := httptest.NewRequest(http.MethodPost, "/api/movements", jsonReader(t, movement))
	req.Header.Set("Authorization", "Bearer staff.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}
