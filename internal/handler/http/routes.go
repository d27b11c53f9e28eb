package http

import (
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/ping", h.ping)
	})

	// routes available to any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/categories", h.listCategories)
		r.Get("/api/categories/{id}", h.getCategory)

		r.Get("/api/suppliers", h.listSuppliers)
		r.Get("/api/suppliers/{id}", h.getSupplier)

		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{id}", h.getProduct)
		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)

		r.Post("/api/movements", h.recordMovement)
		r.Get("/api/movements", h.listMovements)

		r.Route("/api/reports", func(r chi.Router) {
			r.Get("/summary", h.summaryReport)
			r.Get("/stats", h.statsReport)
			r.Get("/categories", h.categoryReport)
			r.Get("/products", h.productReport)
			r.Get("/suppliers", h.supplierReport)
			r.Get("/stock-status", h.stockStatusReport)
			r.Get("/recommendations", h.recommendationsReport)
		})
	})

	// catalog structure changes and all deletes are for administrators
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRole(models.RoleAdmin))

		r.Post("/api/categories", h.createCategory)
		r.Put("/api/categories/{id}", h.updateCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)

		r.Post("/api/suppliers", h.createSupplier)
		r.Put("/api/suppliers/{id}", h.updateSupplier)
		r.Delete("/api/suppliers/{id}", h.deleteSupplier)

		r.Delete("/api/products/{id}", h.deleteProduct)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
