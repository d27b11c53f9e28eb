package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// productFilterFromQuery decodes the list filter from URL query parameters.
// Unknown or malformed numeric values are treated as absent.
func productFilterFromQuery(r *http.Request) models.ProductFilter {
	query := r.URL.Query()

	var filter models.ProductFilter
	if categoryID, err := strconv.ParseInt(query.Get("category_id"), 10, 64); err == nil {
		filter.CategoryID = categoryID
	}
	if supplierID, err := strconv.ParseInt(query.Get("supplier_id"), 10, 64); err == nil {
		filter.SupplierID = supplierID
	}
	filter.Search = query.Get("search")

	return filter
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProductService.CreateProduct(r.Context(), product)
	if err != nil {
		log.Err(err).Str("sku", product.SKU).Msg("error creating product")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("product_id", id).Msg("error getting product")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, product, http.StatusOK) //nolint:errcheck
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.ListProducts(r.Context(), productFilterFromQuery(r))
	if err != nil {
		log.Err(err).Msg("error listing products")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, products, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	product.ID = id

	updated, err := h.services.ProductService.UpdateProduct(r.Context(), product)
	if err != nil {
		log.Err(err).Int64("product_id", id).Msg("error updating product")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := h.services.ProductService.DeleteProduct(r.Context(), id); err != nil {
		log.Err(err).Int64("product_id", id).Msg("error deleting product")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
