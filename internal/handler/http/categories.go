package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/go-chi/chi/v5"
)

// pathID extracts the {id} URL parameter as int64. A missing or non-numeric
// value yields ok == false; the caller responds with 400.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(r.Context(), category)
	if err != nil {
		log.Err(err).Msg("error creating category")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("category_id", id).Msg("error getting category")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, category, http.StatusOK) //nolint:errcheck
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing categories")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	category.ID = id

	updated, err := h.services.CategoryService.UpdateCategory(r.Context(), category)
	if err != nil {
		log.Err(err).Int64("category_id", id).Msg("error updating category")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), id); err != nil {
		log.Err(err).Int64("category_id", id).Msg("error deleting category")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
