package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var supplier models.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SupplierService.CreateSupplier(r.Context(), supplier)
	if err != nil {
		log.Err(err).Msg("error creating supplier")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	supplier, err := h.services.SupplierService.GetSupplier(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("supplier_id", id).Msg("error getting supplier")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, supplier, http.StatusOK) //nolint:errcheck
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	suppliers, err := h.services.SupplierService.ListSuppliers(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing suppliers")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, suppliers, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	var supplier models.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	supplier.ID = id

	updated, err := h.services.SupplierService.UpdateSupplier(r.Context(), supplier)
	if err != nil {
		log.Err(err).Int64("supplier_id", id).Msg("error updating supplier")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "invalid supplier ID", http.StatusBadRequest)
		return
	}

	if err := h.services.SupplierService.DeleteSupplier(r.Context(), id); err != nil {
		log.Err(err).Int64("supplier_id", id).Msg("error deleting supplier")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
