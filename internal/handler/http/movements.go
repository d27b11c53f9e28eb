package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// movementFilterFromQuery decodes the list filter from URL query parameters.
// Period bounds use RFC 3339 timestamps; malformed values are treated as
// absent.
func movementFilterFromQuery(r *http.Request) models.MovementFilter {
	query := r.URL.Query()

	var filter models.MovementFilter
	if productID, err := strconv.ParseInt(query.Get("product_id"), 10, 64); err == nil {
		filter.ProductID = productID
	}
	filter.Type = query.Get("type")
	if from, err := time.Parse(time.RFC3339, query.Get("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse(time.RFC3339, query.Get("to")); err == nil {
		filter.To = to
	}

	return filter
}

func (h *Handler) recordMovement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var movement models.StockMovement
	if err := json.NewDecoder(r.Body).Decode(&movement); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	recorded, err := h.services.MovementService.RecordMovement(r.Context(), movement)
	if err != nil {
		log.Err(err).Int64("product_id", movement.ProductID).Msg("error recording movement")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, recorded, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) listMovements(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	movements, err := h.services.MovementService.ListMovements(r.Context(), movementFilterFromQuery(r))
	if err != nil {
		log.Err(err).Msg("error listing movements")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, movements, http.StatusOK) //nolint:errcheck
}
