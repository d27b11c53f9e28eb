package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

func (h *Handler) summaryReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	metrics, err := h.services.ReportService.SummaryMetrics(r.Context())
	if err != nil {
		log.Err(err).Msg("error building summary report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, metrics, http.StatusOK) //nolint:errcheck
}

// statsReport reuses the movement filter decoding: ?from and ?to bound the
// reporting period, ?product_id and ?type are ignored by the aggregation.
func (h *Handler) statsReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.ReportService.InventoryStats(r.Context(), movementFilterFromQuery(r))
	if err != nil {
		log.Err(err).Msg("error building inventory stats report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK) //nolint:errcheck
}

func (h *Handler) categoryReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ReportService.CategoryPerformance(r.Context())
	if err != nil {
		log.Err(err).Msg("error building category performance report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK) //nolint:errcheck
}

func (h *Handler) productReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// zero means "service default"
	limit, _ := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)

	report, err := h.services.ReportService.ProductPerformance(r.Context(), limit)
	if err != nil {
		log.Err(err).Msg("error building product performance report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK) //nolint:errcheck
}

func (h *Handler) supplierReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ReportService.SupplierPerformance(r.Context())
	if err != nil {
		log.Err(err).Msg("error building supplier performance report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK) //nolint:errcheck
}

func (h *Handler) stockStatusReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ReportService.StockStatus(r.Context())
	if err != nil {
		log.Err(err).Msg("error building stock status report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK) //nolint:errcheck
}

func (h *Handler) recommendationsReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ReportService.Recommendations(r.Context())
	if err != nil {
		log.Err(err).Msg("error building recommendations report")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK) //nolint:errcheck
}
