package api

import (
	"net/http"
	"strconv"

	"github.com/evaluatehub/backend/internal/store"
)

// listHistory returns recent relay calls.
// @Summary      List relay history
// @Description  Returns the most recent evaluation and prompt-generation calls, newest first. Essay text is never stored.
// @Tags         History
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of records (1-500, default 50)"
// @Success      200    {array}   store.Record
// @Failure      500    {object}  ErrorResponse
// @Router       /history [get]
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.history.ListRecords(r.Context(), limit)
	if h.handleStoreError(w, err, "history") {
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// getHistoryRecord returns one relay call.
// @Summary      Get a history record
// @Tags         History
// @Produce      json
// @Param        recordID  path      string  true  "Record ID"
// @Success      200       {object}  store.Record
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /history/{recordID} [get]
func (h *Handler) getHistoryRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := h.history.GetRecord(r.Context(), r.PathValue("recordID"))
	if h.handleStoreError(w, err, "record") {
		return
	}

	respondJSON(w, http.StatusOK, rec)
}
