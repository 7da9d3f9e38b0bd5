// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Relay
	mux.HandleFunc("POST /evaluate", h.evaluateEssay)
	mux.HandleFunc("GET /generate-prompt", h.generatePrompt)

	// History
	mux.HandleFunc("GET /history", h.listHistory)
	mux.HandleFunc("GET /history/{recordID}", h.getHistoryRecord)
}

// health reports liveness.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
