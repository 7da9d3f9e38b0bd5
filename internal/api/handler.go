// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/evaluatehub/backend/internal/inference"
	"github.com/evaluatehub/backend/internal/service"
	"github.com/evaluatehub/backend/internal/store"
)

const internalErrorMessage = "An internal error occurred"

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	relay        *service.EvaluationService
	history      store.Store
	logger       *slog.Logger
	modelName    string
	maxBodyBytes int64
}

// Options carries the tunables of a Handler.
type Options struct {
	ModelName    string // shown in upstream error messages
	MaxBodyBytes int64  // cap on the evaluation request body
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(relay *service.EvaluationService, history store.Store, logger *slog.Logger, opts Options) *Handler {
	if opts.ModelName == "" {
		opts.ModelName = inference.DefaultModel
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if history == nil {
		history = store.NopStore{}
	}
	return &Handler{
		relay:        relay,
		history:      history,
		logger:       logger,
		modelName:    opts.ModelName,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string  `json:"error" example:"Invalid JSON"`
	Details *string `json:"details,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// writeRelayError maps a failed model call to a response. Upstream
// rejections carry the upstream body for diagnostics; everything else is
// logged and reported generically.
func (h *Handler) writeRelayError(w http.ResponseWriter, err error, upstreamMessage string) {
	var upstream *inference.UpstreamError
	if errors.As(err, &upstream) {
		details := upstream.Body
		respondJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   upstreamMessage,
			Details: &details,
		})
		return
	}
	h.logger.Error("relay error", "error", err)
	respondError(w, service.StatusOf(err), internalErrorMessage)
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, internalErrorMessage)
	return true
}
