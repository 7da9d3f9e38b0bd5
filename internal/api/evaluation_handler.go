package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/evaluatehub/backend/internal/rubric"
	"github.com/evaluatehub/backend/internal/service"
)

var ErrEmptyEssay = errors.New("No essay received")

// ── Request / Response types ────────────────────────────────────────────────

type EvaluateEssayRequest struct {
	Essay    string `json:"essay" example:"Climate change is one of the most pressing issues..."`
	TestType string `json:"test_type" example:"IELTS"`
	Prompt   string `json:"prompt,omitempty" example:"Some people think governments should tax carbon. Discuss."`
}

// Validate trims the request and converts it into a service request.
// The essay is checked before the test type.
func (r *EvaluateEssayRequest) Validate() (service.EvaluateRequest, error) {
	essay := strings.TrimSpace(r.Essay)
	if essay == "" {
		return service.EvaluateRequest{}, ErrEmptyEssay
	}

	testType, err := rubric.ParseEssayType(r.TestType)
	if err != nil {
		return service.EvaluateRequest{}, err
	}

	return service.EvaluateRequest{
		Essay:         essay,
		TestType:      testType,
		GradingPrompt: strings.TrimSpace(r.Prompt),
	}, nil
}

type EvaluateEssayResponse struct {
	Evaluation string `json:"evaluation" example:"Task Response: 6\nCoherence and Cohesion: 6..."`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// evaluateEssay grades an essay against the rubric of its test type.
// @Summary      Evaluate an essay
// @Description  Builds the rubric for the test type, sends it with the essay to the local model and returns the evaluation text.
// @Tags         Relay
// @Accept       json
// @Produce      json
// @Param        body  body      EvaluateEssayRequest  true  "Essay to evaluate"
// @Success      200   {object}  EvaluateEssayResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      413   {object}  ErrorResponse
// @Failure      415   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Router       /evaluate [post]
func (h *Handler) evaluateEssay(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		respondError(w, http.StatusUnsupportedMediaType, "Invalid content type")
		return
	}

	var req EvaluateEssayRequest
	if status, err := h.decodeBody(w, r, &req); err != nil {
		h.logger.Debug("rejected evaluation body", "error", err)
		if status == http.StatusRequestEntityTooLarge {
			respondError(w, status, "Request body too large")
			return
		}
		respondError(w, status, "Invalid JSON")
		return
	}

	h.logger.Debug("received essay",
		"test_type", req.TestType,
		"essay_length", len(req.Essay),
		"has_prompt", req.Prompt != "",
	)

	evalReq, err := req.Validate()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	evaluation, err := h.relay.Evaluate(r.Context(), evalReq)
	if err != nil {
		h.writeRelayError(w, err, fmt.Sprintf("Failed to get response from %s", h.modelName))
		return
	}

	respondJSON(w, http.StatusOK, EvaluateEssayResponse{Evaluation: evaluation})
}

// isJSON reports whether the request declares a JSON body. Media type
// parameters such as charset are ignored.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeBody reads exactly one JSON value from a size-capped body. On
// failure it returns the status to report.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) (int, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))

	err := dec.Decode(v)
	if err == nil {
		// Reject trailing data after the first value.
		switch extra := dec.Decode(&json.RawMessage{}); {
		case extra == nil:
			err = errors.New("unexpected data after JSON body")
		case !errors.Is(extra, io.EOF):
			err = extra
		}
	}
	if err == nil {
		return http.StatusOK, nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge, err
	}
	return http.StatusBadRequest, err
}
