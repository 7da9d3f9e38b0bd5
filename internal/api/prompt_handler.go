package api

import (
	"fmt"
	"net/http"

	"github.com/evaluatehub/backend/internal/rubric"
)

type GeneratePromptResponse struct {
	Prompt string `json:"prompt" example:"Some people believe that university education should be free. To what extent do you agree or disagree?"`
}

// generatePrompt asks the model for one writing prompt.
// @Summary      Generate a writing prompt
// @Description  Asks the local model for exactly one essay prompt of the requested test type.
// @Tags         Relay
// @Produce      json
// @Param        test_type  query     string  true  "IELTS, SAT, GRE-ISSUE or GRE-ARGUMENT (case-insensitive)"
// @Success      200        {object}  GeneratePromptResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Failure      502        {object}  ErrorResponse
// @Router       /generate-prompt [get]
func (h *Handler) generatePrompt(w http.ResponseWriter, r *http.Request) {
	promptType, err := rubric.ParsePromptType(r.URL.Query().Get("test_type"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt, err := h.relay.GeneratePrompt(r.Context(), promptType)
	if err != nil {
		h.writeRelayError(w, err, fmt.Sprintf("Failed to get prompt from %s", h.modelName))
		return
	}

	respondJSON(w, http.StatusOK, GeneratePromptResponse{Prompt: prompt})
}
