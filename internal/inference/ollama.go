package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultURL   = "http://localhost:11434"
	DefaultModel = "llama2"

	chatPath = "/api/chat"
)

// OllamaClient talks to the chat endpoint of a local Ollama server.
type OllamaClient struct {
	url    string       // e.g. "http://localhost:11434"
	model  string       // e.g. "llama2"
	client *http.Client // reused across calls
}

// Compile-time check: *OllamaClient satisfies the Client interface.
var _ Client = (*OllamaClient)(nil)

// UpstreamError is returned when the model server answers with a non-200
// status, so callers can tell "the model rejected the call" apart from
// "the model was unreachable."
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model server returned status %d", e.StatusCode)
}

// NewOllamaClient creates a client for the given server. A zero timeout
// leaves the call unbounded except by the caller's context.
func NewOllamaClient(url, model string, timeout time.Duration) *OllamaClient {
	if url == "" {
		url = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &OllamaClient{
		url:   strings.TrimRight(url, "/"),
		model: model,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the model identifier sent with every request.
func (c *OllamaClient) Model() string {
	return c.model
}

// ============================================================================
// Wire format
// ============================================================================

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// chatResponse keeps only the field we read. A missing message or content
// decodes to the empty string.
type chatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Chat performs one blocking, non-streaming chat call and returns the
// trimmed reply content. There are no retries.
func (c *OllamaClient) Chat(ctx context.Context, messages []Message) (string, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+chatPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	return strings.TrimSpace(chatResp.Message.Content), nil
}
