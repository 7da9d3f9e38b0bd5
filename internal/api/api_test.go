package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/evaluatehub/backend/internal/api"
	"github.com/evaluatehub/backend/internal/inference"
	"github.com/evaluatehub/backend/internal/service"
	"github.com/evaluatehub/backend/internal/store"
)

type chatPayload struct {
	Model    string              `json:"model"`
	Messages []inference.Message `json:"messages"`
	Stream   bool                `json:"stream"`
}

// fakeModel is a stand-in for the local Ollama server.
type fakeModel struct {
	mu       sync.Mutex
	requests []chatPayload

	status int
	body   string
}

func (m *fakeModel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var p chatPayload
	json.NewDecoder(r.Body).Decode(&p)

	m.mu.Lock()
	m.requests = append(m.requests, p)
	status, body := m.status, m.body
	m.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func (m *fakeModel) calls() []chatPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]chatPayload(nil), m.requests...)
}

func replyWith(content string) string {
	b, _ := json.Marshal(map[string]any{
		"model":   "llama2",
		"message": map[string]string{"role": "assistant", "content": content},
		"done":    true,
	})
	return string(b)
}

type testServer struct {
	model   *fakeModel
	handler http.Handler
}

func newTestServer(t *testing.T, model *fakeModel, history store.Store) *testServer {
	t.Helper()

	upstream := httptest.NewServer(model)
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	llm := inference.NewOllamaClient(upstream.URL, "llama2", 0)
	relay := service.NewEvaluationService(llm, nil, logger)
	h := api.NewHandler(relay, history, logger, api.Options{ModelName: "llama2", MaxBodyBytes: 4096})

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, h)

	return &testServer{model: model, handler: mux}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON response, got content type %q", ct)
	}
	var m map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakeModel{}, nil)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decodeMap(t, rec)["status"] != "ok" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
