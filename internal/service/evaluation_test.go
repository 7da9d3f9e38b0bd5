package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/evaluatehub/backend/internal/events"
	"github.com/evaluatehub/backend/internal/inference"
	"github.com/evaluatehub/backend/internal/rubric"
	"github.com/evaluatehub/backend/internal/service"
	"github.com/evaluatehub/backend/internal/store"
)

// fakeClient records the messages it receives and returns a canned reply.
type fakeClient struct {
	mu    sync.Mutex
	calls [][]inference.Message
	reply string
	err   error
}

func (f *fakeClient) Chat(_ context.Context, messages []inference.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, messages)
	return f.reply, f.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *fakePublisher) Close() {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEvaluate_BuildsMessages(t *testing.T) {
	llm := &fakeClient{reply: "Task Response: 6"}
	svc := service.NewEvaluationService(llm, nil, discardLogger())

	got, err := svc.Evaluate(context.Background(), service.EvaluateRequest{
		Essay:         "Climate change is...",
		TestType:      rubric.EssayIELTS,
		GradingPrompt: "Discuss climate policy.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Task Response: 6" {
		t.Errorf("expected reply to pass through, got %q", got)
	}

	if len(llm.calls) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(llm.calls))
	}
	msgs := llm.calls[0]
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	if msgs[0].Role != inference.RoleSystem || msgs[0].Content != rubric.GradingInstruction(rubric.EssayIELTS, "Discuss climate policy.") {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
	if msgs[1].Role != inference.RoleUser || msgs[1].Content != "Climate change is..." {
		t.Errorf("unexpected user message: %+v", msgs[1])
	}
}

func TestGeneratePrompt_SystemMessageOnly(t *testing.T) {
	llm := &fakeClient{reply: "Some people believe..."}
	svc := service.NewEvaluationService(llm, nil, discardLogger())

	got, err := svc.GeneratePrompt(context.Background(), rubric.PromptGREArgument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Some people believe..." {
		t.Errorf("unexpected reply %q", got)
	}

	msgs := llm.calls[0]
	if len(msgs) != 1 {
		t.Fatalf("expected only a system message, got %d messages", len(msgs))
	}
	if msgs[0].Role != inference.RoleSystem || msgs[0].Content != rubric.GenerationInstruction(rubric.PromptGREArgument) {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{&inference.UpstreamError{StatusCode: 500, Body: "boom"}, http.StatusBadGateway},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := service.StatusOf(tt.err); got != tt.want {
			t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRecorder_PersistsAndPublishes(t *testing.T) {
	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	pub := &fakePublisher{}
	recorder := service.NewRecorder(db, pub, 2, discardLogger())

	llm := &fakeClient{err: &inference.UpstreamError{StatusCode: 404, Body: "model not found"}}
	svc := service.NewEvaluationService(llm, recorder, discardLogger())

	_, err = svc.Evaluate(context.Background(), service.EvaluateRequest{
		Essay:    "An essay",
		TestType: rubric.EssaySAT,
	})
	if err == nil {
		t.Fatal("expected upstream error")
	}

	llm.err = nil
	llm.reply = "A prompt"
	if _, err := svc.GeneratePrompt(context.Background(), rubric.PromptIELTS); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recorder.Close()

	records, err := db.ListRecords(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	byKind := make(map[string]store.Record)
	for _, r := range records {
		byKind[r.Kind] = r
	}

	eval := byKind[store.KindEvaluation]
	if eval.Status != http.StatusBadGateway || eval.TestType != "SAT" || eval.EssayLength != len("An essay") {
		t.Errorf("unexpected evaluation record: %+v", eval)
	}
	if !strings.Contains(eval.Error, "404") {
		t.Errorf("expected upstream status in error, got %q", eval.Error)
	}

	prompt := byKind[store.KindPrompt]
	if prompt.Status != http.StatusOK || prompt.TestType != "IELTS" || prompt.Output != "A prompt" {
		t.Errorf("unexpected prompt record: %+v", prompt)
	}

	if len(pub.events) != 2 {
		t.Errorf("expected 2 published events, got %d", len(pub.events))
	}
}

func TestRecorder_HidesInternalErrorDetail(t *testing.T) {
	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	recorder := service.NewRecorder(db, events.NopPublisher{}, 1, discardLogger())
	llm := &fakeClient{err: errors.New(`Post "http://10.0.0.7:11434/api/chat": dial tcp: connection refused`)}
	svc := service.NewEvaluationService(llm, recorder, discardLogger())

	svc.Evaluate(context.Background(), service.EvaluateRequest{Essay: "An essay", TestType: rubric.EssayGRE})
	recorder.Close()

	records, err := db.ListRecords(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", records[0].Status)
	}
	if records[0].Error != "internal error" {
		t.Errorf("expected generic error text, got %q", records[0].Error)
	}
}

func TestRecorder_RecordAfterCloseReportsClosed(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	recorder := service.NewRecorder(store.NopStore{}, events.NopPublisher{}, 1, logger)
	recorder.Close()

	recorder.Record(store.Record{Kind: store.KindPrompt, TestType: "SAT", Status: http.StatusOK})

	out := buf.String()
	if !strings.Contains(out, "worker pool closed") {
		t.Errorf("expected closed reason in log, got %q", out)
	}
	if strings.Contains(out, "queue full") {
		t.Errorf("closed recorder reported a full queue: %q", out)
	}
}
