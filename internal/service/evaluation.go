// internal/service/evaluation.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/evaluatehub/backend/internal/inference"
	"github.com/evaluatehub/backend/internal/rubric"
	"github.com/evaluatehub/backend/internal/store"
)

// EvaluateRequest contains everything needed to grade one essay.
type EvaluateRequest struct {
	Essay         string // trimmed, non-empty
	TestType      rubric.EssayType
	GradingPrompt string // optional task text the essay answers
}

// EvaluationService relays grading and prompt-generation calls to the model.
// Every call is a single synchronous round trip; the service holds no
// per-request state.
type EvaluationService struct {
	llm      inference.Client
	recorder *Recorder
	logger   *slog.Logger
}

// NewEvaluationService creates an EvaluationService. recorder may be nil.
func NewEvaluationService(llm inference.Client, recorder *Recorder, logger *slog.Logger) *EvaluationService {
	return &EvaluationService{
		llm:      llm,
		recorder: recorder,
		logger:   logger,
	}
}

// Evaluate sends the rubric as the system message and the essay as the
// user message, and returns the model's evaluation text.
func (s *EvaluationService) Evaluate(ctx context.Context, req EvaluateRequest) (string, error) {
	start := time.Now()

	messages := []inference.Message{
		{Role: inference.RoleSystem, Content: rubric.GradingInstruction(req.TestType, req.GradingPrompt)},
		{Role: inference.RoleUser, Content: req.Essay},
	}

	reply, err := s.llm.Chat(ctx, messages)
	if err != nil {
		s.logger.Error("evaluation failed",
			"test_type", req.TestType.String(),
			"error", err,
		)
	}

	s.recorder.Record(newRecord(store.KindEvaluation, req.TestType.String(), reply, err, start,
		utf8.RuneCountInString(req.Essay)))

	return reply, err
}

// GeneratePrompt asks the model for one writing prompt of the given type.
// Only a system message is sent.
func (s *EvaluationService) GeneratePrompt(ctx context.Context, t rubric.PromptType) (string, error) {
	start := time.Now()

	messages := []inference.Message{
		{Role: inference.RoleSystem, Content: rubric.GenerationInstruction(t)},
	}

	reply, err := s.llm.Chat(ctx, messages)
	if err != nil {
		s.logger.Error("prompt generation failed",
			"test_type", t.String(),
			"error", err,
		)
	}

	s.recorder.Record(newRecord(store.KindPrompt, t.String(), reply, err, start, 0))

	return reply, err
}

const internalErrorText = "internal error"

// StatusOf maps a relay error to the HTTP status reported to the caller.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var upstream *inference.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func newRecord(kind, testType, reply string, err error, start time.Time, essayLength int) store.Record {
	rec := store.Record{
		Kind:        kind,
		TestType:    testType,
		Status:      StatusOf(err),
		EssayLength: essayLength,
		Output:      reply,
		DurationMs:  time.Since(start).Milliseconds(),
		CreatedAt:   start.UTC(),
	}
	if err != nil {
		rec.Error = recordedError(err)
	}
	return rec
}

// recordedError is the error text kept in history. History is served
// without authentication, so only upstream status errors are stored
// verbatim; anything else could carry hosts, paths or decoder output.
func recordedError(err error) string {
	var upstream *inference.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Error()
	}
	return internalErrorText
}
