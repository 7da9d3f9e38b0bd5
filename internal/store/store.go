package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

// Kinds of relay calls kept in history.
const (
	KindEvaluation = "evaluation"
	KindPrompt     = "prompt"
)

// Record is one relay call as seen by the caller. Essay text is never kept,
// only its length.
type Record struct {
	ID          string    `json:"id" example:"01J9Z3K6Q0W8N4V2B7X5C1D3E9"`
	Kind        string    `json:"kind" example:"evaluation"`
	TestType    string    `json:"test_type" example:"IELTS"`
	Status      int       `json:"status" example:"200"`
	EssayLength int       `json:"essay_length,omitempty" example:"1842"`
	Output      string    `json:"output,omitempty"`
	Error       string    `json:"error,omitempty"`
	DurationMs  int64     `json:"duration_ms" example:"5321"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists relay history.
type Store interface {
	SaveRecord(ctx context.Context, rec Record) error
	ListRecords(ctx context.Context, limit int) ([]Record, error)
	GetRecord(ctx context.Context, id string) (Record, error)
	Close() error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// NopStore discards records. Used when history is disabled.
type NopStore struct{}

var _ Store = NopStore{}

func (NopStore) SaveRecord(context.Context, Record) error { return nil }

func (NopStore) ListRecords(context.Context, int) ([]Record, error) { return []Record{}, nil }

func (NopStore) GetRecord(context.Context, string) (Record, error) { return Record{}, ErrNotFound }

func (NopStore) Close() error { return nil }
