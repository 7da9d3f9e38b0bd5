package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/evaluatehub/backend/internal/events"
	"github.com/evaluatehub/backend/internal/id"
	"github.com/evaluatehub/backend/internal/store"
	"github.com/evaluatehub/backend/internal/worker"
)

const (
	recordQueueSize = 256
	persistTimeout  = 5 * time.Second
)

// Recorder keeps a best-effort history of relay calls. Records are written
// off the request path; failures are logged and never reach the caller.
type Recorder struct {
	store     store.Store
	publisher events.Publisher
	pool      *worker.Pool[error]
	logger    *slog.Logger
}

// NewRecorder starts workers that persist and publish records.
func NewRecorder(s store.Store, p events.Publisher, workers int, logger *slog.Logger) *Recorder {
	r := &Recorder{
		store:     s,
		publisher: p,
		logger:    logger,
	}
	r.pool = worker.NewPool[error](workers, recordQueueSize, func(res worker.Result[error]) {
		if res.Output != nil {
			r.logger.Error("failed to record relay call", "record_id", res.JobID, "error", res.Output)
		}
	})
	return r
}

// Record assigns an ID and timestamp and queues rec. It never blocks; when
// the queue is full or the recorder is closed the record is dropped.
func (r *Recorder) Record(rec store.Record) {
	if r == nil {
		return
	}
	rec.ID = id.New()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if err := r.pool.TrySubmit(rec.ID, func() error { return r.persist(rec) }); err != nil {
		r.logger.Warn("dropping history record", "record_id", rec.ID, "kind", rec.Kind, "reason", err)
	}
}

// persist uses its own context because recording must outlive the HTTP
// request that produced the record.
func (r *Recorder) persist(rec store.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	var errs []error
	if err := r.store.SaveRecord(ctx, rec); err != nil {
		errs = append(errs, fmt.Errorf("save: %w", err))
	}

	ev := events.Event{
		ID:         rec.ID,
		Kind:       rec.Kind,
		TestType:   rec.TestType,
		Status:     rec.Status,
		DurationMs: rec.DurationMs,
		OccurredAt: rec.CreatedAt,
	}
	if err := r.publisher.Publish(ctx, ev); err != nil {
		errs = append(errs, fmt.Errorf("publish: %w", err))
	}

	return errors.Join(errs...)
}

// Close waits for queued records to be written.
func (r *Recorder) Close() {
	if r == nil {
		return
	}
	r.pool.Close()
}
