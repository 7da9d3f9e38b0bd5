// worker/pool.go
package worker

import (
	"errors"
	"sync"
)

var (
	ErrPoolClosed = errors.New("worker pool closed")
	ErrQueueFull  = errors.New("worker queue full")
)

type Job[T any] func() T

type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines. Results are
// handed to the callback given to NewPool, if any.
type Pool[T any] struct {
	jobs     chan jobWrapper[T]
	onResult func(Result[T])

	wg        sync.WaitGroup
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

func NewPool[T any](workerCount int, bufferSize int, onResult func(Result[T])) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		jobs:     make(chan jobWrapper[T], bufferSize),
		onResult: onResult,
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		output := job.fn()
		if p.onResult != nil {
			p.onResult(Result[T]{
				JobID:  job.id,
				Output: output,
			})
		}
	}
}

// TrySubmit enqueues a job only if a buffer slot is free. It never blocks.
func (p *Pool[T]) TrySubmit(id string, fn Job[T]) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- jobWrapper[T]{id: id, fn: fn}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (p *Pool[T]) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()
	})
	p.wg.Wait()
}
