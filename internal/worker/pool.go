package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines fed by a bounded queue.
// Enqueue never blocks; Shutdown drains what was accepted.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	stopped bool

	// ctx is handed to jobs and cancelled if Shutdown runs out of time
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := job.Process(p.ctx); err != nil {
			// Don't crash the worker on a failed job
			slog.Error(LogMsgWorkerJobFailed, "error", err)
		}
	}
}

// Enqueue adds a job to the queue. It returns false, dropping the job,
// when the queue is full or the pool has been shut down.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		slog.Warn(LogMsgWorkerJobDropped, "reason", "stopped")
		return false
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		slog.Warn(LogMsgWorkerJobDropped, "reason", "queue_full", "capacity", cap(p.jobQueue))
		return false
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish.
// If ctx expires first, in-flight jobs see their context cancelled and
// ctx.Err() is returned.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobQueue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}
