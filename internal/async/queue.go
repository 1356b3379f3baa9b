package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (device, trace, retry, etc).
type Job struct {
	FileID      uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// FileProcessor runs the scan pipeline for one file. *processor.Processor is
// the production implementation.
type FileProcessor interface {
	ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error)
}

// WorkerPool drains jobs into the processing pipeline on a fixed number of
// goroutines.
type WorkerPool struct {
	jobs   chan Job
	proc   FileProcessor
	logger *slog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewWorkerPool(workers, buffer int, proc FileProcessor, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 2
	}
	if buffer <= 0 {
		buffer = 64
	}
	p := &WorkerPool{
		jobs:   make(chan Job, buffer),
		proc:   proc,
		logger: logger,
	}
	for range workers {
		p.wg.Add(1)
		go p.worker()
	}
	logger.Info("started scan workers", "workers", workers, "buffer", buffer)
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		start := time.Now()
		if _, err := p.proc.ProcessFile(context.Background(), job.FileID); err != nil {
			p.logger.Error("queue.job.failed", "file_id", job.FileID, "trace_id", job.TraceID, "err", err)
			continue
		}
		p.logger.Info("queue.job.ok",
			"file_id", job.FileID,
			"trace_id", job.TraceID,
			"queued_for", time.Since(job.SubmittedAt),
			"elapsed", time.Since(start),
		)
	}
}

// Enqueue submits a job, blocking until there is buffer space or ctx expires.
func (p *WorkerPool) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake and waits for in-flight jobs, or until ctx expires.
func (p *WorkerPool) Shutdown(ctx context.Context) {
	p.stopOnce.Do(func() { close(p.jobs) })
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.logger.Info("scan workers drained")
	case <-ctx.Done():
		p.logger.Warn("shutdown deadline reached with jobs in flight")
	}
}
