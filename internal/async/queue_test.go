package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu      sync.Mutex
	seen    []uuid.UUID
	failing bool
}

func (c *countingProcessor) ProcessFile(_ context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, fileID)
	if c.failing {
		return uuid.Nil, errors.New("boom")
	}
	return uuid.New(), nil
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func TestWorkerPoolProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	pool := NewWorkerPool(3, 16, proc, nil)

	for range 10 {
		require.NoError(t, pool.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool.Shutdown(ctx)

	assert.Equal(t, 10, proc.count())
}

func TestWorkerPoolSurvivesJobFailures(t *testing.T) {
	proc := &countingProcessor{failing: true}
	pool := NewWorkerPool(1, 4, proc, nil)

	for range 3 {
		require.NoError(t, pool.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool.Shutdown(ctx)

	assert.Equal(t, 3, proc.count())
}

func TestEnqueueHonorsContext(t *testing.T) {
	block := make(chan struct{})
	proc := &countingProcessor{}
	pool := NewWorkerPool(1, 1, slowProcessor{block: block, inner: proc}, nil)

	// fill the worker and the buffer
	require.NoError(t, pool.Enqueue(context.Background(), Job{FileID: uuid.New()}))
	require.NoError(t, pool.Enqueue(context.Background(), Job{FileID: uuid.New()}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := pool.Enqueue(ctx, Job{FileID: uuid.New()})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(block)
	sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer scancel()
	pool.Shutdown(sctx)
}

type slowProcessor struct {
	block chan struct{}
	inner *countingProcessor
}

func (s slowProcessor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	<-s.block
	return s.inner.ProcessFile(ctx, fileID)
}
