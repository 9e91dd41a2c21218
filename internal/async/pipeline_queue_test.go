package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/pipeline"
)

type countingRunner struct {
	mu   sync.Mutex
	runs []uuid.UUID
}

func (r *countingRunner) Run(ctx context.Context, documentID uuid.UUID, filePath, query, ownerID string) pipeline.Outcome {
	r.mu.Lock()
	r.runs = append(r.runs, documentID)
	r.mu.Unlock()
	return pipeline.Outcome{Status: constants.AnalysisCompleted}
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueRunsEveryJob(t *testing.T) {
	runner := &countingRunner{}
	q := NewPipelineQueue(runner, testLogger(), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := runner.count(); got != 5 {
		t.Fatalf("ran %d jobs, want 5", got)
	}
}

func TestQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	runner := &countingRunner{}
	q := NewPipelineQueue(runner, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("enqueue after shutdown: %v", err)
	}
	if got := runner.count(); got != 0 {
		t.Fatalf("ran %d jobs after shutdown, want 0", got)
	}
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewPipelineQueue(&countingRunner{}, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
