package analysis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type stubRunner struct {
	fn func(ctx context.Context, query, text string) (StageResults, error)
}

func (s *stubRunner) RunStages(ctx context.Context, query, text string) (StageResults, error) {
	return s.fn(ctx, query, text)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyzeSuccess(t *testing.T) {
	want := StageResults{"document_analysis": "looks like a 10-K", "verification": "authentic"}
	e := NewEngine(&stubRunner{
		fn: func(ctx context.Context, query, text string) (StageResults, error) {
			return want, nil
		},
	}, time.Second, 10000, quietLogger())

	got, aerr := e.Analyze(context.Background(), "summarize", "some document text")
	if aerr != nil {
		t.Fatalf("Analyze: %v", aerr)
	}
	if got["document_analysis"] != want["document_analysis"] {
		t.Errorf("results = %v", got)
	}
}

func TestAnalyzeTruncatesInput(t *testing.T) {
	var seen string
	e := NewEngine(&stubRunner{
		fn: func(ctx context.Context, query, text string) (StageResults, error) {
			seen = text
			return StageResults{}, nil
		},
	}, time.Second, 10000, quietLogger())

	long := strings.Repeat("a", 25000)
	if _, aerr := e.Analyze(context.Background(), "q", long); aerr != nil {
		t.Fatalf("Analyze: %v", aerr)
	}
	if len(seen) != 10000 {
		t.Errorf("engine received %d chars, want 10000", len(seen))
	}
}

func TestAnalyzeTimeoutOnHungRunner(t *testing.T) {
	e := NewEngine(&stubRunner{
		fn: func(ctx context.Context, query, text string) (StageResults, error) {
			<-ctx.Done() // simulate a call that never returns on its own
			return nil, ctx.Err()
		},
	}, 50*time.Millisecond, 10000, quietLogger())

	start := time.Now()
	_, aerr := e.Analyze(context.Background(), "q", "text")
	elapsed := time.Since(start)

	if aerr == nil || aerr.Kind != KindTimeout {
		t.Fatalf("got %v, want timeout failure", aerr)
	}
	if elapsed > time.Second {
		t.Errorf("timeout observed after %s, want within budget + epsilon", elapsed)
	}
	if !strings.Contains(aerr.Message, "timed out") {
		t.Errorf("message = %q", aerr.Message)
	}
}

func TestAnalyzeEngineFailure(t *testing.T) {
	e := NewEngine(&stubRunner{
		fn: func(ctx context.Context, query, text string) (StageResults, error) {
			return nil, errors.New("upstream returned 500")
		},
	}, time.Second, 10000, quietLogger())

	_, aerr := e.Analyze(context.Background(), "q", "text")
	if aerr == nil || aerr.Kind != KindEngineFailure {
		t.Fatalf("got %v, want engine_failure", aerr)
	}
	if IsTimeout(aerr) {
		t.Errorf("engine failure misclassified as timeout")
	}
}
