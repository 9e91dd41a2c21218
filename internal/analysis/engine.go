package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Engine wraps a StageRunner with the pipeline-facing contract: input text
// is truncated to a bounded prefix, and the whole multi-stage run executes
// under a hard wall-clock budget on its own goroutine. On budget expiry the
// in-flight call is abandoned (cancellation is best-effort via ctx) and a
// typed timeout failure is returned instead of blocking the caller.
type Engine struct {
	runner   StageRunner
	logger   *slog.Logger
	timeout  time.Duration
	maxChars int
}

func NewEngine(runner StageRunner, timeout time.Duration, maxChars int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	if maxChars <= 0 {
		maxChars = 10000
	}
	return &Engine{runner: runner, logger: logger, timeout: timeout, maxChars: maxChars}
}

// Analyze runs the stages and classifies any failure as timeout or
// engine_failure. A nil *Error means results is valid.
func (e *Engine) Analyze(ctx context.Context, query, text string) (StageResults, *Error) {
	if len(text) > e.maxChars {
		text = text[:e.maxChars]
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type outcome struct {
		results StageResults
		err     error
	}
	ch := make(chan outcome, 1)
	start := time.Now()
	go func() {
		results, err := e.runner.RunStages(ctx, query, text)
		ch <- outcome{results, err}
	}()

	select {
	case <-ctx.Done():
		e.logger.Error("structured analysis timed out",
			"timeout", e.timeout, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, &Error{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("analysis timed out after %s", e.timeout),
		}
	case out := <-ch:
		if out.err != nil {
			// the runner may surface the deadline itself
			if ctx.Err() != nil {
				return nil, &Error{
					Kind:    KindTimeout,
					Message: fmt.Sprintf("analysis timed out after %s", e.timeout),
				}
			}
			e.logger.Error("structured analysis failed", "error", out.err,
				"elapsed_ms", time.Since(start).Milliseconds())
			return nil, &Error{
				Kind:    KindEngineFailure,
				Message: fmt.Sprintf("analysis failed: %v", out.err),
			}
		}
		e.logger.Info("structured analysis completed",
			"stages", len(out.results), "elapsed_ms", time.Since(start).Milliseconds())
		return out.results, nil
	}
}
