package analysis

import (
	"context"
	"errors"
	"fmt"
)

// StageResults maps stage name -> stage output for one engine run.
type StageResults map[string]string

// StageRunner executes the fixed, ordered analytical stages against an
// external engine. Implementations must respect ctx cancellation on their
// outbound calls; they are not otherwise time-bounded (the Engine wrapper
// owns the wall-clock budget).
type StageRunner interface {
	RunStages(ctx context.Context, query, text string) (StageResults, error)
}

// ErrorKind distinguishes the two engine failure modes the pipeline
// persists differently from a crash.
type ErrorKind string

const (
	KindTimeout       ErrorKind = "timeout"
	KindEngineFailure ErrorKind = "engine_failure"
)

// Error is a typed engine failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsTimeout reports whether err is a typed timeout failure.
func IsTimeout(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == KindTimeout
}
