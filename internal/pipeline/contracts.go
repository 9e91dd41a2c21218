package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/internal/analysis"
	"github.com/finsightlabs/finsight/internal/entity"
)

// DocumentStore is the slice of the record store the orchestrator mutates.
// Each method is a single-document atomic write.
type DocumentStore interface {
	MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	MarkAnalyzed(ctx context.Context, id uuid.UUID, completedAt time.Time, processingSeconds float64) error
	MarkFailed(ctx context.Context, id uuid.UUID, failedAt time.Time, message string) error
}

// AnalysisStore persists immutable run records. Insert is called exactly
// once per run, at the terminal outcome.
type AnalysisStore interface {
	Insert(ctx context.Context, rec *entity.AnalysisRecord) (uuid.UUID, error)
}

// Analyzer is the time-bounded structured analysis capability.
type Analyzer interface {
	Analyze(ctx context.Context, query, text string) (analysis.StageResults, *analysis.Error)
}
