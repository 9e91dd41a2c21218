package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/extract"
	"github.com/finsightlabs/finsight/internal/summary"
)

// Outcome is returned to the caller for logging/metrics only; durability is
// guaranteed by the store writes before Run returns.
type Outcome struct {
	Status         constants.AnalysisStatus
	ProcessingTime time.Duration
	Err            error
}

// Orchestrator drives one document through
// extraction -> summarization -> structured analysis -> persistence.
// Extraction failures and engine failures are converted into structured
// outcome data; only store-level failures during the final writes surface
// to the caller, and no retry is attempted (a fresh upload retries).
type Orchestrator struct {
	logger       *slog.Logger
	extractor    extract.TextExtractor
	engine       Analyzer
	docs         DocumentStore
	analyses     AnalysisStore
	minTextChars int
}

func NewOrchestrator(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	engine Analyzer,
	docs DocumentStore,
	analyses AnalysisStore,
	minTextChars int,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if minTextChars <= 0 {
		minTextChars = 50
	}
	return &Orchestrator{
		logger:       logger,
		extractor:    extractor,
		engine:       engine,
		docs:         docs,
		analyses:     analyses,
		minTextChars: minTextChars,
	}
}

// Run executes one pipeline run for a document. It always reaches a
// terminal state: the document leaves "processing" as analyzed or failed,
// and exactly one analysis record is inserted.
func (o *Orchestrator) Run(ctx context.Context, docID uuid.UUID, filePath, query, ownerID string) (out Outcome) {
	start := time.Now().UTC()

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("pipeline run panicked", "document_id", docID, "panic", r)
			out = o.recordFailure(ctx, docID, query, ownerID, start, fmt.Sprintf("unexpected error: %v", r))
		}
	}()

	o.logger.Info("pipeline.run.start", "document_id", docID, "owner_id", ownerID, "path", filePath)

	// mark processing before any extraction work so a crash mid-run is
	// observable as "stuck in processing" rather than silently lost
	if err := o.docs.MarkProcessing(ctx, docID, start); err != nil {
		o.logger.Error("pipeline.mark_processing.failed", "document_id", docID, "error", err)
		return o.recordFailure(ctx, docID, query, ownerID, start, fmt.Sprintf("mark processing: %v", err))
	}

	res, err := o.extractor.Extract(ctx, filePath)
	if err != nil {
		return o.recordFailure(ctx, docID, query, ownerID, start, err.Error())
	}
	if n := len(strings.TrimSpace(res.Text)); n < o.minTextChars {
		return o.recordFailure(ctx, docID, query, ownerID, start,
			fmt.Sprintf("insufficient text extracted from document (%d chars)", n))
	}
	o.logger.Debug("pipeline.extract.ok",
		"document_id", docID, "method", res.Method, "pages", res.Pages, "chars", len(res.Text))

	localSummary := summary.Summarize(res.Text)

	stageResults, aerr := o.engine.Analyze(ctx, query, res.Text)

	end := time.Now().UTC()
	processingTime := end.Sub(start)

	status := constants.AnalysisCompleted
	var errMsg *string
	if aerr != nil {
		// partial-failure policy: the heuristic result is always better
		// than no result
		status = constants.AnalysisCompletedWithErrors
		msg := aerr.Error()
		errMsg = &msg
		o.logger.Warn("pipeline.analysis.degraded",
			"document_id", docID, "kind", string(aerr.Kind), "error", aerr.Message)
	}

	textLen := len(res.Text)
	rec := &entity.AnalysisRecord{
		DocumentID:            docID,
		OwnerID:               ownerID,
		Query:                 query,
		Status:                string(status),
		LocalSummary:          &localSummary,
		StageResults:          stageResults,
		ErrorMessage:          errMsg,
		ProcessingTimeSeconds: processingTime.Seconds(),
		TextLength:            &textLen,
		CreatedAt:             end,
	}
	if _, err := o.analyses.Insert(ctx, rec); err != nil {
		o.logger.Error("pipeline.persist.failed", "document_id", docID, "error", err)
		return o.recordFailure(ctx, docID, query, ownerID, start, fmt.Sprintf("persist analysis: %v", err))
	}

	if err := o.docs.MarkAnalyzed(ctx, docID, end, processingTime.Seconds()); err != nil {
		// the analysis record is durable; surface the status-write failure
		// without retrying
		o.logger.Error("pipeline.mark_analyzed.failed", "document_id", docID, "error", err)
		return Outcome{Status: status, ProcessingTime: processingTime, Err: err}
	}

	o.logger.Info("pipeline.run.ok",
		"document_id", docID,
		"status", string(status),
		"processing_time_s", processingTime.Seconds(),
		"text_length", textLen,
	)
	return Outcome{Status: status, ProcessingTime: processingTime}
}

// recordFailure converts a pipeline-level failure into a best-effort failed
// analysis record plus document update. If the secondary writes also fail,
// the error is surfaced to the caller and nothing further is attempted.
func (o *Orchestrator) recordFailure(ctx context.Context, docID uuid.UUID, query, ownerID string, start time.Time, msg string) Outcome {
	now := time.Now().UTC()
	processingTime := now.Sub(start)

	rec := &entity.AnalysisRecord{
		DocumentID:            docID,
		OwnerID:               ownerID,
		Query:                 query,
		Status:                string(constants.AnalysisFailed),
		ErrorMessage:          &msg,
		ProcessingTimeSeconds: processingTime.Seconds(),
		CreatedAt:             now,
	}
	out := Outcome{Status: constants.AnalysisFailed, ProcessingTime: processingTime, Err: errors.New(msg)}

	if _, err := o.analyses.Insert(ctx, rec); err != nil {
		o.logger.Error("pipeline.failure_record.insert_failed", "document_id", docID, "error", err)
		out.Err = fmt.Errorf("%s (failure record write also failed: %v)", msg, err)
		return out
	}
	if err := o.docs.MarkFailed(ctx, docID, now, msg); err != nil {
		o.logger.Error("pipeline.failure_record.status_failed", "document_id", docID, "error", err)
		out.Err = fmt.Errorf("%s (document status write also failed: %v)", msg, err)
		return out
	}

	o.logger.Warn("pipeline.run.failed",
		"document_id", docID, "error", msg, "processing_time_s", processingTime.Seconds())
	return out
}
