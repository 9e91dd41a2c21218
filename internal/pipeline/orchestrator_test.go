package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/analysis"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/extract"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) (extract.Result, error) {
	if f.err != nil {
		return extract.Result{}, f.err
	}
	return extract.Result{Text: f.text, Pages: 1, Method: "pdf-text"}, nil
}

type fakeAnalyzer struct {
	results analysis.StageResults
	err     *analysis.Error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, query, text string) (analysis.StageResults, *analysis.Error) {
	return f.results, f.err
}

type fakeDocStore struct {
	processing []uuid.UUID
	analyzed   []uuid.UUID
	failed     []uuid.UUID
	failedMsg  string

	processingErr error
	analyzedErr   error
	failedErr     error
}

func (s *fakeDocStore) MarkProcessing(ctx context.Context, id uuid.UUID, at time.Time) error {
	if s.processingErr != nil {
		return s.processingErr
	}
	s.processing = append(s.processing, id)
	return nil
}

func (s *fakeDocStore) MarkAnalyzed(ctx context.Context, id uuid.UUID, at time.Time, secs float64) error {
	if s.analyzedErr != nil {
		return s.analyzedErr
	}
	s.analyzed = append(s.analyzed, id)
	return nil
}

func (s *fakeDocStore) MarkFailed(ctx context.Context, id uuid.UUID, at time.Time, msg string) error {
	if s.failedErr != nil {
		return s.failedErr
	}
	s.failed = append(s.failed, id)
	s.failedMsg = msg
	return nil
}

type fakeAnalysisStore struct {
	records   []*entity.AnalysisRecord
	insertErr error
}

func (s *fakeAnalysisStore) Insert(ctx context.Context, rec *entity.AnalysisRecord) (uuid.UUID, error) {
	if s.insertErr != nil {
		return uuid.Nil, s.insertErr
	}
	s.records = append(s.records, rec)
	return uuid.New(), nil
}

func newOrchestrator(ex extract.TextExtractor, an Analyzer, docs *fakeDocStore, recs *fakeAnalysisStore) *Orchestrator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(logger, ex, an, docs, recs, 50)
}

var sampleText = strings.Repeat("Revenue grew with strong cash flow and manageable risk. ", 10)

func TestRunCompleted(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(
		&fakeExtractor{text: sampleText},
		&fakeAnalyzer{results: analysis.StageResults{"document_analysis": "a 10-K"}},
		docs, recs,
	)
	docID := uuid.New()

	out := o.Run(context.Background(), docID, "/tmp/doc.pdf", "analyze", "user-1")
	if out.Err != nil || out.Status != constants.AnalysisCompleted {
		t.Fatalf("outcome = %+v", out)
	}
	if len(docs.processing) != 1 || len(docs.analyzed) != 1 || len(docs.failed) != 0 {
		t.Errorf("doc transitions = %d/%d/%d, want 1 processing, 1 analyzed", len(docs.processing), len(docs.analyzed), len(docs.failed))
	}
	if len(recs.records) != 1 {
		t.Fatalf("inserted %d records, want 1", len(recs.records))
	}
	rec := recs.records[0]
	if rec.Status != string(constants.AnalysisCompleted) {
		t.Errorf("record status = %q", rec.Status)
	}
	if rec.LocalSummary == nil || rec.LocalSummary.WordCount == 0 {
		t.Errorf("local summary missing: %+v", rec.LocalSummary)
	}
	if rec.StageResults["document_analysis"] != "a 10-K" {
		t.Errorf("stage results = %v", rec.StageResults)
	}
	if rec.TextLength == nil || *rec.TextLength != len(sampleText) {
		t.Errorf("text length = %v, want %d", rec.TextLength, len(sampleText))
	}
	if rec.ErrorMessage != nil {
		t.Errorf("unexpected error message %q", *rec.ErrorMessage)
	}
	if rec.ProcessingTimeSeconds < 0 {
		t.Errorf("processing time = %v", rec.ProcessingTimeSeconds)
	}
}

func TestRunEngineFailureKeepsHeuristicResult(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(
		&fakeExtractor{text: sampleText},
		&fakeAnalyzer{err: &analysis.Error{Kind: analysis.KindEngineFailure, Message: "upstream exploded"}},
		docs, recs,
	)

	out := o.Run(context.Background(), uuid.New(), "/tmp/doc.pdf", "analyze", "user-1")
	if out.Status != constants.AnalysisCompletedWithErrors || out.Err != nil {
		t.Fatalf("outcome = %+v", out)
	}
	if len(docs.analyzed) != 1 || len(docs.failed) != 0 {
		t.Errorf("document must still end analyzed on partial failure")
	}
	rec := recs.records[0]
	if rec.Status != string(constants.AnalysisCompletedWithErrors) {
		t.Errorf("record status = %q", rec.Status)
	}
	if rec.LocalSummary == nil {
		t.Errorf("heuristic summary must survive engine failure")
	}
	if rec.StageResults != nil {
		t.Errorf("stage results must be absent, got %v", rec.StageResults)
	}
	if rec.ErrorMessage == nil || !strings.Contains(*rec.ErrorMessage, "upstream exploded") {
		t.Errorf("error message = %v", rec.ErrorMessage)
	}
}

func TestRunEngineTimeoutMarker(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(
		&fakeExtractor{text: sampleText},
		&fakeAnalyzer{err: &analysis.Error{Kind: analysis.KindTimeout, Message: "analysis timed out after 5m0s"}},
		docs, recs,
	)

	out := o.Run(context.Background(), uuid.New(), "/tmp/doc.pdf", "analyze", "user-1")
	if out.Status != constants.AnalysisCompletedWithErrors {
		t.Fatalf("status = %q", out.Status)
	}
	if msg := recs.records[0].ErrorMessage; msg == nil || !strings.Contains(*msg, "timeout") {
		t.Errorf("error message = %v, want timeout indicator", msg)
	}
}

func TestRunExtractionFailure(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(
		&fakeExtractor{err: extract.ErrNoText},
		&fakeAnalyzer{},
		docs, recs,
	)

	out := o.Run(context.Background(), uuid.New(), "/tmp/blank.pdf", "analyze", "user-1")
	if out.Status != constants.AnalysisFailed || out.Err == nil {
		t.Fatalf("outcome = %+v", out)
	}
	if len(docs.failed) != 1 || len(docs.analyzed) != 0 {
		t.Errorf("document must end failed")
	}
	rec := recs.records[0]
	if rec.LocalSummary != nil || rec.StageResults != nil {
		t.Errorf("failed record must carry no results: %+v", rec)
	}
	if rec.ErrorMessage == nil || !strings.Contains(*rec.ErrorMessage, "no text") {
		t.Errorf("error message = %v, want extraction-related", rec.ErrorMessage)
	}
}

func TestRunInsufficientTextGate(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(
		&fakeExtractor{text: "too short"},
		&fakeAnalyzer{results: analysis.StageResults{"x": "y"}},
		docs, recs,
	)

	out := o.Run(context.Background(), uuid.New(), "/tmp/stub.pdf", "analyze", "user-1")
	if out.Status != constants.AnalysisFailed {
		t.Fatalf("status = %q, want failed", out.Status)
	}
	if msg := recs.records[0].ErrorMessage; msg == nil || !strings.Contains(*msg, "insufficient text") {
		t.Errorf("error message = %v", msg)
	}
}

func TestRunMarkProcessingFailureIsBestEffortRecorded(t *testing.T) {
	docs := &fakeDocStore{processingErr: errors.New("connection refused")}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(&fakeExtractor{text: sampleText}, &fakeAnalyzer{}, docs, recs)

	out := o.Run(context.Background(), uuid.New(), "/tmp/doc.pdf", "analyze", "user-1")
	if out.Status != constants.AnalysisFailed || out.Err == nil {
		t.Fatalf("outcome = %+v", out)
	}
	if len(recs.records) != 1 {
		t.Errorf("best-effort failure record not inserted")
	}
	if len(docs.failed) != 1 {
		t.Errorf("best-effort failed status not written")
	}
}

func TestRunSecondaryWriteFailureSurfaces(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{insertErr: errors.New("disk full")}
	o := newOrchestrator(&fakeExtractor{err: extract.ErrNoText}, &fakeAnalyzer{}, docs, recs)

	out := o.Run(context.Background(), uuid.New(), "/tmp/doc.pdf", "analyze", "user-1")
	if out.Err == nil || !strings.Contains(out.Err.Error(), "disk full") {
		t.Fatalf("store failure not surfaced: %v", out.Err)
	}
}

func TestRunIsIndependentPerInvocation(t *testing.T) {
	docs := &fakeDocStore{}
	recs := &fakeAnalysisStore{}
	o := newOrchestrator(
		&fakeExtractor{text: sampleText},
		&fakeAnalyzer{results: analysis.StageResults{"document_analysis": "ok"}},
		docs, recs,
	)
	docID := uuid.New()

	o.Run(context.Background(), docID, "/tmp/doc.pdf", "first query", "user-1")
	o.Run(context.Background(), docID, "/tmp/doc.pdf", "second query", "user-1")

	if len(recs.records) != 2 {
		t.Fatalf("re-running produced %d records, want 2 independent records", len(recs.records))
	}
	if recs.records[0].Query == recs.records[1].Query {
		t.Errorf("records not independent: %q vs %q", recs.records[0].Query, recs.records[1].Query)
	}
	if recs.records[0] == recs.records[1] {
		t.Errorf("prior record mutated in place")
	}
}
