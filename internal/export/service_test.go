package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/repository"
	"github.com/finsightlabs/finsight/internal/summary"
)

type fakeAnalyses struct {
	repository.AnalysisRepository

	recs []*entity.AnalysisRecord
}

func (f *fakeAnalyses) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.AnalysisRecord, error) {
	return f.recs, nil
}

type fakeDocs struct {
	repository.DocumentRepository

	docs map[uuid.UUID]*entity.Document
}

func (f *fakeDocs) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	if d, ok := f.docs[id]; ok {
		return d, nil
	}
	return nil, context.Canceled
}

func TestExportAnalysesXLSX(t *testing.T) {
	docID := uuid.New()
	errMsg := "analysis timed out"
	textLen := 4200
	recs := []*entity.AnalysisRecord{
		{
			ID:         uuid.New(),
			DocumentID: docID,
			OwnerID:    "u",
			Query:      "investment outlook",
			Status:     string(constants.AnalysisCompleted),
			LocalSummary: &summary.LocalSummary{
				WordCount:     812,
				KeywordsFound: []string{"revenue", "risk"},
				Confidence:    2.0 / 15.0,
			},
			TextLength:            &textLen,
			ProcessingTimeSeconds: 12.5,
			CreatedAt:             time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:                    uuid.New(),
			DocumentID:            docID,
			OwnerID:               "u",
			Query:                 "investment outlook",
			Status:                string(constants.AnalysisFailed),
			ErrorMessage:          &errMsg,
			ProcessingTimeSeconds: 300.1,
			CreatedAt:             time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	docs := &fakeDocs{docs: map[uuid.UUID]*entity.Document{
		docID: {ID: docID, Filename: "annual-report.pdf"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(&fakeAnalyses{recs: recs}, docs, logger)

	out, err := svc.ExportAnalysesXLSX(context.Background(), "u")
	if err != nil {
		t.Fatalf("ExportAnalysesXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	got, err := wb.GetCellValue("Analyses", "A1")
	if err != nil || got != "Created At" {
		t.Errorf("A1 = %q, %v", got, err)
	}
	if got, _ := wb.GetCellValue("Analyses", "B2"); got != "annual-report.pdf" {
		t.Errorf("B2 = %q, want document filename", got)
	}
	if got, _ := wb.GetCellValue("Analyses", "F2"); got != "revenue, risk" {
		t.Errorf("F2 = %q", got)
	}
	if got, _ := wb.GetCellValue("Analyses", "D3"); got != string(constants.AnalysisFailed) {
		t.Errorf("D3 = %q", got)
	}
	if got, _ := wb.GetCellValue("Analyses", "J3"); got != errMsg {
		t.Errorf("J3 = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate = %q", got)
	}
}
