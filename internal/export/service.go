package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	analyses repository.AnalysisRepository
	docs     repository.DocumentRepository
	logger   *slog.Logger
}

func NewService(analyses repository.AnalysisRepository, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{analyses: analyses, docs: docs, logger: logger}
}

// ExportAnalysesXLSX returns an XLSX workbook (as bytes) with one row per
// analysis record for the given owner, newest first.
func (s *Service) ExportAnalysesXLSX(ctx context.Context, ownerID string) ([]byte, error) {
	start := time.Now()

	recs, err := s.analyses.ListByOwner(ctx, ownerID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Created At",
		"Document",
		"Query",
		"Status",
		"Word Count",
		"Keywords Found",
		"Confidence",
		"Text Length",
		"Processing Time (s)",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// Resolve document filenames once per document.
	filenames := map[string]string{}
	docName := func(rec *entity.AnalysisRecord) string {
		key := rec.DocumentID.String()
		if name, ok := filenames[key]; ok {
			return name
		}
		name := key
		if doc, err := s.docs.GetByID(ctx, rec.DocumentID); err == nil {
			name = doc.Filename
		}
		filenames[key] = name
		return name
	}

	row := 2
	for _, rec := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
		write(2, docName(rec))
		write(3, truncate(rec.Query, 140))
		write(4, rec.Status)

		if ls := rec.LocalSummary; ls != nil {
			write(5, ls.WordCount)
			write(6, strings.Join(ls.KeywordsFound, ", "))
			write(7, fmt.Sprintf("%.3f", ls.Confidence))
		}
		if rec.TextLength != nil {
			write(8, *rec.TextLength)
		}
		write(9, fmt.Sprintf("%.2f", rec.ProcessingTimeSeconds))
		if rec.ErrorMessage != nil {
			write(10, truncate(*rec.ErrorMessage, 140))
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 32) // document
	_ = f.SetColWidth(sheet, "C", "C", 48) // query
	_ = f.SetColWidth(sheet, "D", "D", 22) // status
	_ = f.SetColWidth(sheet, "F", "F", 40) // keywords
	_ = f.SetColWidth(sheet, "J", "J", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", ownerID,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
