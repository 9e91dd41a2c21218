package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/finsightlabs/finsight/gen/ent"
	finsightpb "github.com/finsightlabs/finsight/gen/proto/finsight/v1"
	"github.com/finsightlabs/finsight/internal/analysis"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/summary"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                    d.ID,
		OwnerID:               d.OwnerID,
		Filename:              d.Filename,
		ContentType:           d.ContentType,
		StoragePath:           d.StoragePath,
		FileSize:              d.FileSize,
		ContentHash:           d.ContentHash,
		Status:                d.Status,
		CreatedAt:             d.CreatedAt,
		ProcessingStartedAt:   d.ProcessingStartedAt,
		AnalysisCompletedAt:   d.AnalysisCompletedAt,
		FailedAt:              d.FailedAt,
		ErrorMessage:          d.ErrorMessage,
		ProcessingTimeSeconds: d.ProcessingTimeSeconds,
	}
}

func ToAnalysisRecord(a *ent.Analysis) (*entity.AnalysisRecord, error) {
	rec := &entity.AnalysisRecord{
		ID:                    a.ID,
		DocumentID:            a.DocumentID,
		OwnerID:               a.OwnerID,
		Query:                 a.Query,
		Status:                a.Status,
		ErrorMessage:          a.ErrorMessage,
		ProcessingTimeSeconds: a.ProcessingTimeSeconds,
		TextLength:            a.TextLength,
		CreatedAt:             a.CreatedAt,
	}
	if len(a.LocalSummary) > 0 {
		var ls summary.LocalSummary
		if err := json.Unmarshal(a.LocalSummary, &ls); err != nil {
			return nil, fmt.Errorf("unmarshal local summary: %w", err)
		}
		rec.LocalSummary = &ls
	}
	if len(a.StageResults) > 0 {
		var sr analysis.StageResults
		if err := json.Unmarshal(a.StageResults, &sr); err != nil {
			return nil, fmt.Errorf("unmarshal stage results: %w", err)
		}
		rec.StageResults = sr
	}
	return rec, nil
}

func ToPBDocument(d *entity.Document) *finsightpb.Document {
	pb := &finsightpb.Document{
		Id:                  d.ID.String(),
		OwnerId:             d.OwnerID,
		Filename:            d.Filename,
		ContentType:         d.ContentType,
		FileSize:            int64(d.FileSize),
		Status:              d.Status,
		CreatedAt:           d.CreatedAt.UTC().Format(time.RFC3339),
		ProcessingStartedAt: timeOrEmpty(d.ProcessingStartedAt),
		AnalysisCompletedAt: timeOrEmpty(d.AnalysisCompletedAt),
		FailedAt:            timeOrEmpty(d.FailedAt),
		ErrorMessage:        strOrEmpty(d.ErrorMessage),
	}
	if d.ProcessingTimeSeconds != nil {
		pb.ProcessingTimeSeconds = *d.ProcessingTimeSeconds
	}
	return pb
}

func ToPBLocalSummary(ls *summary.LocalSummary) *finsightpb.LocalSummary {
	if ls == nil {
		return nil
	}
	return &finsightpb.LocalSummary{
		Summary:                ls.Summary,
		WordCount:              int32(ls.WordCount),
		FinancialKeywordsFound: ls.KeywordsFound,
		ConfidenceScore:        ls.Confidence,
		AnalysisType:           ls.AnalysisType,
		Error:                  ls.Error,
	}
}

func ToPBAnalysis(a *entity.AnalysisRecord) *finsightpb.Analysis {
	pb := &finsightpb.Analysis{
		Id:                    a.ID.String(),
		DocumentId:            a.DocumentID.String(),
		OwnerId:               a.OwnerID,
		Query:                 a.Query,
		Status:                a.Status,
		LocalSummary:          ToPBLocalSummary(a.LocalSummary),
		StageResults:          a.StageResults,
		ErrorMessage:          strOrEmpty(a.ErrorMessage),
		ProcessingTimeSeconds: a.ProcessingTimeSeconds,
		CreatedAt:             a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.TextLength != nil {
		pb.TextLength = int32(*a.TextLength)
	}
	return pb
}
