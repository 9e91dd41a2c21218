package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/gen/ent"
	entanalysis "github.com/finsightlabs/finsight/gen/ent/analysis"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/utils"
)

type AnalysisRepository interface {
	Insert(ctx context.Context, rec *entity.AnalysisRecord) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AnalysisRecord, error)
	ListForDocument(ctx context.Context, documentID uuid.UUID, ownerID string) ([]*entity.AnalysisRecord, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.AnalysisRecord, error)
}

type analysisRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAnalysisRepository(entc *ent.Client, logger *slog.Logger) AnalysisRepository {
	return &analysisRepo{
		ent:    entc,
		logger: logger,
	}
}

// Insert persists one run outcome. Records are append-only; there is no
// update path.
func (r *analysisRepo) Insert(ctx context.Context, rec *entity.AnalysisRecord) (uuid.UUID, error) {
	builder := r.ent.Analysis.Create().
		SetDocumentID(rec.DocumentID).
		SetOwnerID(rec.OwnerID).
		SetQuery(rec.Query).
		SetStatus(rec.Status).
		SetProcessingTimeSeconds(rec.ProcessingTimeSeconds)

	if rec.LocalSummary != nil {
		b, err := json.Marshal(rec.LocalSummary)
		if err != nil {
			return uuid.Nil, fmt.Errorf("marshal local summary: %w", err)
		}
		builder = builder.SetLocalSummary(b)
	}
	if rec.StageResults != nil {
		b, err := json.Marshal(rec.StageResults)
		if err != nil {
			return uuid.Nil, fmt.Errorf("marshal stage results: %w", err)
		}
		builder = builder.SetStageResults(b)
	}
	if rec.ErrorMessage != nil {
		builder = builder.SetErrorMessage(*rec.ErrorMessage)
	}
	if rec.TextLength != nil {
		builder = builder.SetTextLength(*rec.TextLength)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert analysis record", "document_id", rec.DocumentID, "status", rec.Status, "error", err)
		return uuid.Nil, err
	}
	r.logger.Info("analysis record inserted", "analysis_id", row.ID, "document_id", rec.DocumentID, "status", rec.Status)
	return row.ID, nil
}

func (r *analysisRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AnalysisRecord, error) {
	row, err := r.ent.Analysis.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToAnalysisRecord(row)
}

func (r *analysisRepo) ListForDocument(ctx context.Context, documentID uuid.UUID, ownerID string) ([]*entity.AnalysisRecord, error) {
	q := r.ent.Analysis.Query().
		Where(entanalysis.DocumentID(documentID))
	if ownerID != "" {
		q = q.Where(entanalysis.OwnerID(ownerID))
	}
	rows, err := q.Order(entanalysis.ByCreatedAt(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list analyses", "document_id", documentID, "error", err)
		return nil, err
	}
	return r.toRecords(rows)
}

func (r *analysisRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.AnalysisRecord, error) {
	q := r.ent.Analysis.Query().
		Where(entanalysis.OwnerID(ownerID)).
		Order(entanalysis.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list analyses", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return r.toRecords(rows)
}

func (r *analysisRepo) toRecords(rows []*ent.Analysis) ([]*entity.AnalysisRecord, error) {
	result := make([]*entity.AnalysisRecord, len(rows))
	for i, row := range rows {
		rec, err := utils.ToAnalysisRecord(row)
		if err != nil {
			r.logger.Error("corrupt analysis record", "analysis_id", row.ID, "error", err)
			return nil, err
		}
		result[i] = rec
	}
	return result, nil
}
