package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/gen/ent"
	entdoc "github.com/finsightlabs/finsight/gen/ent/document"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/utils"
)

// CreateDocumentRequest wraps parameters for registering an uploaded document.
type CreateDocumentRequest struct {
	OwnerID     string
	Filename    string
	ContentType string
	StoragePath string
	FileSize    int
	ContentHash []byte
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByOwnerAndHash(ctx context.Context, ownerID string, hash []byte) (*entity.Document, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	MarkAnalyzed(ctx context.Context, id uuid.UUID, completedAt time.Time, processingSeconds float64) error
	MarkFailed(ctx context.Context, id uuid.UUID, failedAt time.Time, message string) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetOwnerID(req.OwnerID).
		SetFilename(req.Filename).
		SetContentType(req.ContentType).
		SetStoragePath(req.StoragePath).
		SetFileSize(req.FileSize).
		SetContentHash(req.ContentHash).
		SetStatus(string(constants.DocStatusUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "owner_id", req.OwnerID, "filename", req.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document registered", "document_id", row.ID, "owner_id", req.OwnerID, "filename", req.Filename)
	return utils.ToDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) GetByOwnerAndHash(ctx context.Context, ownerID string, hash []byte) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.OwnerID(ownerID),
			entdoc.ContentHash(hash),
		).
		Order(entdoc.ByCreatedAt()).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Document, error) {
	q := r.ent.Document.Query().
		Where(entdoc.OwnerID(ownerID)).
		Order(entdoc.ByCreatedAt(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document deleted", "document_id", id)
	return nil
}

func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(constants.DocStatusProcessing)).
		SetProcessingStartedAt(startedAt).
		ClearAnalysisCompletedAt().
		ClearFailedAt().
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document processing", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document processing", "document_id", id)
	return nil
}

func (r *documentRepo) MarkAnalyzed(ctx context.Context, id uuid.UUID, completedAt time.Time, processingSeconds float64) error {
	n, err := r.ent.Document.
		Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusEQ(string(constants.DocStatusProcessing)),
		).
		SetStatus(string(constants.DocStatusAnalyzed)).
		SetAnalysisCompletedAt(completedAt).
		SetProcessingTimeSeconds(processingSeconds).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document analyzed", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("document %s is not processing", id)
	}
	r.logger.Info("document analyzed", "document_id", id, "processing_time_seconds", processingSeconds)
	return nil
}

func (r *documentRepo) MarkFailed(ctx context.Context, id uuid.UUID, failedAt time.Time, message string) error {
	// uploaded is allowed so the best-effort failure write still lands when
	// the processing transition itself never committed
	n, err := r.ent.Document.
		Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusIn(
				string(constants.DocStatusUploaded),
				string(constants.DocStatusProcessing),
			),
		).
		SetStatus(string(constants.DocStatusFailed)).
		SetFailedAt(failedAt).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document failed", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("document %s is already terminal", id)
	}
	r.logger.Warn("document failed", "document_id", id, "error", message)
	return nil
}
