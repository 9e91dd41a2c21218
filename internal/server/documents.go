package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	finsightpb "github.com/finsightlabs/finsight/gen/proto/finsight/v1"
	"github.com/finsightlabs/finsight/internal/common"
	"github.com/finsightlabs/finsight/internal/ingest"
	"github.com/finsightlabs/finsight/internal/repository"
	"github.com/finsightlabs/finsight/internal/utils"
)

type DocumentsService struct {
	finsightpb.UnimplementedDocumentsServiceServer
	ingest  *ingest.Service
	docRepo repository.DocumentRepository
	logger  *slog.Logger
}

func NewDocumentsService(ing *ingest.Service, docRepo repository.DocumentRepository, logger *slog.Logger) *DocumentsService {
	return &DocumentsService{
		ingest:  ing,
		docRepo: docRepo,
		logger:  logger,
	}
}

func (s *DocumentsService) SubmitDocument(ctx context.Context, req *finsightpb.SubmitDocumentRequest) (*finsightpb.SubmitDocumentResponse, error) {
	res, err := s.ingest.Submit(ctx, ingest.SubmitRequest{
		OwnerID:  req.GetOwnerId(),
		Filename: req.GetFilename(),
		Content:  req.GetContent(),
		Query:    req.GetQuery(),
	})
	if err != nil {
		// ingest returns gRPC status errors
		return nil, err
	}
	return &finsightpb.SubmitDocumentResponse{
		Document:  utils.ToPBDocument(res.Document),
		Duplicate: res.Duplicate,
	}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *finsightpb.GetDocumentRequest) (*finsightpb.GetDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("document not found", "document_id", id, "error", err)
		return nil, common.NotFoundErrorf("document %s not found", id)
	}
	return &finsightpb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *finsightpb.ListDocumentsRequest) (*finsightpb.ListDocumentsResponse, error) {
	owner := strings.TrimSpace(req.GetOwnerId())
	if owner == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	docs, err := s.docRepo.ListByOwner(ctx, owner, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("failed to list documents", "owner_id", owner, "error", err)
		return nil, common.InternalErrorf("list documents: %v", err)
	}
	out := make([]*finsightpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &finsightpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) DeleteDocument(ctx context.Context, req *finsightpb.DeleteDocumentRequest) (*finsightpb.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if err := s.ingest.Remove(ctx, id); err != nil {
		return nil, err
	}
	return &finsightpb.DeleteDocumentResponse{}, nil
}

func (s *DocumentsService) ReanalyzeDocument(ctx context.Context, req *finsightpb.ReanalyzeDocumentRequest) (*finsightpb.ReanalyzeDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.ingest.Reanalyze(ctx, id, req.GetQuery())
	if err != nil {
		return nil, err
	}
	return &finsightpb.ReanalyzeDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}
