package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	finsightpb "github.com/finsightlabs/finsight/gen/proto/finsight/v1"
	"github.com/finsightlabs/finsight/internal/common"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/export"
	"github.com/finsightlabs/finsight/internal/repository"
	"github.com/finsightlabs/finsight/internal/utils"
)

type AnalysesService struct {
	finsightpb.UnimplementedAnalysesServiceServer
	analysisRepo repository.AnalysisRepository
	exporter     *export.Service
	logger       *slog.Logger
}

func NewAnalysesService(analysisRepo repository.AnalysisRepository, exporter *export.Service, logger *slog.Logger) *AnalysesService {
	return &AnalysesService{
		analysisRepo: analysisRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *AnalysesService) GetAnalysis(ctx context.Context, req *finsightpb.GetAnalysisRequest) (*finsightpb.GetAnalysisResponse, error) {
	id, err := parseID(req.GetAnalysisId(), "analysis_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.analysisRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("analysis not found", "analysis_id", id, "error", err)
		return nil, common.NotFoundErrorf("analysis %s not found", id)
	}
	return &finsightpb.GetAnalysisResponse{Analysis: utils.ToPBAnalysis(rec)}, nil
}

func (s *AnalysesService) ListAnalyses(ctx context.Context, req *finsightpb.ListAnalysesRequest) (*finsightpb.ListAnalysesResponse, error) {
	docID := strings.TrimSpace(req.GetDocumentId())
	owner := strings.TrimSpace(req.GetOwnerId())

	var recs []*entity.AnalysisRecord
	switch {
	case docID != "":
		id, err := parseID(docID, "document_id")
		if err != nil {
			return nil, err
		}
		recs, err = s.analysisRepo.ListForDocument(ctx, id, owner)
		if err != nil {
			s.logger.Error("failed to list analyses", "document_id", id, "error", err)
			return nil, common.InternalErrorf("list analyses: %v", err)
		}
	case owner != "":
		var err error
		recs, err = s.analysisRepo.ListByOwner(ctx, owner, int(req.GetLimit()), int(req.GetOffset()))
		if err != nil {
			s.logger.Error("failed to list analyses", "owner_id", owner, "error", err)
			return nil, common.InternalErrorf("list analyses: %v", err)
		}
	default:
		return nil, common.InvalidArgumentError("document_id or owner_id is required")
	}

	out := make([]*finsightpb.Analysis, 0, len(recs))
	for _, rec := range recs {
		out = append(out, utils.ToPBAnalysis(rec))
	}
	return &finsightpb.ListAnalysesResponse{Analyses: out}, nil
}

func (s *AnalysesService) ExportAnalyses(ctx context.Context, req *finsightpb.ExportAnalysesRequest) (*finsightpb.ExportAnalysesResponse, error) {
	owner := strings.TrimSpace(req.GetOwnerId())
	if owner == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	xlsx, err := s.exporter.ExportAnalysesXLSX(ctx, owner)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "owner_id", owner, "error", err)
		return nil, common.InternalErrorf("export analyses: %v", err)
	}
	return &finsightpb.ExportAnalysesResponse{
		Content:  xlsx,
		Filename: fmt.Sprintf("analyses-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}
