package ingest

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/async"
	"github.com/finsightlabs/finsight/internal/common"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/repository"
)

// Service handles document intake: validation, storage, registration, and
// queueing the analysis pipeline.
type Service struct {
	docs    repository.DocumentRepository
	queue   async.Queue
	logger  *slog.Logger
	pdfConf *model.Configuration

	uploadDir   string
	maxFileSize int64
}

func NewService(docs repository.DocumentRepository, queue async.Queue, logger *slog.Logger, uploadDir string, maxFileSize int64) *Service {
	if uploadDir == "" {
		uploadDir = "data"
	}
	if maxFileSize <= 0 {
		maxFileSize = constants.MaxUploadBytes
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Service{
		docs:        docs,
		queue:       queue,
		logger:      logger,
		pdfConf:     conf,
		uploadDir:   uploadDir,
		maxFileSize: maxFileSize,
	}
}

// SubmitRequest represents one uploaded document plus its analysis query.
type SubmitRequest struct {
	OwnerID  string
	Filename string
	Content  []byte
	Query    string
}

// SubmitResult reports the registered document and whether an identical
// upload already existed for this owner.
type SubmitResult struct {
	Document  *entity.Document
	Duplicate bool
	Pages     int
}

// Submit validates the upload, stores it under the upload directory, creates
// the document row, and queues an analysis run. Duplicate content (same
// owner, same hash) reuses the stored document but still queues a run.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	owner := strings.TrimSpace(req.OwnerID)
	if owner == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	filename := filepath.Base(strings.TrimSpace(req.Filename))
	if filename == "" || filename == "." {
		return nil, common.InvalidArgumentError("filename is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if !constants.AllowedExt(ext) {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q: only PDF is accepted", ext)
	}
	if len(req.Content) == 0 {
		return nil, common.InvalidArgumentError("file content is empty")
	}
	if int64(len(req.Content)) > s.maxFileSize {
		return nil, common.InvalidArgumentErrorf("file exceeds maximum size of %d bytes", s.maxFileSize)
	}

	sum := sha256.Sum256(req.Content)
	hash := sum[:]

	if existing, err := s.docs.GetByOwnerAndHash(ctx, owner, hash); err == nil {
		s.logger.Info("duplicate upload, reusing document", "owner_id", owner, "document_id", existing.ID, "filename", filename)
		if err := s.enqueue(ctx, existing.ID, existing.StoragePath, req.Query, owner); err != nil {
			return nil, err
		}
		return &SubmitResult{Document: existing, Duplicate: true}, nil
	}

	storagePath, err := s.store(owner, req.Content)
	if err != nil {
		s.logger.Error("failed to store upload", "owner_id", owner, "filename", filename, "error", err)
		return nil, common.InternalErrorf("store upload: %v", err)
	}

	pages, err := s.validatePDF(storagePath)
	if err != nil {
		_ = os.Remove(storagePath)
		s.logger.Warn("rejected invalid pdf", "owner_id", owner, "filename", filename, "error", err)
		return nil, common.InvalidArgumentErrorf("not a valid PDF: %v", err)
	}

	doc, err := s.docs.Create(ctx, &repository.CreateDocumentRequest{
		OwnerID:     owner,
		Filename:    filename,
		ContentType: constants.PDFContentType,
		StoragePath: storagePath,
		FileSize:    len(req.Content),
		ContentHash: hash,
	})
	if err != nil {
		_ = os.Remove(storagePath)
		return nil, common.InternalErrorf("register document: %v", err)
	}

	if err := s.enqueue(ctx, doc.ID, storagePath, req.Query, owner); err != nil {
		return nil, err
	}
	s.logger.Info("document submitted", "document_id", doc.ID, "owner_id", owner, "filename", filename, "pages", pages, "size", len(req.Content))
	return &SubmitResult{Document: doc, Pages: pages}, nil
}

// Reanalyze queues another run against an already-stored document.
func (s *Service) Reanalyze(ctx context.Context, documentID uuid.UUID, query string) (*entity.Document, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, common.NotFoundErrorf("document %s not found", documentID)
	}
	if _, err := os.Stat(doc.StoragePath); err != nil {
		return nil, common.InternalErrorf("stored file missing: %v", err)
	}
	if err := s.enqueue(ctx, doc.ID, doc.StoragePath, query, doc.OwnerID); err != nil {
		return nil, err
	}
	return doc, nil
}

// Remove deletes the stored file and the document row. Analysis records
// cascade with the row.
func (s *Service) Remove(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return common.NotFoundErrorf("document %s not found", documentID)
	}
	if err := os.Remove(doc.StoragePath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove stored file", "document_id", documentID, "path", doc.StoragePath, "error", err)
	}
	return s.docs.Delete(ctx, documentID)
}

func (s *Service) enqueue(ctx context.Context, docID uuid.UUID, path, query, owner string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		query = constants.DefaultAnalysisQuery
	}
	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  docID,
		FilePath:    path,
		Query:       query,
		OwnerID:     owner,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed", "document_id", docID, "error", err)
		return common.InternalErrorf("enqueue analysis: %v", err)
	}
	return nil
}

// store writes content under uploadDir/<owner>/<uuid>.pdf and returns the
// absolute path.
func (s *Service) store(owner string, content []byte) (string, error) {
	dir := filepath.Join(s.uploadDir, sanitize(owner))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.NewString()+".pdf")
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, content, 0o644); err != nil {
		return "", err
	}
	return abs, nil
}

func (s *Service) validatePDF(path string) (int, error) {
	if err := api.ValidateFile(path, s.pdfConf); err != nil {
		return 0, err
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, err
	}
	if pages == 0 {
		return 0, fmt.Errorf("pdf has no pages")
	}
	return pages, nil
}

// sanitize keeps owner-derived path segments to a safe character set.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
