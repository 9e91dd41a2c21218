package ingest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/async"
	"github.com/finsightlabs/finsight/internal/entity"
	"github.com/finsightlabs/finsight/internal/repository"
)

type fakeDocRepo struct {
	repository.DocumentRepository

	byHash *entity.Document
}

func (f *fakeDocRepo) GetByOwnerAndHash(ctx context.Context, ownerID string, hash []byte) (*entity.Document, error) {
	if f.byHash != nil {
		return f.byHash, nil
	}
	return nil, errors.New("not found")
}

type recordingQueue struct {
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(ctx context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(ctx context.Context) {}

func newService(t *testing.T, repo repository.DocumentRepository, queue async.Queue) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, queue, logger, t.TempDir(), constants.MaxUploadBytes)
}

func TestSubmitRejectsBadInput(t *testing.T) {
	svc := newService(t, &fakeDocRepo{}, &recordingQueue{})

	cases := []struct {
		name string
		req  SubmitRequest
	}{
		{"missing owner", SubmitRequest{Filename: "a.pdf", Content: []byte("x")}},
		{"missing filename", SubmitRequest{OwnerID: "u", Content: []byte("x")}},
		{"wrong extension", SubmitRequest{OwnerID: "u", Filename: "a.docx", Content: []byte("x")}},
		{"empty content", SubmitRequest{OwnerID: "u", Filename: "a.pdf"}},
		{"oversize", SubmitRequest{OwnerID: "u", Filename: "a.pdf", Content: bytes.Repeat([]byte("x"), constants.MaxUploadBytes+1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), tc.req); err == nil {
				t.Fatalf("Submit(%s) accepted invalid input", tc.name)
			}
		})
	}
}

func TestSubmitDuplicateReusesDocumentAndQueuesRun(t *testing.T) {
	existing := &entity.Document{
		ID:          uuid.New(),
		OwnerID:     "u",
		Filename:    "report.pdf",
		StoragePath: "/data/u/report.pdf",
		Status:      string(constants.DocStatusAnalyzed),
		CreatedAt:   time.Now(),
	}
	queue := &recordingQueue{}
	svc := newService(t, &fakeDocRepo{byHash: existing}, queue)

	res, err := svc.Submit(context.Background(), SubmitRequest{
		OwnerID:  "u",
		Filename: "report.pdf",
		Content:  []byte("%PDF-1.4 same bytes"),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Duplicate || res.Document.ID != existing.ID {
		t.Fatalf("result = %+v, want duplicate of %s", res, existing.ID)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("queued %d jobs, want 1 (duplicates still re-run)", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.DocumentID != existing.ID || job.FilePath != existing.StoragePath {
		t.Errorf("job = %+v", job)
	}
	if job.Query != constants.DefaultAnalysisQuery {
		t.Errorf("empty query not defaulted: %q", job.Query)
	}
}

func TestSubmitCustomQueryIsKept(t *testing.T) {
	existing := &entity.Document{ID: uuid.New(), OwnerID: "u", StoragePath: "/data/u/x.pdf"}
	queue := &recordingQueue{}
	svc := newService(t, &fakeDocRepo{byHash: existing}, queue)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		OwnerID:  "u",
		Filename: "x.pdf",
		Content:  []byte("%PDF-1.4"),
		Query:    "focus on liquidity risk",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if queue.jobs[0].Query != "focus on liquidity risk" {
		t.Errorf("query = %q", queue.jobs[0].Query)
	}
}

func TestSanitize(t *testing.T) {
	if got := sanitize("user@example.com/../etc"); got != "user_example.com_.._etc" {
		t.Errorf("sanitize = %q", got)
	}
}
