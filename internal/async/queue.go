package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued analysis run. Extend as needed later (priority, retry,
// trace, etc).
type Job struct {
	DocumentID  uuid.UUID
	FilePath    string
	Query       string
	OwnerID     string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
