package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID                    uuid.UUID  `json:"id"`
	OwnerID               string     `json:"owner_id"`
	Filename              string     `json:"filename"`
	ContentType           string     `json:"content_type"`
	StoragePath           string     `json:"storage_path"`
	FileSize              int        `json:"file_size"`
	ContentHash           []byte     `json:"content_hash,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	ProcessingStartedAt   *time.Time `json:"processing_started_at,omitempty"`
	AnalysisCompletedAt   *time.Time `json:"analysis_completed_at,omitempty"`
	FailedAt              *time.Time `json:"failed_at,omitempty"`
	ErrorMessage          *string    `json:"error_message,omitempty"`
	ProcessingTimeSeconds *float64   `json:"processing_time_seconds,omitempty"`
}
