package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/internal/analysis"
	"github.com/finsightlabs/finsight/internal/summary"
)

// AnalysisRecord represents one immutable pipeline run outcome for data
// transfer between layers. LocalSummary and StageResults are nil on failed
// runs; ErrorMessage is nil on fully successful runs.
type AnalysisRecord struct {
	ID                    uuid.UUID              `json:"id"`
	DocumentID            uuid.UUID              `json:"document_id"`
	OwnerID               string                 `json:"owner_id"`
	Query                 string                 `json:"query"`
	Status                string                 `json:"status"`
	LocalSummary          *summary.LocalSummary  `json:"local_summary,omitempty"`
	StageResults          analysis.StageResults  `json:"stage_results,omitempty"`
	ErrorMessage          *string                `json:"error_message,omitempty"`
	ProcessingTimeSeconds float64                `json:"processing_time_seconds"`
	TextLength            *int                   `json:"text_length,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
}
