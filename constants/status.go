package constants

// DocumentStatus is the canonical lifecycle status for rows in document.
type DocumentStatus string

// Stable values (store these exact strings in DB). Transitions are
// one-directional: uploaded -> processing -> analyzed | failed.
const (
	DocStatusUploaded   DocumentStatus = "uploaded"   // accepted, not yet picked up
	DocStatusProcessing DocumentStatus = "processing" // pipeline run in progress
	DocStatusAnalyzed   DocumentStatus = "analyzed"   // terminal: at least a heuristic result exists
	DocStatusFailed     DocumentStatus = "failed"     // terminal: no usable result
)

// AnalysisStatus is the canonical status for rows in analysis.
// Records are immutable; the status is fixed at insert time.
type AnalysisStatus string

const (
	AnalysisCompleted           AnalysisStatus = "completed"             // all stages succeeded
	AnalysisCompletedWithErrors AnalysisStatus = "completed_with_errors" // heuristic result only
	AnalysisFailed              AnalysisStatus = "failed"                // no usable text
)

// DocumentStatuses holds the allowed values for the document status field.
var DocumentStatuses = []string{
	string(DocStatusUploaded),
	string(DocStatusProcessing),
	string(DocStatusAnalyzed),
	string(DocStatusFailed),
}

// AnalysisStatuses holds the allowed values for the analysis status field.
var AnalysisStatuses = []string{
	string(AnalysisCompleted),
	string(AnalysisCompletedWithErrors),
	string(AnalysisFailed),
}
