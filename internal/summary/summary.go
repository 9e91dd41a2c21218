package summary

import (
	"strings"

	"github.com/finsightlabs/finsight/constants"
)

const (
	previewChars = 500
	analysisType = "basic_text_analysis"
)

// LocalSummary is the fast, deterministic keyword-based baseline result.
// It is always available even when the structured analysis engine fails.
type LocalSummary struct {
	Summary       string   `json:"summary,omitempty"`
	WordCount     int      `json:"word_count,omitempty"`
	KeywordsFound []string `json:"financial_keywords_found,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
	AnalysisType  string   `json:"analysis_type,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// Summarize scans text against the fixed financial vocabulary. It never
// aborts the pipeline: blank input yields an explicit error-valued result
// instead of a Go error.
func Summarize(text string) LocalSummary {
	if strings.TrimSpace(text) == "" {
		return LocalSummary{Error: "No text to analyze"}
	}

	lower := strings.ToLower(text)
	var found []string
	for _, kw := range constants.FinancialKeywords {
		for _, p := range kw.Patterns {
			if strings.Contains(lower, p) {
				found = append(found, kw.Canonical)
				break
			}
		}
	}

	confidence := float64(len(found)) / float64(len(constants.FinancialKeywords))
	if confidence > 1.0 {
		confidence = 1.0
	}

	preview := text
	if len(text) > previewChars {
		preview = text[:previewChars] + "..."
	}

	return LocalSummary{
		Summary:       preview,
		WordCount:     len(strings.Fields(text)),
		KeywordsFound: found,
		Confidence:    confidence,
		AnalysisType:  analysisType,
	}
}
