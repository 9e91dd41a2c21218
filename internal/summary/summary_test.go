package summary

import (
	"math"
	"strings"
	"testing"

	"github.com/finsightlabs/finsight/constants"
)

func TestSummarizeFindsKeywords(t *testing.T) {
	text := "Revenue grew 20% with strong cash flow and manageable risk."
	got := Summarize(text)

	if got.Error != "" {
		t.Fatalf("unexpected error result: %q", got.Error)
	}
	if got.WordCount != 10 {
		t.Errorf("word count = %d, want 10", got.WordCount)
	}

	want := []string{"revenue", "cash flow", "risk", "growth"}
	found := map[string]bool{}
	for _, k := range got.KeywordsFound {
		found[k] = true
	}
	for _, k := range want {
		if !found[k] {
			t.Errorf("keyword %q not found in %v", k, got.KeywordsFound)
		}
	}
	if len(got.KeywordsFound) != len(want) {
		t.Errorf("found %d keywords %v, want %d", len(got.KeywordsFound), got.KeywordsFound, len(want))
	}

	wantConf := 4.0 / float64(len(constants.FinancialKeywords))
	if math.Abs(got.Confidence-wantConf) > 1e-9 {
		t.Errorf("confidence = %v, want %v", got.Confidence, wantConf)
	}
	if got.Summary != text {
		t.Errorf("short text must not be truncated: %q", got.Summary)
	}
	if got.AnalysisType != "basic_text_analysis" {
		t.Errorf("analysis type = %q", got.AnalysisType)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		got := Summarize(text)
		if got.Error != "No text to analyze" {
			t.Errorf("Summarize(%q).Error = %q, want %q", text, got.Error, "No text to analyze")
		}
		if got.WordCount != 0 || got.Summary != "" {
			t.Errorf("Summarize(%q) returned content alongside error: %+v", text, got)
		}
	}
}

func TestSummarizeTruncatesPreview(t *testing.T) {
	text := strings.Repeat("profit ", 200) // ~1400 chars
	got := Summarize(text)

	if len(got.Summary) != 500+len("...") {
		t.Fatalf("preview length = %d, want 503", len(got.Summary))
	}
	if !strings.HasSuffix(got.Summary, "...") {
		t.Errorf("truncated preview missing ellipsis marker")
	}
	if !strings.HasPrefix(text, got.Summary[:500]) {
		t.Errorf("preview is not a prefix of the input")
	}
}

func TestSummarizeConfidenceClamped(t *testing.T) {
	var b strings.Builder
	for _, kw := range constants.FinancialKeywords {
		b.WriteString(kw.Canonical)
		b.WriteString(" ")
	}
	got := Summarize(b.String())

	if got.Confidence > 1.0 {
		t.Errorf("confidence = %v, want <= 1.0", got.Confidence)
	}
	if len(got.KeywordsFound) != len(constants.FinancialKeywords) {
		t.Errorf("found %d keywords, want the whole vocabulary (%d)",
			len(got.KeywordsFound), len(constants.FinancialKeywords))
	}
}

func TestSummarizeCaseInsensitive(t *testing.T) {
	got := Summarize("REVENUE and EQUITY were up.")
	found := map[string]bool{}
	for _, k := range got.KeywordsFound {
		found[k] = true
	}
	if !found["revenue"] || !found["equity"] {
		t.Errorf("case-insensitive match failed: %v", got.KeywordsFound)
	}
}
