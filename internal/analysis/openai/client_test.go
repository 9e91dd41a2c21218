package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finsightlabs/finsight/internal/analysis"
)

func testClient(url string) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "test-model",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestRunStagesStructuredOutput(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		fmt.Fprint(w, chatResponse(`{"output": "stage report`+fmt.Sprint(calls)+`", "confidence": 0.9}`))
	}))
	defer srv.Close()

	results, err := testClient(srv.URL).RunStages(context.Background(), "analyze this", "document text")
	if err != nil {
		t.Fatalf("RunStages: %v", err)
	}
	if calls != len(analysis.Stages) {
		t.Errorf("made %d calls, want %d (one per stage)", calls, len(analysis.Stages))
	}
	for _, stage := range analysis.Stages {
		out, ok := results[stage.Name]
		if !ok {
			t.Errorf("missing result for stage %q", stage.Name)
			continue
		}
		if out == "" || out[:12] != "stage report" {
			t.Errorf("stage %q output = %q, want parsed output field", stage.Name, out)
		}
	}
}

func TestRunStagesDegradesToRawContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// not an object matching the stage schema
		fmt.Fprint(w, chatResponse("plain prose answer"))
	}))
	defer srv.Close()

	results, err := testClient(srv.URL).RunStages(context.Background(), "q", "text")
	if err != nil {
		t.Fatalf("RunStages: %v", err)
	}
	if results[analysis.Stages[0].Name] != "plain prose answer" {
		t.Errorf("raw content not preserved: %q", results[analysis.Stages[0].Name])
	}
}

func TestRunStagesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).RunStages(context.Background(), "q", "text"); err == nil {
		t.Fatal("expected error on 503 response")
	}
}

func TestRunStagesHonorsCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatResponse(`{"output": "x"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := testClient(srv.URL).RunStages(ctx, "q", "text"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
