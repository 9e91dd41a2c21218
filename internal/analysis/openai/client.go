package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finsightlabs/finsight/internal/analysis"
)

// RunStages implements analysis.StageRunner over chat/completions. The four
// stages run sequentially; each stage sees the shared document text and
// query plus a short digest of earlier stage outputs. Per-stage output is
// requested as JSON and validated against the stage schema; when the model
// hands back something else, the raw content string is kept as a degraded
// stage result rather than failing the whole run.
func (c *Client) RunStages(ctx context.Context, query, text string) (analysis.StageResults, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("analysis.stages.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"stages", len(analysis.Stages),
		"text_len", len(text),
	)

	schema := analysis.BuildStageJSONSchema()
	results := make(analysis.StageResults, len(analysis.Stages))
	var prior []string

	for _, stage := range analysis.Stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sys := buildSystemPrompt(stage)
		user := buildUserPrompt(query, text, prior)

		body := map[string]any{
			"model":           c.cfg.Model,
			"temperature":     c.cfg.Temperature,
			"response_format": map[string]any{"type": "json_object"},
			"messages": []map[string]any{
				{"role": "system", "content": sys},
				{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
				{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			},
		}

		endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
		raw, err := c.post(ctx, endpoint, body)
		if err != nil {
			c.log.Error("analysis.stage.http_error",
				"req_id", rid, "stage", stage.Name, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		var cc struct {
			Choices []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			} `json:"choices"`
		}
		if err := json.Unmarshal(raw, &cc); err != nil {
			return nil, fmt.Errorf("stage %s: decode response: %w", stage.Name, err)
		}
		if len(cc.Choices) == 0 {
			return nil, fmt.Errorf("stage %s: no choices in response", stage.Name)
		}
		content := strings.TrimSpace(cc.Choices[0].Message.Content)

		output := content
		if err := analysis.ValidateJSONAgainstSchema(schema, []byte(content)); err == nil {
			var parsed struct {
				Output string `json:"output"`
			}
			if uerr := json.Unmarshal([]byte(content), &parsed); uerr == nil {
				output = parsed.Output
			}
		} else {
			c.log.Warn("analysis.stage.unstructured_output",
				"req_id", rid, "stage", stage.Name, "error", err)
		}

		results[stage.Name] = output
		prior = append(prior, stage.Name+": "+digest(output))

		c.log.Debug("analysis.stage.ok",
			"req_id", rid, "stage", stage.Name, "output_len", len(output),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}

	c.log.Info("analysis.stages.ok",
		"req_id", rid, "stages", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildSystemPrompt(stage analysis.Stage) string {
	parts := []string{
		"You are a cautious financial analyst who avoids hallucination and states uncertainty clearly.",
		"Task: " + stage.Description,
		"Expected output: " + stage.ExpectedOutput,
		`Respond with a JSON object {"output": "<your report>", "confidence": <0..1>}.`,
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(query, text string, prior []string) string {
	var b strings.Builder
	b.WriteString("User query: ")
	b.WriteString(query)
	if len(prior) > 0 {
		b.WriteString("\n\nContext from earlier stages:\n")
		b.WriteString(strings.Join(prior, "\n"))
	}
	b.WriteString("\n\nDocument text:\n")
	b.WriteString(text)
	return b.String()
}

// digest keeps the cross-stage context short so later prompts stay within
// the engine's own context limits.
func digest(s string) string {
	const max = 600
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
