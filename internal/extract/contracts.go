package extract

import (
	"context"
	"errors"
	"time"
)

// ErrNoText means neither the direct nor the OCR path produced any text.
var ErrNoText = errors.New("no text could be extracted from the document")

// TextExtractor is Stage 1 of the pipeline: file -> plain text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

type Result struct {
	Text     string // flattened (whitespace-normalized) text
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr"
	Duration time.Duration
}
