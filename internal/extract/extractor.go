package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/finsightlabs/finsight/internal/ocr"
)

// pdfSource is the slice of ocr.Extractor this package depends on.
type pdfSource interface {
	PDFText(ctx context.Context, path string) (string, int, error)
	PDFOCR(ctx context.Context, path string) (string, int, error)
	OCRAvailable() bool
}

// Extractor implements the direct-then-OCR fallback policy: the cheap
// pdftotext path wins outright when it yields enough signal; OCR is only
// attempted below the threshold, and only replaces the direct output when
// strictly longer (noisier OCR must not overwrite a usable extraction).
type Extractor struct {
	src       pdfSource
	logger    *slog.Logger
	threshold int // minimum direct-path length before OCR is considered
}

var _ TextExtractor = (*Extractor)(nil)

func NewExtractor(src *ocr.Extractor, threshold int, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = 100
	}
	return &Extractor{src: src, logger: logger, threshold: threshold}
}

func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	text, pages, method := "", 0, "pdf-text"
	if raw, p, err := e.src.PDFText(ctx, path); err == nil {
		text = ocr.Flatten(raw)
		pages = p
	} else {
		e.logger.Warn("direct extraction failed, considering ocr", "path", path, "error", err)
	}

	if len(text) < e.threshold {
		if e.src.OCRAvailable() {
			if raw, p, err := e.src.PDFOCR(ctx, path); err == nil {
				ocrText := ocr.Flatten(raw)
				if ocrText != "" && len(ocrText) > len(text) {
					text = ocrText
					pages = p
					method = "pdf-ocr"
				}
			} else {
				e.logger.Warn("ocr fallback failed", "path", path, "error", err)
			}
		} else {
			e.logger.Warn("ocr support unavailable, keeping direct extraction output",
				"path", path, "direct_len", len(text))
		}
	}

	if text == "" {
		return Result{}, ErrNoText
	}

	return Result{
		Text:     text,
		Pages:    pages,
		Method:   method,
		Duration: time.Since(start),
	}, nil
}
