package ocr

import (
	"context"
	"strings"
)

// PDFText runs the cheap direct path: pdftotext over the whole document.
// Returns the raw (un-flattened) text and a page count.
func (e *Extractor) PDFText(ctx context.Context, path string) (string, int, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		e.logger.Warn("pdftotext failed", "path", path, "stderr", truncate(string(errb), 2<<10))
		return "", 0, err
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return text, pages, nil
}
