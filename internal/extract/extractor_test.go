package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSource implements pdfSource with canned outputs and call accounting.
type fakeSource struct {
	directText string
	directErr  error
	ocrText    string
	ocrErr     error
	available  bool

	directCalls int
	ocrCalls    int
}

func (f *fakeSource) PDFText(ctx context.Context, path string) (string, int, error) {
	f.directCalls++
	return f.directText, 1, f.directErr
}

func (f *fakeSource) PDFOCR(ctx context.Context, path string) (string, int, error) {
	f.ocrCalls++
	return f.ocrText, 1, f.ocrErr
}

func (f *fakeSource) OCRAvailable() bool { return f.available }

func newTestExtractor(src *fakeSource) *Extractor {
	return &Extractor{src: src, logger: discardLogger(), threshold: 100}
}

func TestDirectExtractionAboveThresholdSkipsOCR(t *testing.T) {
	src := &fakeSource{
		directText: strings.Repeat("quarterly revenue ", 10), // >100 chars
		ocrText:    strings.Repeat("x", 5000),
		available:  true,
	}
	e := newTestExtractor(src)

	res, err := e.Extract(context.Background(), "report.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if src.ocrCalls != 0 {
		t.Errorf("OCR was invoked %d times despite sufficient direct output", src.ocrCalls)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
}

func TestOCRFallbackReplacesShortDirectOutput(t *testing.T) {
	src := &fakeSource{
		directText: "short scan",
		ocrText:    strings.Repeat("scanned balance sheet line\n", 20),
		available:  true,
	}
	e := newTestExtractor(src)

	res, err := e.Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if src.ocrCalls != 1 {
		t.Fatalf("ocr calls = %d, want 1", src.ocrCalls)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("method = %q, want pdf-ocr", res.Method)
	}
	if strings.Contains(res.Text, "\n") {
		t.Errorf("result text not flattened: %q", res.Text)
	}
}

func TestOCRNotLongerKeepsDirectOutput(t *testing.T) {
	src := &fakeSource{
		directText: "direct but below the threshold",
		ocrText:    "tiny",
		available:  true,
	}
	e := newTestExtractor(src)

	res, err := e.Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-text" || res.Text != "direct but below the threshold" {
		t.Errorf("got method=%q text=%q, want direct output preserved", res.Method, res.Text)
	}
}

func TestOCRUnavailableKeepsDirectOutput(t *testing.T) {
	src := &fakeSource{
		directText: "thin direct output",
		available:  false,
	}
	e := newTestExtractor(src)

	res, err := e.Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if src.ocrCalls != 0 {
		t.Errorf("OCR invoked while unavailable")
	}
	if res.Text != "thin direct output" {
		t.Errorf("text = %q", res.Text)
	}
}

func TestNoTextAnywhereFails(t *testing.T) {
	src := &fakeSource{
		directText: "  \n\t ",
		ocrErr:     errors.New("tesseract: exit status 1"),
		available:  true,
	}
	e := newTestExtractor(src)

	_, err := e.Extract(context.Background(), "blank.pdf")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("err = %v, want ErrNoText", err)
	}
}

func TestDirectFailureFallsThroughToOCR(t *testing.T) {
	src := &fakeSource{
		directErr: errors.New("pdftotext: exit status 3"),
		ocrText:   strings.Repeat("ocr text ", 30),
		available: true,
	}
	e := newTestExtractor(src)

	res, err := e.Extract(context.Background(), "corrupt.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("method = %q, want pdf-ocr", res.Method)
	}
}
