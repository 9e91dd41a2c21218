package ocr

import (
	"log/slog"
	"os/exec"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 200
	MaxPages      int // 0 = no limit
	Parallel      int // concurrent page OCRs, default 2
}

// Extractor shells out to poppler/tesseract for the two extraction paths.
// OCR availability is resolved once at construction; callers branch on
// OCRAvailable rather than on a runtime failure-to-exec.
type Extractor struct {
	cfg          Config
	runner       Runner
	logger       *slog.Logger
	ocrAvailable bool
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = 2
	}

	available := true
	for _, bin := range []string{cfg.Pdftoppm, cfg.Tesseract} {
		if _, err := exec.LookPath(bin); err != nil {
			logger.Warn("ocr binary not found; ocr fallback disabled", "binary", bin)
			available = false
		}
	}

	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger, ocrAvailable: available}
}

// OCRAvailable reports whether the rasterize+tesseract path can run in this
// environment.
func (e *Extractor) OCRAvailable() bool {
	return e.ocrAvailable
}
