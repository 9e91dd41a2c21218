package ocr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// funcRunner stubs external commands with a closure.
type funcRunner func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

func (f funcRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f(ctx, name, args...)
}

func TestFlatten(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"  a\n\tb \f c  ", "a b c"},
		{"one two", "one two"},
	}
	for _, tc := range cases {
		if got := Flatten(tc.in); got != tc.want {
			t.Errorf("Flatten(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripNoise(t *testing.T) {
	in := "Total: 42\n----------\nNet: 40\n___\n"
	got := stripNoise(in)
	if strings.Contains(got, "---") || strings.Contains(got, "___") {
		t.Errorf("rule lines survived: %q", got)
	}
	if !strings.Contains(got, "Total: 42") || !strings.Contains(got, "Net: 40") {
		t.Errorf("content lines lost: %q", got)
	}
}

func TestPDFTextCountsPages(t *testing.T) {
	e := &Extractor{
		cfg:    Config{Pdftotext: "pdftotext"},
		logger: testLogger(),
		runner: funcRunner(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			if name != "pdftotext" {
				t.Errorf("unexpected command %q", name)
			}
			return []byte("page one\fpage two\fpage three"), nil, nil
		}),
	}

	text, pages, err := e.PDFText(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("PDFText: %v", err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	if !strings.HasPrefix(text, "page one") {
		t.Errorf("text = %q", text)
	}
}

func TestPDFOCRReassemblesPagesInOrder(t *testing.T) {
	// the stub pdftoppm writes page images under the prefix it is handed;
	// the stub tesseract answers per image
	e := &Extractor{
		cfg:          Config{Pdftoppm: "pdftoppm", Tesseract: "tesseract", TesseractLang: "eng", DPI: 200, Parallel: 2},
		logger:       testLogger(),
		ocrAvailable: true,
		runner: funcRunner(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			switch name {
			case "pdftoppm":
				prefix := args[len(args)-1]
				for i := 1; i <= 3; i++ {
					if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
						t.Fatal(err)
					}
				}
				return nil, nil, nil
			case "tesseract":
				img := args[0]
				return []byte("text from " + img[len(img)-5:]), nil, nil
			default:
				t.Fatalf("unexpected command %q", name)
				return nil, nil, nil
			}
		}),
	}

	text, pages, err := e.PDFOCR(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("PDFOCR: %v", err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	i1 := strings.Index(text, "1.png")
	i2 := strings.Index(text, "2.png")
	i3 := strings.Index(text, "3.png")
	if i1 < 0 || i2 < 0 || i3 < 0 || !(i1 < i2 && i2 < i3) {
		t.Errorf("pages out of order: %q", text)
	}
}

func TestPDFOCRNoImagesFails(t *testing.T) {
	e := &Extractor{
		cfg:          Config{Pdftoppm: "pdftoppm", Tesseract: "tesseract", DPI: 200, Parallel: 1},
		logger:       testLogger(),
		ocrAvailable: true,
		runner: funcRunner(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
			return nil, nil, nil // pdftoppm "succeeds" but writes nothing
		}),
	}

	if _, _, err := e.PDFOCR(context.Background(), "empty.pdf"); err == nil {
		t.Fatal("expected error when no page images are produced")
	}
}
