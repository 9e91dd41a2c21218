package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/finsightlabs/finsight/constants"
	"github.com/finsightlabs/finsight/internal/analysis"
	"github.com/finsightlabs/finsight/internal/analysis/openai"
	"github.com/finsightlabs/finsight/internal/common"
	"github.com/finsightlabs/finsight/internal/extract"
	"github.com/finsightlabs/finsight/internal/ocr"
	"github.com/finsightlabs/finsight/internal/summary"
)

// analyze runs the extraction and analysis pipeline against a single PDF
// without a database or server, printing the outcome as JSON. Useful for
// smoke-testing a document before uploading it.
func main() {
	query := flag.String("query", constants.DefaultAnalysisQuery, "analysis query")
	withEngine := flag.Bool("engine", false, "run the LLM stages (requires OPENAI_API_KEY)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file.pdf>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := common.LoadConfig()
	ctx := context.Background()

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		TessdataDir:   cfg.Extract.TessdataDir,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
		Parallel:      cfg.Extract.OCRParallel,
	}, logger)
	textExtractor := extract.NewExtractor(ocrExtractor, cfg.Extract.DirectTextThreshold, logger)

	res, err := textExtractor.Extract(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}

	out := map[string]any{
		"file":          path,
		"pages":         res.Pages,
		"method":        res.Method,
		"text_length":   len(res.Text),
		"local_summary": summary.Summarize(res.Text),
	}

	if *withEngine {
		if cfg.Engine.APIKey == "" {
			fmt.Fprintln(os.Stderr, "OPENAI_API_KEY is required with -engine")
			os.Exit(1)
		}
		runner := openai.NewClient(openai.Config{
			APIKey:      cfg.Engine.APIKey,
			BaseURL:     cfg.Engine.BaseURL,
			Model:       cfg.Engine.Model,
			Temperature: cfg.Engine.Temperature,
			Timeout:     cfg.Engine.HTTPTimeout,
		}, logger)
		engine := analysis.NewEngine(runner, cfg.Engine.Timeout, cfg.Engine.MaxChars, logger)

		results, aerr := engine.Analyze(ctx, *query, res.Text)
		if aerr != nil {
			out["engine_error"] = aerr.Message
		} else {
			out["stage_results"] = results
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
