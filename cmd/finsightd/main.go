package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	finsightpb "github.com/finsightlabs/finsight/gen/proto/finsight/v1"
	"github.com/finsightlabs/finsight/internal/analysis"
	"github.com/finsightlabs/finsight/internal/analysis/openai"
	"github.com/finsightlabs/finsight/internal/async"
	"github.com/finsightlabs/finsight/internal/common"
	"github.com/finsightlabs/finsight/internal/export"
	"github.com/finsightlabs/finsight/internal/extract"
	"github.com/finsightlabs/finsight/internal/ingest"
	"github.com/finsightlabs/finsight/internal/ocr"
	"github.com/finsightlabs/finsight/internal/pipeline"
	repo "github.com/finsightlabs/finsight/internal/repository"
	svc "github.com/finsightlabs/finsight/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	docRepo := repo.NewDocumentRepository(db.Client, logger)
	analysisRepo := repo.NewAnalysisRepository(db.Client, logger)

	// Text extraction: direct pdftotext with OCR fallback.
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

	// Structured analysis engine over the OpenAI stage runner.
	stageRunner := openai.NewClient(openai.Config{
		APIKey:      cfg.Engine.APIKey,
		BaseURL:     cfg.Engine.BaseURL,
		Model:       cfg.Engine.Model,
		Temperature: cfg.Engine.Temperature,
		Timeout:     cfg.Engine.HTTPTimeout,
	}, logger)
	engine := analysis.NewEngine(stageRunner, cfg.Engine.Timeout, cfg.Engine.MaxChars, logger)

	orchestrator := pipeline.NewOrchestrator(logger, textExtractor, engine, docRepo, analysisRepo, cfg.Pipeline.MinTextChars)

	queue := async.NewPipelineQueue(orchestrator, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	ingestSvc := ingest.NewService(docRepo, queue, logger, cfg.Ingest.UploadDir, cfg.Ingest.MaxFileSize)
	exportSvc := export.NewService(analysisRepo, docRepo, logger)

	// Optional inbox watcher: PDFs dropped into WATCH_DIR are auto-submitted.
	if cfg.Ingest.WatchDir != "" {
		watcher, err := ingest.NewWatcher(ingestSvc, ingest.WatchConfig{
			Root:        cfg.Ingest.WatchDir,
			OwnerID:     cfg.Ingest.WatchOwnerID,
			InitialScan: true,
		}, logger)
		if err != nil {
			logger.Error("failed to start inbox watcher", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("inbox watcher stopped", "error", err)
			}
		}()
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	// uploads arrive inline in SubmitDocument, so the receive limit must
	// clear the configured max file size plus envelope overhead
	grpcServer := grpc.NewServer(grpc.MaxRecvMsgSize(int(cfg.Ingest.MaxFileSize) + 1<<20))

	finsightpb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsService(ingestSvc, docRepo, logger))
	finsightpb.RegisterAnalysesServiceServer(grpcServer, svc.NewAnalysesService(analysisRepo, exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("finsightd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
