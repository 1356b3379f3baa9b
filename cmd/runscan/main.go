package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utiliscan/meterscan/gen/ent"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/ocr"
	pipeline "github.com/utiliscan/meterscan/internal/pipeline"
	repo "github.com/utiliscan/meterscan/internal/repository"
	"github.com/utiliscan/meterscan/internal/textproc"
)

// runscan processes a single already-ingested file through the full
// recognize+parse pipeline. Useful for reprocessing after tuning the engine.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runscan <file-id-uuid>")
		os.Exit(2)
	}
	fileID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid file id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var entc *ent.Client
	if cfg.Database.DSN != "" {
		var pool *pgxpool.Pool
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		}, logger)
		if err == nil {
			defer pool.Close()
		}
	} else {
		entc, err = repo.OpenSQLite(cfg.Database.SQLitePath, logger)
	}
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}()

	filesRepo := repo.NewScanFileRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)
	readingsRepo := repo.NewReadingRepository(entc, logger)

	engine := ocr.NewEngine(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		Language:            cfg.OCR.Language,
		TessdataDir:         cfg.OCR.TessdataDir,
		CharWhitelist:       cfg.OCR.CharWhitelist,
		PreserveSpaces:      true,
		PSM:                 cfg.OCR.PSM,
		Timeout:             cfg.OCR.EngineTimeout,
		EnableTSVConfidence: cfg.OCR.TSVConfidence,
	}, logger)

	p := pipeline.NewProcessor(logger,
		pipeline.NewOCRStage(filesRepo, jobsRepo, engine, logger),
		pipeline.NewParseStage(logger, jobsRepo, readingsRepo, textproc.NewClassifier()),
	)

	start := time.Now()
	jobID, err := p.ProcessFile(ctx, fileID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("scan failed",
			"job_id", jobID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	readings, err := readingsRepo.ListByJob(ctx, jobID)
	if err != nil {
		logger.Error("list readings", "job_id", jobID, "error", err)
		os.Exit(1)
	}
	logger.Info("scan OK",
		"job_id", jobID,
		"readings", len(readings),
		"duration_ms", dur.Milliseconds(),
	)
	for _, r := range readings {
		logger.Info("reading", "label", r.Label, "value", r.Value, "confidence", r.Confidence)
	}
}
