package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/utiliscan/meterscan/gen/ent"
	v1 "github.com/utiliscan/meterscan/gen/proto/meterscan/v1"
	"github.com/utiliscan/meterscan/internal/async"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/export"
	"github.com/utiliscan/meterscan/internal/extract"
	"github.com/utiliscan/meterscan/internal/ingest"
	"github.com/utiliscan/meterscan/internal/ocr"
	pipeline "github.com/utiliscan/meterscan/internal/pipeline"
	repo "github.com/utiliscan/meterscan/internal/repository"
	svc "github.com/utiliscan/meterscan/internal/server"
	"github.com/utiliscan/meterscan/internal/textproc"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(requestIDInterceptor(logger)))

	devicesRepo := repo.NewDeviceRepository(entc, logger)
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

	classifier := textproc.NewClassifier()
	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, engine, logger)
	parseStage := pipeline.NewParseStage(logger, jobsRepo, readingsRepo, classifier)
	proc := pipeline.NewProcessor(logger, ocrStage, parseStage)

	queue := async.NewWorkerPool(cfg.Ingest.Workers, 512, proc, logger)
	ingestor := ingest.NewFSIngestor(devicesRepo, filesRepo, logger)

	devicesService := svc.NewDevicesService(devicesRepo, logger)
	v1.RegisterDevicesServiceServer(grpcServer, devicesService)

	ingestionService := svc.NewIngestionService(ingestor, proc, queue, devicesRepo, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	adapter := extract.NewOCRAdapter(engine, logger)
	extractionService := svc.NewExtractionService(extract.NewService(adapter, logger), logger)
	v1.RegisterExtractionServiceServer(grpcServer, extractionService)

	exporter := export.NewService(readingsRepo, jobsRepo, logger)
	readingsService := svc.NewReadingsService(readingsRepo, exporter, logger)
	v1.RegisterReadingsServiceServer(grpcServer, readingsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if len(cfg.Ingest.WatchRoots) > 0 {
		startWatchIngest(ctx, cfg, ingestor, queue, logger)
	}

	logger.Info("meterscand listening", "addr", cfg.Server.GRPCAddr)
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

func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if cfg.Database.DSN != "" {
		return repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	entc, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
	return entc, nil, err
}

// startWatchIngest feeds newly written label photos straight into the queue.
// Watched paths carry the owning device in their directory name:
// <root>/<device-uuid>/photo.jpg.
func startWatchIngest(ctx context.Context, cfg *common.Config, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.WatchRoots,
		InitialScan: true,
		Debounce:    2 * time.Second,
	})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		return
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-errCh:
				if !ok {
					return
				}
				logger.Error("watch error", "error", err)
			case path, ok := <-evCh:
				if !ok {
					return
				}
				deviceID, err := deviceIDFromPath(path)
				if err != nil {
					logger.Warn("skipping watched file outside a device directory", "path", path, "error", err)
					continue
				}
				r, err := ingestor.IngestPath(ctx, deviceID, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "error", err)
					continue
				}
				if fileUUID, err := uuid.Parse(r.FileID); err == nil {
					if err := queue.Enqueue(ctx, async.Job{FileID: fileUUID}); err != nil {
						logger.Error("watch enqueue failed", "file_id", r.FileID, "error", err)
					}
				}
			}
		}
	}()
	logger.Info("watching for label photos", "roots", cfg.Ingest.WatchRoots)
}

func deviceIDFromPath(path string) (uuid.UUID, error) {
	return uuid.Parse(filepath.Base(filepath.Dir(path)))
}

// requestIDInterceptor tags every RPC with a request id and logs its outcome.
func requestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Error("rpc.failed", "method", info.FullMethod, "request_id", requestID, "elapsed", time.Since(start), "err", err)
			return resp, err
		}
		logger.Info("rpc.ok", "method", info.FullMethod, "request_id", requestID, "elapsed", time.Since(start))
		return resp, err
	}
}
