package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/utiliscan/meterscan/gen/proto/meterscan/v1"
	"github.com/utiliscan/meterscan/internal/async"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/ingest"
	processor "github.com/utiliscan/meterscan/internal/pipeline"
	"github.com/utiliscan/meterscan/internal/repository"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor   ingest.Ingestor
	deviceRepo repository.DeviceRepository
	processor  *processor.Processor
	queue      async.Queue
	logger     *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, proc *processor.Processor, queue async.Queue, d repository.DeviceRepository, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:   ing,
		processor:  proc,
		queue:      queue,
		deviceRepo: d,
		logger:     logger,
	}
}

// IngestFile registers a single label photo and processes it inline.
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	deviceID, err := s.parseDeviceID(ctx, req.GetDeviceId())
	if err != nil {
		return nil, err
	}
	ctx = common.WithDeviceID(ctx, deviceID.String())

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "device_id", deviceID)
		return nil, common.InvalidArgumentError("path is required")
	}

	s.logger.Info("starting file ingest", "device_id", deviceID, "path", path, "request_id", common.RequestIDFromContext(ctx))
	r, err := s.ingestor.IngestPath(ctx, deviceID, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "device_id", deviceID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngest(r)

	fileUUID, _ := uuid.Parse(r.FileID)
	s.logger.Info("starting file processing", "file_id", r.FileID)
	if _, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

// IngestDirectory registers every matching file under root and queues each
// one for background processing.
func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	deviceID, err := s.parseDeviceID(ctx, req.GetDeviceId())
	if err != nil {
		return nil, err
	}
	ctx = common.WithDeviceID(ctx, deviceID.String())
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "device_id", deviceID)
		return nil, common.InvalidArgumentError("root_path is required")
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "device_id", deviceID, "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, deviceID, root, skipHidden)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "device_id", deviceID, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toPBIngest(r)

		if r.Err == "" && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				job := async.Job{FileID: fileUUID, SubmittedAt: time.Now(), TraceID: common.RequestIDFromContext(ctx)}
				if qErr := s.queue.Enqueue(ctx, job); qErr != nil {
					s.logger.Error("queue.enqueue.failed", "file_id", r.FileID, "err", qErr)
					item.Error = qErr.Error()
				}
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionService) parseDeviceID(ctx context.Context, raw string) (uuid.UUID, error) {
	did := strings.TrimSpace(raw)
	if did == "" {
		s.logger.Error("ingest request missing device_id")
		return uuid.Nil, common.InvalidArgumentError("device_id is required")
	}
	deviceID, err := uuid.Parse(did)
	if err != nil {
		s.logger.Error("invalid device_id format for ingest", "device_id", did, "error", err)
		return uuid.Nil, common.InvalidArgumentError("device_id must be a UUID")
	}
	if exists, _ := s.deviceRepo.Exists(ctx, deviceID); !exists {
		s.logger.Error("device not found for ingest", "device_id", deviceID)
		return uuid.Nil, common.InvalidArgumentError("device not found")
	}
	return deviceID, nil
}

func toPBIngest(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
