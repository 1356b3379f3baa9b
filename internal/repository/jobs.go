package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/constants"
	"github.com/utiliscan/meterscan/gen/ent"
	entjob "github.com/utiliscan/meterscan/gen/ent/scanjob"
	"github.com/utiliscan/meterscan/internal/entity"
)

// OCROutcome carries what the recognition stage persists on its job.
type OCROutcome struct {
	Text         string
	Confidence   float32
	NeedsReview  bool
	EngineParams json.RawMessage
}

type ScanJobRepository interface {
	Enqueue(ctx context.Context, fileID, deviceID uuid.UUID, format string) (*entity.ScanJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error)
	GetWithFile(ctx context.Context, id uuid.UUID) (*entity.ScanJob, *entity.ScanFile, error)
	MarkRunning(ctx context.Context, id uuid.UUID) error
	FinishOCR(ctx context.Context, id uuid.UUID, outcome OCROutcome) error
	FinishParse(ctx context.Context, id uuid.UUID, items json.RawMessage, needsReview bool) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
}

type scanJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, logger *slog.Logger) ScanJobRepository {
	return &scanJobRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scanJobRepo) Enqueue(ctx context.Context, fileID, deviceID uuid.UUID, format string) (*entity.ScanJob, error) {
	row, err := r.ent.ScanJob.Create().
		SetFileID(fileID).
		SetDeviceID(deviceID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to enqueue scan job", "file_id", fileID, "device_id", deviceID, "error", err)
		return nil, err
	}
	r.logger.Info("enqueued scan job", "job_id", row.ID, "file_id", fileID)
	return toScanJob(row), nil
}

func (r *scanJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanJob, error) {
	row, err := r.ent.ScanJob.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get scan job", "job_id", id, "error", err)
		return nil, err
	}
	return toScanJob(row), nil
}

func (r *scanJobRepo) GetWithFile(ctx context.Context, id uuid.UUID) (*entity.ScanJob, *entity.ScanFile, error) {
	row, err := r.ent.ScanJob.Query().
		Where(entjob.ID(id)).
		WithFile().
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get scan job with file", "job_id", id, "error", err)
		return nil, nil, err
	}
	file, err := row.Edges.FileOrErr()
	if err != nil {
		r.logger.Error("scan job has no file edge", "job_id", id, "error", err)
		return nil, nil, err
	}
	return toScanJob(row), toScanFile(file), nil
}

func (r *scanJobRepo) MarkRunning(ctx context.Context, id uuid.UUID) error {
	err := r.ent.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusRunning)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark scan job running", "job_id", id, "error", err)
	}
	return err
}

func (r *scanJobRepo) FinishOCR(ctx context.Context, id uuid.UUID, outcome OCROutcome) error {
	upd := r.ent.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusOCROK)).
		SetOcrText(outcome.Text).
		SetOcrConfidence(outcome.Confidence).
		SetNeedsReview(outcome.NeedsReview)
	if len(outcome.EngineParams) > 0 {
		upd.SetEngineParams(outcome.EngineParams)
	}
	err := upd.Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record ocr result", "job_id", id, "error", err)
	}
	return err
}

func (r *scanJobRepo) FinishParse(ctx context.Context, id uuid.UUID, items json.RawMessage, needsReview bool) error {
	err := r.ent.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusParseOK)).
		SetItems(items).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record parse result", "job_id", id, "error", err)
	}
	return err
}

func (r *scanJobRepo) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	err := r.ent.ScanJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark scan job failed", "job_id", id, "error", err)
	}
	return err
}
