package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/constants"
	"github.com/utiliscan/meterscan/internal/ocr"
	"github.com/utiliscan/meterscan/internal/repository"
)

// PathRecognizer recognizes text in an image file on disk. *ocr.Engine is
// the production implementation.
type PathRecognizer interface {
	Recognize(ctx context.Context, path string) (ocr.RecognitionResult, error)
}

type OCRStage struct {
	FilesRepo  repository.ScanFileRepository
	JobsRepo   repository.ScanJobRepository
	Recognizer PathRecognizer
	Logger     *slog.Logger
}

func NewOCRStage(files repository.ScanFileRepository, jobs repository.ScanJobRepository, rec PathRecognizer, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{FilesRepo: files, JobsRepo: jobs, Recognizer: rec, Logger: logger}
}

// Run starts a scan_job, runs OCR, and persists the recognized text.
// The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, ocr.RecognitionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, ocr.RecognitionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, ocr.RecognitionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Enqueue(ctx, row.ID, row.DeviceID, format)
	if err != nil {
		return uuid.Nil, ocr.RecognitionResult{}, err
	}
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, ocr.RecognitionResult{}, err
	}

	res, err := p.Recognizer.Recognize(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	// flag low-confidence recognition for review
	needsReview := false
	if res.Confidence > 0 && res.Confidence < ocr.ImageConfidenceThreshold {
		p.Logger.Warn("image ocr confidence low; needs review", "file_id", fileID, "job_id", job.ID, "conf", res.Confidence)
		needsReview = true
	}

	params, _ := json.Marshal(map[string]any{"lang": res.Language})
	out := repository.OCROutcome{
		Text:         res.Text,
		Confidence:   res.Confidence,
		NeedsReview:  needsReview,
		EngineParams: params,
	}
	if err := p.JobsRepo.FinishOCR(ctx, job.ID, out); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
