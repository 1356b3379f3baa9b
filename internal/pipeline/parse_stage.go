package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/constants"
	"github.com/utiliscan/meterscan/internal/extract"
	"github.com/utiliscan/meterscan/internal/repository"
	"github.com/utiliscan/meterscan/internal/textproc"
)

type ParseStage struct {
	Logger       *slog.Logger
	JobsRepo     repository.ScanJobRepository
	ReadingsRepo repository.ReadingRepository
	Classifier   *textproc.Classifier

	schema map[string]any
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ScanJobRepository,
	readings repository.ReadingRepository,
	classifier *textproc.Classifier,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = textproc.NewClassifier()
	}
	return &ParseStage{
		Logger:       logger,
		JobsRepo:     jobs,
		ReadingsRepo: readings,
		Classifier:   classifier,
		schema:       extract.BuildItemsJSONSchema(),
	}
}

// Run executes the parse stage for an existing OCR job (jobID).
// Preconditions: job is OCR_OK with non-empty ocr_text.
// Effects: writes items + needs_review on the job and replaces its readings.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || job.OCRText == nil {
		return job.ID, fmt.Errorf("job not ready for parse: status=%v ocr_text_empty=%t", job.Status, job.OCRText == nil)
	}

	text := textproc.Normalize(*job.OCRText)
	items := p.Classifier.Classify(text)

	p.Logger.Info("parse readings start",
		"job_id", job.ID, "file_id", file.ID,
		"ocr_bytes", len(*job.OCRText), "items", len(items),
	)

	raw, err := json.Marshal(items)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal items: %w", err)
	}
	if err := extract.ValidateJSONAgainstSchema(p.schema, raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate items: %w", err)
	}

	if _, err := p.ReadingsRepo.ReplaceForJob(ctx, job.ID, job.DeviceID, items); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("store readings: %w", err)
	}

	// review flag set by the OCR stage carries through to the finished job
	if err := p.JobsRepo.FinishParse(ctx, job.ID, raw, job.NeedsReview); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed readings successfully",
		"job_id", job.ID, "file_id", file.ID,
		"items", len(items), "needs_review", job.NeedsReview,
	)
	return job.ID, nil
}
