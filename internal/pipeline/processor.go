package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/internal/common"
)

// Processor coordinates OCR (text recognition) then parse (field extraction).
type Processor struct {
	Logger *slog.Logger
	OCR    *OCRStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Parse: parse}
}

// ProcessFile runs OCR for a fileID (creating/advancing scan_job), then
// parses the recognized text into readings. Returns the final jobID (same
// one started by OCR).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	logger := p.Logger
	if did := common.DeviceIDFromContext(ctx); did != "" {
		logger = logger.With("device_id", did)
	}

	// 1) OCR stage -> creates job + stores ocr_text + confidence
	jobID, ocrRes, err := p.OCR.Run(ctx, fileID)
	if err != nil {
		logger.Error("processor.ocr.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	logger.Info("processor.ocr.ok",
		"file_id", fileID,
		"job_id", jobID,
		"duration", ocrRes.Duration,
		"confidence", ocrRes.Confidence,
	)

	// 2) parse stage -> reads job.ocr_text and stores readings.
	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}
