package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/utiliscan/meterscan/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	readingsRepo repository.ReadingRepository
	jobsRepo     repository.ScanJobRepository
	logger       *slog.Logger
}

func NewService(readings repository.ReadingRepository, jobs repository.ScanJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{readingsRepo: readings, jobsRepo: jobs, logger: logger}
}

// ExportReadingsXLSX returns an XLSX workbook (as bytes) for the given device and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all readings for the device.
func (s *Service) ExportReadingsXLSX(ctx context.Context, deviceID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	filter := repository.ReadingsFilter{DeviceID: deviceID}
	if from != nil {
		filter.From = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to != nil {
		// inclusive end of day
		filter.To = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
	}
	if !filter.From.IsZero() && filter.To.IsZero() {
		today := time.Now().UTC()
		filter.To = time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
	}

	readings, err := s.readingsRepo.ListReadings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Readings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Recorded At",
		"Label",
		"Value",
		"Confidence",
		"Item ID",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// resolve each job's source path once
	paths := map[uuid.UUID]string{}
	sourcePath := func(jobID uuid.UUID) string {
		if p, ok := paths[jobID]; ok {
			return p
		}
		p := ""
		if _, file, err := s.jobsRepo.GetWithFile(ctx, jobID); err == nil && file != nil {
			p = file.SourcePath
		}
		paths[jobID] = p
		return p
	}

	row := 2
	for _, r := range readings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.CreatedAt.UTC().Format(time.RFC3339))
		write(2, r.Label)
		write(3, r.Value)
		write(4, r.Confidence)
		write(5, r.ItemID)
		write(6, sourcePath(r.JobID))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 22) // timestamp
	_ = f.SetColWidth(sheet, "B", "B", 20) // label
	_ = f.SetColWidth(sheet, "C", "C", 24) // value
	_ = f.SetColWidth(sheet, "D", "D", 12) // confidence
	_ = f.SetColWidth(sheet, "E", "E", 38) // item id
	_ = f.SetColWidth(sheet, "F", "F", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"device_id", deviceID.String(),
		"rows", len(readings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
