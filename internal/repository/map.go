package repository

import (
	"github.com/utiliscan/meterscan/gen/ent"
	"github.com/utiliscan/meterscan/internal/entity"
)

// Row-to-entity converters. Repositories return entity structs so callers
// do not depend on generated code.

func toDevice(row *ent.Device) *entity.Device {
	return &entity.Device{
		ID:        row.ID,
		Name:      row.Name,
		Location:  row.Location,
		MeterType: row.MeterType,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDevices(rows []*ent.Device) []*entity.Device {
	out := make([]*entity.Device, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDevice(row))
	}
	return out
}

func toScanFile(row *ent.ScanFile) *entity.ScanFile {
	return &entity.ScanFile{
		ID:          row.ID,
		DeviceID:    row.DeviceID,
		SourcePath:  row.SourcePath,
		ContentHash: row.ContentHash,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		FileSize:    row.FileSize,
		UploadedAt:  row.UploadedAt,
	}
}

func toScanJob(row *ent.ScanJob) *entity.ScanJob {
	return &entity.ScanJob{
		ID:            row.ID,
		FileID:        row.FileID,
		DeviceID:      row.DeviceID,
		Format:        row.Format,
		StartedAt:     row.StartedAt,
		FinishedAt:    row.FinishedAt,
		Status:        row.Status,
		ErrorMessage:  row.ErrorMessage,
		OCRConfidence: row.OcrConfidence,
		NeedsReview:   row.NeedsReview,
		OCRText:       row.OcrText,
		ItemsJSON:     row.Items,
		EngineParams:  row.EngineParams,
	}
}

func toReading(row *ent.Reading) *entity.Reading {
	return &entity.Reading{
		ID:         row.ID,
		JobID:      row.JobID,
		DeviceID:   row.DeviceID,
		ItemID:     row.ItemID,
		Label:      row.Label,
		Value:      row.Value,
		Confidence: row.Confidence,
		LineIndex:  row.LineIndex,
		CreatedAt:  row.CreatedAt,
	}
}

func toReadings(rows []*ent.Reading) []*entity.Reading {
	out := make([]*entity.Reading, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReading(row))
	}
	return out
}
