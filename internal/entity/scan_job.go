package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one recognize+parse run for data transfer between layers.
type ScanJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	DeviceID      uuid.UUID       `json:"device_id"`
	Format        string          `json:"format"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        *string         `json:"status,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	OCRConfidence *float32        `json:"ocr_confidence,omitempty"`
	NeedsReview   bool            `json:"needs_review"`
	OCRText       *string         `json:"ocr_text,omitempty"`
	ItemsJSON     json.RawMessage `json:"items_json,omitempty"`
	EngineParams  json.RawMessage `json:"engine_params,omitempty"`
}
