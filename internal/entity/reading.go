package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reading represents one extracted label/value item for data transfer
// between layers. ItemID is the identifier minted during extraction and is
// stable within its scan result.
type Reading struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	DeviceID   uuid.UUID `json:"device_id"`
	ItemID     string    `json:"item_id"`
	Label      string    `json:"label"`
	Value      string    `json:"value"`
	Confidence int       `json:"confidence"`
	LineIndex  int       `json:"line_index"`
	CreatedAt  time.Time `json:"created_at"`
}
