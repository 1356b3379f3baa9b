package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a registered meter/device for data transfer between layers.
type Device struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	MeterType string    `json:"meter_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
