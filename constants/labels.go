package constants

import (
	"strings"
)

// Label is the taxonomy for extracted meter-label fields. Key:value lines
// carry their own free-text label and generic lines use "Line N", so rows in
// the readings table are not restricted to this set.
type Label string

const (
	VolumeReading  Label = "Volume Reading"
	FlowRate       Label = "Flow Rate"
	Pressure       Label = "Pressure"
	Temperature    Label = "Temperature"
	Model          Label = "Model"
	CurrentReading Label = "Current Reading"
	SerialNumber   Label = "Serial Number"
	DeviceID       Label = "Device ID"
	ModelNumber    Label = "Model Number"
	MeterNumber    Label = "Meter Number"
	DateTime       Label = "Date/Time"
)

var allLabels = []Label{
	VolumeReading,
	FlowRate,
	Pressure,
	Temperature,
	Model,
	CurrentReading,
	SerialNumber,
	DeviceID,
	ModelNumber,
	MeterNumber,
	DateTime,
}

func AsStringSlice() []string {
	result := make([]string, len(allLabels))
	for i, l := range allLabels {
		result[i] = string(l)
	}
	return result
}

// IsCanonical reports whether a label belongs to the fixed taxonomy
// (as opposed to a key:value label or a "Line N" fallback label).
func IsCanonical(input string) (Label, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, l := range allLabels {
		if normalized == strings.ToLower(string(l)) {
			return l, true
		}
	}
	return "", false
}

// Fixed confidence values emitted by the matcher chain. The key:value and
// generic-line tiers draw from a range instead; see the bounds below.
const (
	ConfidenceModel          = 98
	ConfidenceCurrentReading = 92
	ConfidenceUnitReading    = 95
	ConfidenceIdentifier     = 90
	ConfidenceMeterNumber    = 92
	ConfidenceDateTime       = 85
)

// Half-open bounds for the randomized tiers.
const (
	KeyValueConfidenceMin = 80
	KeyValueConfidenceMax = 100
	GenericConfidenceMin  = 70
	GenericConfidenceMax  = 90
)
