package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand pins the randomized confidence tiers to their lower bound.
func fixedRand(int) int { return 0 }

func classifyOne(t *testing.T, line string) Item {
	t.Helper()
	c := NewClassifier()
	items := c.Classify(line)
	require.Len(t, items, 1)
	return items[0]
}

func TestClassifyKeyValueLine(t *testing.T) {
	item := classifyOne(t, "Pressure: 3.2 Bar")
	assert.Equal(t, "Pressure", item.Label)
	assert.Equal(t, "3.2 Bar", item.Value)
	assert.GreaterOrEqual(t, item.Confidence, 80)
	assert.Less(t, item.Confidence, 100)
}

func TestClassifyKeyValueWinsOverUnitPattern(t *testing.T) {
	// the colon tier outranks the numeric/unit tier
	item := classifyOne(t, "Pressure: 3.2 bar")
	assert.Equal(t, "Pressure", item.Label)
	assert.Equal(t, "3.2 bar", item.Value)
}

func TestClassifyTimeColonIsNotKeyValue(t *testing.T) {
	item := classifyOne(t, "2024-01-15 14:23")
	assert.Equal(t, "Date/Time", item.Label)
	assert.Equal(t, "2024-01-15 14:23", item.Value)
	assert.Equal(t, 85, item.Confidence)
}

func TestClassifyKeyValueWithTimeValue(t *testing.T) {
	item := classifyOne(t, "Last read: 14:23")
	assert.Equal(t, "Last read", item.Label)
	assert.Equal(t, "14:23", item.Value)
}

func TestClassifyUnitReadings(t *testing.T) {
	tests := []struct {
		line  string
		label string
		value string
		conf  int
	}{
		{"123.45 m3", "Volume Reading", "123.45", 95},
		{"40 gallons", "Volume Reading", "40", 95},
		{"15 min", "Flow Rate", "15", 95},
		{"3.2 bar", "Pressure", "3.2", 95},
		{"16 psi", "Pressure", "16", 95},
		{"23 °C", "Temperature", "23", 95},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			item := classifyOne(t, tt.line)
			assert.Equal(t, tt.label, item.Label)
			assert.Equal(t, tt.value, item.Value)
			assert.Equal(t, tt.conf, item.Confidence)
		})
	}
}

func TestClassifyModel(t *testing.T) {
	item := classifyOne(t, "MULTICAL® 21")
	assert.Equal(t, "Model", item.Label)
	assert.Equal(t, "MULTICAL® 21", item.Value)
	assert.Equal(t, 98, item.Confidence)
}

func TestClassifyCurrentReading(t *testing.T) {
	item := classifyOne(t, "00735")
	assert.Equal(t, "Current Reading", item.Label)
	assert.Equal(t, "00735", item.Value)
	assert.Equal(t, 92, item.Confidence)
}

func TestClassifySerialNumberStripsSpaces(t *testing.T) {
	item := classifyOne(t, "A 0K8660")
	assert.Equal(t, "Serial Number", item.Label)
	assert.Equal(t, "A0K8660", item.Value)
	assert.Equal(t, 90, item.Confidence)
}

func TestClassifySerialNumberNeedsDigit(t *testing.T) {
	// plain words must not be claimed as serial numbers
	item := classifyOne(t, "random unmatched text")
	assert.Equal(t, "Line 1", item.Label)
}

func TestClassifyDeviceID(t *testing.T) {
	item := classifyOne(t, "Z 123")
	assert.Equal(t, "Device ID", item.Label)
	assert.Equal(t, "Z123", item.Value)
	assert.Equal(t, 90, item.Confidence)
}

func TestClassifyMeterNumber(t *testing.T) {
	item := classifyOne(t, "B83")
	assert.Equal(t, "Meter Number", item.Label)
	assert.Equal(t, "B83", item.Value)
	assert.Equal(t, 92, item.Confidence)
}

func TestClassifyDateVariants(t *testing.T) {
	for _, line := range []string{"2024-01-15", "2024/01/15", "15-01-2024", "15/1/2024", "14:23:05"} {
		item := classifyOne(t, line)
		assert.Equal(t, "Date/Time", item.Label, "line %q", line)
		assert.Equal(t, line, item.Value)
		assert.Equal(t, 85, item.Confidence)
	}
}

func TestClassifyGenericFallback(t *testing.T) {
	item := classifyOne(t, "random unmatched text")
	assert.Equal(t, "Line 1", item.Label)
	assert.Equal(t, "random unmatched text", item.Value)
	assert.GreaterOrEqual(t, item.Confidence, 70)
	assert.Less(t, item.Confidence, 90)
}

func TestClassifyOneItemPerLine(t *testing.T) {
	text := "MULTICAL® 21\n00735\n\nSerial: A0K8660\nsome noise here\nB83"
	c := NewClassifier()
	items := c.Classify(text)
	require.Len(t, items, 5)

	assert.Equal(t, "Model", items[0].Label)
	assert.Equal(t, "Current Reading", items[1].Label)
	assert.Equal(t, "Serial", items[2].Label)
	assert.Equal(t, "A0K8660", items[2].Value)
	assert.Equal(t, "Line 4", items[3].Label)
	assert.Equal(t, "Meter Number", items[4].Label)
}

func TestClassifyItemIDsUnique(t *testing.T) {
	c := NewClassifier()
	items := c.Classify("a: 1\nb: 2\nc: 3")
	seen := map[string]bool{}
	for _, it := range items {
		require.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	text := "Serial: A123\nMULTICAL 21\n00735\nB83\n2024-01-15\nplain words only\n3.2 bar"
	c := NewClassifier()
	for range 20 {
		for _, it := range c.Classify(text) {
			assert.GreaterOrEqual(t, it.Confidence, 0)
			assert.LessOrEqual(t, it.Confidence, 100)
		}
	}
}

func TestClassifyInjectedRand(t *testing.T) {
	c := NewClassifier()
	c.RandInt = fixedRand
	items := c.Classify("Serial: A123\nwhatever words")
	require.Len(t, items, 2)
	assert.Equal(t, 80, items[0].Confidence)
	assert.Equal(t, 70, items[1].Confidence)
}

func TestClassifyEmptyText(t *testing.T) {
	c := NewClassifier()
	assert.Empty(t, c.Classify(""))
	assert.Empty(t, c.Classify(" \n \n"))
}
