package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesHorizontalWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a \t b\t\tc"))
}

func TestNormalizeKeepsLineBreaks(t *testing.T) {
	got := Normalize("Serial: A123\nModel:   21")
	assert.Equal(t, "Serial: A123\nModel: 21", got)
}

func TestNormalizeStripsNonPrintable(t *testing.T) {
	assert.Equal(t, "caf", Normalize("café"))
	assert.Equal(t, "MULTICAL 21", Normalize("MULTICAL® 21"))
	assert.Equal(t, "ab", Normalize("a\x00\x07b"))
}

func TestNormalizeRepairsCaseBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower-upper", "serialNumber", "serial Number"},
		{"acronym-word", "OCRText", "OCR Text"},
		{"acronym-word long", "MULTICALMeter", "MULTICAL Meter"},
		{"plain word untouched", "Reading", "Reading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeTrims(t *testing.T) {
	assert.Equal(t, "x", Normalize("  \t x \t "))
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Serial: A123\nMULTICAL® 21",
		"meterReading 00735",
		"  A \t 0K8660 \n\n 2024-01-15 14:23 ",
		"ABCdef GHIjk",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "re-normalizing %q changed the output", in)
	}
}
