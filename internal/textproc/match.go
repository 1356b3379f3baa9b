package textproc

import (
	"regexp"
	"strings"

	"github.com/utiliscan/meterscan/constants"
)

// Match is the label/value/confidence triple produced by a single matcher.
// A confidence of 0 means the tier draws from a randomized range and the
// classifier fills it in.
type Match struct {
	Label      string
	Value      string
	Confidence int
}

// matcherFunc inspects one line and either claims it or passes.
type matcherFunc func(line string) (Match, bool)

// Domain readings: a number followed by a known unit. The leading numeric
// capture is the value; the unit is only used for labeling.
var (
	reVolume      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:m3|m³|L|gallons|liters|cu\.?\s*ft|meter\s*reading|m\.?\s*r\.?)`)
	reFlow        = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:m3|hL|L|min|hr)`)
	rePressure    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:bar|psi|kPa)`)
	reTemperature = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:[°º]\s*[CF])`)
	reModel       = regexp.MustCompile(`(?i)(MULTICAL[®©]?\s*\d+[A-Z]*)`)
	reStandalone  = regexp.MustCompile(`\b(\d{5,})\b`)
)

// Identifier shapes. Serial numbers on labels are frequently broken by
// spurious spaces ("A 0K8660"), so the run may span single spaces and the
// value is reassembled without them.
var (
	reSerial      = regexp.MustCompile(`\b[A-Z0-9](?: ?[A-Z0-9]){4,}\b`)
	reDeviceID    = regexp.MustCompile(`(?i)\b([A-Z]\s*\d{3,})\b`)
	reModelNum    = regexp.MustCompile(`(?i)\b(\d{2,}[A-Z]\d{2,})\b`)
	reMeterNum    = regexp.MustCompile(`(?i)\b([A-Z]\s*\d+[A-Z]?\d*)\b`)
	reAnySpace    = regexp.MustCompile(`\s+`)
	reDateTime    = regexp.MustCompile(`(\d{4}[-/]\d{1,2}[-/]\d{1,2})|(\d{1,2}[-/]\d{1,2}[-/]\d{4})|(\d{1,2}:\d{2}(?::\d{2})?)`)
)

type unitPattern struct {
	re         *regexp.Regexp
	label      constants.Label
	confidence int
}

// Sub-order is the tie-break: the first pattern that matches wins.
var unitPatterns = []unitPattern{
	{reVolume, constants.VolumeReading, constants.ConfidenceUnitReading},
	{reFlow, constants.FlowRate, constants.ConfidenceUnitReading},
	{rePressure, constants.Pressure, constants.ConfidenceUnitReading},
	{reTemperature, constants.Temperature, constants.ConfidenceUnitReading},
	{reModel, constants.Model, constants.ConfidenceModel},
	{reStandalone, constants.CurrentReading, constants.ConfidenceCurrentReading},
}

type identifierPattern struct {
	re         *regexp.Regexp
	label      constants.Label
	confidence int
}

var identifierPatterns = []identifierPattern{
	{reDeviceID, constants.DeviceID, constants.ConfidenceIdentifier},
	{reModelNum, constants.ModelNumber, constants.ConfidenceIdentifier},
	{reMeterNum, constants.MeterNumber, constants.ConfidenceMeterNumber},
}

// matchKeyValue splits "Label: value" lines on the first colon that is not a
// time separator. A colon squeezed between two digits ("14:23") delimits a
// time, not a key, so such lines fall through to the later tiers.
func matchKeyValue(line string) (Match, bool) {
	for i := 1; i < len(line); i++ {
		if line[i] != ':' {
			continue
		}
		if i+1 < len(line) && isDigit(line[i-1]) && isDigit(line[i+1]) {
			continue
		}
		return Match{
			Label: strings.TrimSpace(line[:i]),
			Value: strings.TrimSpace(line[i+1:]),
		}, true
	}
	return Match{}, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func matchUnit(line string) (Match, bool) {
	for _, p := range unitPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			return Match{Label: string(p.label), Value: m[1], Confidence: p.confidence}, true
		}
	}
	return Match{}, false
}

func matchIdentifier(line string) (Match, bool) {
	// Serial runs must contain at least one digit; otherwise every plain
	// uppercase word would be claimed as a serial number.
	for _, raw := range reSerial.FindAllString(line, -1) {
		clean := reAnySpace.ReplaceAllString(raw, "")
		if len(clean) >= 2 && strings.ContainsAny(clean, "0123456789") {
			return Match{
				Label:      string(constants.SerialNumber),
				Value:      clean,
				Confidence: constants.ConfidenceIdentifier,
			}, true
		}
	}
	for _, p := range identifierPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			clean := reAnySpace.ReplaceAllString(m[1], "")
			if len(clean) >= 2 {
				return Match{Label: string(p.label), Value: clean, Confidence: p.confidence}, true
			}
		}
	}
	return Match{}, false
}

// matchDateTime claims lines carrying a date (YYYY-MM-DD, DD/MM/YYYY and
// slash/dash variants) or a clock time. The value is the whole line: dates
// on labels usually come with surrounding context worth keeping.
func matchDateTime(line string) (Match, bool) {
	if !reDateTime.MatchString(line) {
		return Match{}, false
	}
	return Match{
		Label:      string(constants.DateTime),
		Value:      strings.TrimSpace(line),
		Confidence: constants.ConfidenceDateTime,
	}, true
}
