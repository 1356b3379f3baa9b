package textproc

import (
	"regexp"
	"strings"
)

var (
	// collapse horizontal whitespace only; newlines delimit logical lines
	// and must survive for the splitter
	reHorizSpace = regexp.MustCompile(`[ \t\f\v]+`)
	reNonPrint   = regexp.MustCompile("[^\x20-\x7E\n\r\t]")
	reLowerUpper = regexp.MustCompile(`([a-z])([A-Z])`)
	reAcronym    = regexp.MustCompile(`([A-Z]{2,})([A-Z][a-z])`)
)

// Normalize cleans raw recognized text: collapses whitespace runs to single
// spaces (keeping line breaks), strips non-printable characters, and repairs
// camel-case-like OCR artifacts ("aB" -> "a B", "ABCd" -> "ABC d").
// Total and idempotent; returns "" for empty input.
//
// The case-boundary repair is best-effort and can misfire on legitimate
// mixed-case tokens, which is why it lives here and nowhere else.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reHorizSpace.ReplaceAllString(s, " ")
	s = reNonPrint.ReplaceAllString(s, "")
	s = reLowerUpper.ReplaceAllString(s, "$1 $2")
	s = reAcronym.ReplaceAllString(s, "$1 $2")
	return strings.TrimSpace(s)
}
