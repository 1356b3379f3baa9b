package textproc

import (
	"iter"
	"slices"
	"strings"
)

// Lines yields the non-blank, trimmed lines of normalized text in original
// order. The sequence is finite and restartable.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}

// SplitLines materializes Lines into a slice.
func SplitLines(text string) []string {
	return slices.Collect(Lines(text))
}
