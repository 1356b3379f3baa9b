package textproc

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/constants"
)

// Item is one labeled field extracted from a line of recognized text.
type Item struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
}

// Classifier applies the ordered matcher chain to each non-blank line.
// First match wins; the generic fallback guarantees exactly one item per
// line, so classification is total and never fails.
type Classifier struct {
	// RandInt returns a value in [0, n). The key:value and generic tiers
	// draw their confidence from it on every call; swap in a fixed source
	// to make scoring deterministic.
	RandInt func(n int) int

	chain []matcherFunc
}

func NewClassifier() *Classifier {
	c := &Classifier{RandInt: rand.IntN}
	c.chain = []matcherFunc{
		c.matchKeyValue,
		matchUnit,
		matchIdentifier,
		matchDateTime,
	}
	return c
}

// Classify runs the matcher chain over every non-blank line of normalized
// text and returns the items in line order, each with a fresh id.
func (c *Classifier) Classify(text string) []Item {
	var items []Item
	n := 0
	for line := range Lines(text) {
		n++
		items = append(items, c.classifyLine(line, n))
	}
	return items
}

func (c *Classifier) classifyLine(line string, n int) Item {
	for _, match := range c.chain {
		if m, ok := match(line); ok {
			return Item{
				ID:         uuid.NewString(),
				Label:      m.Label,
				Value:      m.Value,
				Confidence: m.Confidence,
			}
		}
	}
	return Item{
		ID:         uuid.NewString(),
		Label:      fmt.Sprintf("Line %d", n),
		Value:      line,
		Confidence: c.between(constants.GenericConfidenceMin, constants.GenericConfidenceMax),
	}
}

func (c *Classifier) matchKeyValue(line string) (Match, bool) {
	m, ok := matchKeyValue(line)
	if !ok {
		return Match{}, false
	}
	m.Confidence = c.between(constants.KeyValueConfidenceMin, constants.KeyValueConfidenceMax)
	return m, true
}

// between returns a confidence in [lo, hi).
func (c *Classifier) between(lo, hi int) int {
	return lo + c.RandInt(hi-lo)
}
