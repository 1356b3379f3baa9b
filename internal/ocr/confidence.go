package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Below this mean word confidence an image scan is flagged for review.
const ImageConfidenceThreshold = 0.6

// tsvConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (e *Engine) tsvConfidence(ctx context.Context, path string) (float32, []string, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, e.args(path, "tsv")...)
	if err != nil {
		return 0, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}

	lines := strings.Split(string(out), "\n")
	if len(lines) == 0 {
		return 0, nil, nil
	}

	// locate the conf column from the header; the text column comes after it
	confCol := -1
	header := strings.Split(strings.TrimRight(lines[0], "\r"), "\t")
	for i, name := range header {
		if name == "conf" {
			confCol = i
			break
		}
	}
	if confCol < 0 {
		return 0, []string{"tesseract TSV: no conf column"}, nil
	}

	var sum, n float64
	for _, ln := range lines[1:] {
		if len(ln) == 0 {
			continue
		}
		cols := strings.Split(ln, "\t")
		if len(cols) <= confCol {
			continue
		}
		confStr := cols[confCol]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil, nil
	}
	return float32(sum / n / 100.0), nil, nil
}
