package extract

import (
	"context"
	"time"
)

// TextRecognizer is Stage 1: image bytes -> raw recognized text.
// The engine call is the only potentially long-running step of a scan;
// callers wanting a timeout wrap ctx around it.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte, fileName string) (RecognizedText, error)
}

type RecognizedText struct {
	Text       string
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32 // engine word confidence in 0..1, 0 when unavailable
}
