package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/utiliscan/meterscan/internal/textproc"
)

// Result is the outcome of one extraction call. Callers always receive a
// well-formed Result; engine failures surface as Success=false with a
// message, never as a partial item list.
type Result struct {
	Success bool            `json:"success"`
	Text    string          `json:"text,omitempty"`
	Items   []textproc.Item `json:"items,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Service ties the recognition engine to the extraction core:
// recognize -> normalize -> classify per line -> assemble.
type Service struct {
	recognizer TextRecognizer
	classifier *textproc.Classifier
	logger     *slog.Logger
}

func NewService(rec TextRecognizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		recognizer: rec,
		classifier: textproc.NewClassifier(),
		logger:     logger,
	}
}

// Extract runs recognition over an uploaded label photo and parses the text
// into labeled items. All state is local to the call, so concurrent
// extractions never interfere.
func (s *Service) Extract(ctx context.Context, image []byte, fileName string) Result {
	rec, err := s.recognizer.Recognize(ctx, image, fileName)
	if err != nil {
		s.logger.Error("recognition failed", "file", fileName, "error", err)
		return Result{Success: false, Error: err.Error()}
	}
	for _, w := range rec.Warnings {
		if w != "" {
			s.logger.Warn("recognition warning", "file", fileName, "warning", w)
		}
	}

	text := textproc.Normalize(rec.Text)
	if strings.TrimSpace(text) == "" {
		// nothing recognized is a valid outcome, not a failure
		return Result{Success: true, Text: ""}
	}

	items := s.classifier.Classify(text)
	s.logger.Info("extraction ok", "file", fileName, "lines", len(items), "bytes", len(text))
	return Result{Success: true, Text: text, Items: items}
}
