package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/utiliscan/meterscan/constants"
	"github.com/utiliscan/meterscan/internal/ocr"
)

// OCRAdapter bridges the byte-oriented TextRecognizer contract onto the
// file-oriented tesseract engine.
type OCRAdapter struct {
	engine *ocr.Engine
	logger *slog.Logger
}

func NewOCRAdapter(e *ocr.Engine, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{engine: e, logger: logger}
}

func (a *OCRAdapter) Recognize(ctx context.Context, image []byte, fileName string) (RecognizedText, error) {
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if constants.MapExtToFormat(ext) == "" {
		return RecognizedText{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	tmpDir, err := os.MkdirTemp("", "ms-scan-*")
	if err != nil {
		return RecognizedText{}, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			a.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", rerr)
		}
	}()

	path := filepath.Join(tmpDir, "label."+ext)
	if err := os.WriteFile(path, image, 0o600); err != nil {
		return RecognizedText{}, err
	}

	r, err := a.engine.Recognize(ctx, path)
	return RecognizedText{
		Text:       r.Text,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}, err
}
