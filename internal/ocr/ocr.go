package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// DefaultCharWhitelist restricts recognition to the characters that occur on
// meter faceplates and labels. Everything else tends to be lens glare.
const DefaultCharWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz.,-: /"

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language    string // default "eng"
	TessdataDir string

	CharWhitelist  string // default DefaultCharWhitelist; "-" disables
	PreserveSpaces bool   // keep interword spacing so column layouts survive
	PSM            int    // default 6: single uniform block of text
	OEM            int    // 1 = LSTM; leave 0 to use tesseract's default

	Timeout time.Duration // bound on a single recognition run; 0 = no bound

	EnableTSVConfidence bool
}

type RecognitionResult struct {
	Text       string
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32 // mean word confidence in 0..1, 0 when unavailable
}

// Engine runs tesseract over a label photo and returns the raw recognized
// text. It does not normalize or interpret the text; that is the parser's job.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.CharWhitelist == "" {
		cfg.CharWhitelist = DefaultCharWhitelist
	}
	if cfg.PSM == 0 {
		cfg.PSM = 6
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize OCRs a single image file.
func (e *Engine) Recognize(ctx context.Context, path string) (RecognitionResult, error) {
	start := time.Now()
	e.logger.Debug("starting recognition", "path", path, "lang", e.cfg.Language, "psm", e.cfg.PSM)

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, e.args(path, "")...)
	if err != nil {
		return RecognitionResult{Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	res := RecognitionResult{
		Text:     string(out),
		Language: e.cfg.Language,
	}
	if e.cfg.EnableTSVConfidence {
		if conf, warns, cerr := e.tsvConfidence(ctx, path); cerr == nil {
			res.Confidence = conf
			res.Warnings = append(res.Warnings, warns...)
		} else {
			res.Warnings = append(res.Warnings, cerr.Error())
		}
	}
	res.Duration = time.Since(start)
	return res, nil
}

// args builds the tesseract command line. outputMode is "" for plain text or
// "tsv" for the confidence pass.
func (e *Engine) args(path, outputMode string) []string {
	args := []string{path, "stdout", "-l", e.cfg.Language}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	if wl := e.cfg.CharWhitelist; wl != "" && wl != "-" && validWhitelist(wl) {
		args = append(args, "-c", "tessedit_char_whitelist="+wl)
	}
	if e.cfg.PreserveSpaces {
		args = append(args, "-c", "preserve_interword_spaces=1")
	}
	if outputMode != "" {
		args = append(args, outputMode)
	}
	return args
}

// sanity check on the whitelist so a stray "=" cannot break the -c flag
func validWhitelist(wl string) bool {
	return !strings.ContainsAny(wl, "=\n")
}
