package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	calls [][]string
	out   map[string][]byte // keyed by last arg ("" for text mode, "tsv" for tsv mode)
	err   error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	key := ""
	if args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return s.out[key], nil, nil
}

func TestRecognizeBuildsTesseractArgs(t *testing.T) {
	r := &stubRunner{out: map[string][]byte{"": []byte("MULTICAL 21")}}
	e := NewEngine(Config{PreserveSpaces: true}, nil)
	e.runner = r

	res, err := e.Recognize(context.Background(), "/tmp/label.png")
	require.NoError(t, err)
	assert.Equal(t, "MULTICAL 21", res.Text)
	assert.Equal(t, "eng", res.Language)

	require.Len(t, r.calls, 1)
	call := strings.Join(r.calls[0], " ")
	assert.Contains(t, call, "tesseract /tmp/label.png stdout -l eng")
	assert.Contains(t, call, "--psm 6")
	assert.Contains(t, call, "tessedit_char_whitelist="+DefaultCharWhitelist)
	assert.Contains(t, call, "preserve_interword_spaces=1")
}

func TestRecognizeEngineFailure(t *testing.T) {
	r := &stubRunner{err: errors.New("exit status 1")}
	e := NewEngine(Config{}, nil)
	e.runner = r

	_, err := e.Recognize(context.Background(), "/tmp/label.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestRecognizeTSVConfidence(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tMULTICAL\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\t21\n" +
		"2\t1\t1\t0\t0\t0\t0\t0\t10\t10\t-1\t\n"
	r := &stubRunner{out: map[string][]byte{
		"":    []byte("MULTICAL 21"),
		"tsv": []byte(tsv),
	}}
	e := NewEngine(Config{EnableTSVConfidence: true}, nil)
	e.runner = r

	res, err := e.Recognize(context.Background(), "/tmp/label.png")
	require.NoError(t, err)
	assert.InDelta(t, 0.80, res.Confidence, 0.001)
}

type hangingRunner struct{}

func (hangingRunner) Run(ctx context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	<-ctx.Done()
	return nil, nil, ctx.Err()
}

func TestRecognizeHonorsTimeout(t *testing.T) {
	e := NewEngine(Config{Timeout: 10 * time.Millisecond}, nil)
	e.runner = hangingRunner{}

	_, err := e.Recognize(context.Background(), "/tmp/label.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngineDefaults(t *testing.T) {
	e := NewEngine(Config{}, nil)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
	assert.Equal(t, "eng", e.cfg.Language)
	assert.Equal(t, 6, e.cfg.PSM)
	assert.Equal(t, DefaultCharWhitelist, e.cfg.CharWhitelist)
}
