package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utiliscan/meterscan/constants"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/entity"
	"github.com/utiliscan/meterscan/internal/ocr"
	"github.com/utiliscan/meterscan/internal/repository"
	"github.com/utiliscan/meterscan/internal/textproc"
)

type fakeFiles struct {
	rows map[uuid.UUID]*entity.ScanFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.ScanFile, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return row, nil
}

func (f *fakeFiles) GetByDeviceAndHash(context.Context, uuid.UUID, []byte) (*entity.ScanFile, error) {
	return nil, errors.New("not found")
}

func (f *fakeFiles) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*entity.ScanFile, error) {
	return nil, errors.New("unused")
}

func (f *fakeFiles) UpsertByHash(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*entity.ScanFile, bool, error) {
	return nil, false, errors.New("unused")
}

type fakeJobs struct {
	job      *entity.ScanJob
	file     *entity.ScanFile
	statuses []string
	outcome  *repository.OCROutcome
	items    json.RawMessage
	review   bool
	failure  string
}

func (f *fakeJobs) Enqueue(_ context.Context, fileID, deviceID uuid.UUID, format string) (*entity.ScanJob, error) {
	f.job = &entity.ScanJob{ID: uuid.New(), FileID: fileID, DeviceID: deviceID, Format: format}
	f.statuses = append(f.statuses, string(constants.JobStatusQueued))
	return f.job, nil
}

func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*entity.ScanJob, error) {
	return f.job, nil
}

func (f *fakeJobs) GetWithFile(context.Context, uuid.UUID) (*entity.ScanJob, *entity.ScanFile, error) {
	if f.job == nil {
		return nil, nil, errors.New("not found")
	}
	return f.job, f.file, nil
}

func (f *fakeJobs) MarkRunning(context.Context, uuid.UUID) error {
	f.statuses = append(f.statuses, string(constants.JobStatusRunning))
	return nil
}

func (f *fakeJobs) FinishOCR(_ context.Context, _ uuid.UUID, outcome repository.OCROutcome) error {
	status := string(constants.JobStatusOCROK)
	f.statuses = append(f.statuses, status)
	f.outcome = &outcome
	if f.job != nil {
		f.job.Status = &status
		f.job.OCRText = &outcome.Text
		f.job.NeedsReview = outcome.NeedsReview
	}
	return nil
}

func (f *fakeJobs) FinishParse(_ context.Context, _ uuid.UUID, items json.RawMessage, needsReview bool) error {
	f.statuses = append(f.statuses, string(constants.JobStatusParseOK))
	f.items = items
	f.review = needsReview
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.statuses = append(f.statuses, string(constants.JobStatusFailed))
	f.failure = message
	return nil
}

type fakeReadings struct {
	jobID    uuid.UUID
	deviceID uuid.UUID
	items    []textproc.Item
}

func (f *fakeReadings) ReplaceForJob(_ context.Context, jobID, deviceID uuid.UUID, items []textproc.Item) ([]*entity.Reading, error) {
	f.jobID, f.deviceID, f.items = jobID, deviceID, items
	out := make([]*entity.Reading, 0, len(items))
	for i, item := range items {
		out = append(out, &entity.Reading{
			ID: uuid.New(), JobID: jobID, DeviceID: deviceID,
			ItemID: item.ID, Label: item.Label, Value: item.Value,
			Confidence: item.Confidence, LineIndex: i,
		})
	}
	return out, nil
}

func (f *fakeReadings) ListByJob(context.Context, uuid.UUID) ([]*entity.Reading, error) {
	return nil, nil
}

func (f *fakeReadings) ListReadings(context.Context, repository.ReadingsFilter) ([]*entity.Reading, error) {
	return nil, nil
}

type fakeRecognizer struct {
	res ocr.RecognitionResult
	err error
}

func (f *fakeRecognizer) Recognize(context.Context, string) (ocr.RecognitionResult, error) {
	return f.res, f.err
}

func newFile(deviceID uuid.UUID, ext string) *entity.ScanFile {
	return &entity.ScanFile{
		ID:         uuid.New(),
		DeviceID:   deviceID,
		SourcePath: "/data/scans/label.jpg",
		Filename:   "label.jpg",
		FileExt:    ext,
	}
}

func TestOCRStageStoresRecognizedText(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "jpg")
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ScanFile{file.ID: file}}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{res: ocr.RecognitionResult{Text: "Volume 34.978 m3", Language: "eng", Confidence: 0.91}}

	stage := NewOCRStage(files, jobs, rec, nil)
	jobID, res, err := stage.Run(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, jobs.job.ID, jobID)
	assert.Equal(t, float32(0.91), res.Confidence)

	require.NotNil(t, jobs.outcome)
	assert.Equal(t, "Volume 34.978 m3", jobs.outcome.Text)
	assert.False(t, jobs.outcome.NeedsReview)
	assert.Equal(t, []string{"QUEUED", "RUNNING", "OCR_OK"}, jobs.statuses)
}

func TestOCRStageFlagsLowConfidence(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "png")
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ScanFile{file.ID: file}}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{res: ocr.RecognitionResult{Text: "blurry", Confidence: 0.42}}

	stage := NewOCRStage(files, jobs, rec, nil)
	_, _, err := stage.Run(context.Background(), file.ID)
	require.NoError(t, err)
	require.NotNil(t, jobs.outcome)
	assert.True(t, jobs.outcome.NeedsReview)
}

func TestOCRStageFailureMarksJobFailed(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "jpg")
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ScanFile{file.ID: file}}
	jobs := &fakeJobs{}
	rec := &fakeRecognizer{err: errors.New("tesseract: exit status 1")}

	stage := NewOCRStage(files, jobs, rec, nil)
	jobID, _, err := stage.Run(context.Background(), file.ID)
	require.Error(t, err)
	assert.Equal(t, jobs.job.ID, jobID)
	assert.Contains(t, jobs.failure, "tesseract")
	assert.Equal(t, "FAILED", jobs.statuses[len(jobs.statuses)-1])
}

func TestOCRStageRejectsUnsupportedExtension(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "pdf")
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ScanFile{file.ID: file}}
	jobs := &fakeJobs{}

	stage := NewOCRStage(files, jobs, &fakeRecognizer{}, nil)
	_, _, err := stage.Run(context.Background(), file.ID)
	require.Error(t, err)
	assert.Nil(t, jobs.job)
}

func TestParseStageStoresReadings(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "jpg")
	text := "MULTICAL® 21\nVolume 34.978 m3\nSerial: A0K8660"
	status := string(constants.JobStatusOCROK)
	jobs := &fakeJobs{
		job: &entity.ScanJob{
			ID: uuid.New(), FileID: file.ID, DeviceID: deviceID,
			Status: &status, OCRText: &text,
		},
		file: file,
	}
	readings := &fakeReadings{}

	stage := NewParseStage(nil, jobs, readings, textproc.NewClassifier())
	jobID, err := stage.Run(context.Background(), jobs.job.ID)
	require.NoError(t, err)
	assert.Equal(t, jobs.job.ID, jobID)

	require.Len(t, readings.items, 3)
	assert.Equal(t, jobs.job.ID, readings.jobID)
	assert.Equal(t, deviceID, readings.deviceID)

	var stored []textproc.Item
	require.NoError(t, json.Unmarshal(jobs.items, &stored))
	assert.Equal(t, readings.items, stored)
	assert.Equal(t, "PARSE_OK", jobs.statuses[len(jobs.statuses)-1])
}

func TestParseStageRequiresRecognizedText(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "jpg")
	status := string(constants.JobStatusRunning)
	jobs := &fakeJobs{
		job:  &entity.ScanJob{ID: uuid.New(), FileID: file.ID, DeviceID: deviceID, Status: &status},
		file: file,
	}

	stage := NewParseStage(nil, jobs, &fakeReadings{}, nil)
	_, err := stage.Run(context.Background(), jobs.job.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
}

func TestProcessorRunsBothStages(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "jpg")
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ScanFile{file.ID: file}}
	jobs := &fakeJobs{file: file}
	readings := &fakeReadings{}
	rec := &fakeRecognizer{res: ocr.RecognitionResult{Text: "Meter Reading: 00735", Confidence: 0.88}}

	p := NewProcessor(nil,
		NewOCRStage(files, jobs, rec, nil),
		NewParseStage(nil, jobs, readings, nil),
	)
	jobID, err := p.ProcessFile(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, jobs.job.ID, jobID)
	require.Len(t, readings.items, 1)
	assert.Equal(t, "Meter Reading", readings.items[0].Label)
	assert.Equal(t, "00735", readings.items[0].Value)
}

func TestProcessFileLogsDeviceFromContext(t *testing.T) {
	deviceID := uuid.New()
	file := newFile(deviceID, "jpg")
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ScanFile{file.ID: file}}
	jobs := &fakeJobs{file: file}
	rec := &fakeRecognizer{res: ocr.RecognitionResult{Text: "Meter Reading: 00735", Confidence: 0.88}}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewProcessor(logger,
		NewOCRStage(files, jobs, rec, logger),
		NewParseStage(logger, jobs, &fakeReadings{}, nil),
	)

	ctx := common.WithDeviceID(context.Background(), deviceID.String())
	_, err := p.ProcessFile(ctx, file.ID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "device_id="+deviceID.String())
}
