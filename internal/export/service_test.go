package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/utiliscan/meterscan/internal/entity"
	"github.com/utiliscan/meterscan/internal/repository"
	"github.com/utiliscan/meterscan/internal/textproc"
)

type stubReadings struct {
	rows   []*entity.Reading
	filter repository.ReadingsFilter
}

func (s *stubReadings) ReplaceForJob(context.Context, uuid.UUID, uuid.UUID, []textproc.Item) ([]*entity.Reading, error) {
	return nil, nil
}

func (s *stubReadings) ListByJob(context.Context, uuid.UUID) ([]*entity.Reading, error) {
	return nil, nil
}

func (s *stubReadings) ListReadings(_ context.Context, filter repository.ReadingsFilter) ([]*entity.Reading, error) {
	s.filter = filter
	return s.rows, nil
}

type stubJobs struct {
	files map[uuid.UUID]*entity.ScanFile
}

func (s *stubJobs) Enqueue(context.Context, uuid.UUID, uuid.UUID, string) (*entity.ScanJob, error) {
	return nil, nil
}
func (s *stubJobs) GetByID(context.Context, uuid.UUID) (*entity.ScanJob, error) { return nil, nil }
func (s *stubJobs) GetWithFile(_ context.Context, id uuid.UUID) (*entity.ScanJob, *entity.ScanFile, error) {
	return nil, s.files[id], nil
}
func (s *stubJobs) MarkRunning(context.Context, uuid.UUID) error { return nil }
func (s *stubJobs) FinishOCR(context.Context, uuid.UUID, repository.OCROutcome) error {
	return nil
}
func (s *stubJobs) FinishParse(context.Context, uuid.UUID, json.RawMessage, bool) error {
	return nil
}
func (s *stubJobs) FinishFailure(context.Context, uuid.UUID, string) error { return nil }

func TestExportReadingsXLSX(t *testing.T) {
	deviceID := uuid.New()
	jobID := uuid.New()
	created := time.Date(2024, 1, 15, 14, 23, 0, 0, time.UTC)

	readings := &stubReadings{rows: []*entity.Reading{
		{ID: uuid.New(), JobID: jobID, DeviceID: deviceID, ItemID: "a", Label: "Volume Reading", Value: "34.978", Confidence: 95, CreatedAt: created},
		{ID: uuid.New(), JobID: jobID, DeviceID: deviceID, ItemID: "b", Label: "Serial Number", Value: "A0K8660", Confidence: 90, CreatedAt: created},
	}}
	jobs := &stubJobs{files: map[uuid.UUID]*entity.ScanFile{
		jobID: {ID: uuid.New(), SourcePath: "/data/scans/label.jpg"},
	}}

	svc := NewService(readings, jobs, nil)
	out, err := svc.ExportReadingsXLSX(context.Background(), deviceID, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Readings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Recorded At", "Label", "Value", "Confidence", "Item ID", "Source File"}, rows[0])
	assert.Equal(t, "Volume Reading", rows[1][1])
	assert.Equal(t, "34.978", rows[1][2])
	assert.Equal(t, "/data/scans/label.jpg", rows[1][5])
	assert.Equal(t, "Serial Number", rows[2][1])
}

func TestExportDateWindowDefaultsToToday(t *testing.T) {
	readings := &stubReadings{}
	svc := NewService(readings, &stubJobs{files: map[uuid.UUID]*entity.ScanFile{}}, nil)

	from := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	_, err := svc.ExportReadingsXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), readings.filter.From)
	assert.False(t, readings.filter.To.IsZero())
	assert.Equal(t, 23, readings.filter.To.Hour())
}
