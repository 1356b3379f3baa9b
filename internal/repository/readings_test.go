package repository

import (
	"context"
	"crypto/sha256"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utiliscan/meterscan/gen/ent"
	"github.com/utiliscan/meterscan/internal/entity"
	"github.com/utiliscan/meterscan/internal/textproc"
)

func newTestClient(t *testing.T) (*ent.Client, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "meterscan.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client, logger
}

func seedJob(t *testing.T, client *ent.Client, logger *slog.Logger) (*entity.Device, *entity.ScanJob) {
	t.Helper()
	ctx := context.Background()

	dev, err := NewDeviceRepository(client, logger).CreateDevice(ctx, "kitchen meter", "basement", "water")
	require.NoError(t, err)

	hash := sha256.Sum256([]byte("label photo bytes"))
	file, err := NewScanFileRepository(client, logger).Create(ctx, dev.ID, "/photos/label.jpg", "label.jpg", ".jpg", 42, hash[:], time.Now())
	require.NoError(t, err)

	job, err := NewScanJobRepository(client, logger).Enqueue(ctx, file.ID, dev.ID, "IMAGE")
	require.NoError(t, err)
	return dev, job
}

func TestListReadingsLabelFilter(t *testing.T) {
	client, logger := newTestClient(t)
	ctx := context.Background()
	dev, job := seedJob(t, client, logger)

	readings := NewReadingRepository(client, logger)
	items := []textproc.Item{
		{ID: "model", Label: "Model", Value: "MULTICAL 21", Confidence: 98},
		{ID: "volume-reading", Label: "Volume Reading", Value: "34.978 m3", Confidence: 95},
		{ID: "line-3", Label: "Line 3", Value: "DK-8660", Confidence: 80},
	}
	_, err := readings.ReplaceForJob(ctx, job.ID, dev.ID, items)
	require.NoError(t, err)

	got, err := readings.ListReadings(ctx, ReadingsFilter{DeviceID: dev.ID, Label: "Volume Reading"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Volume Reading", got[0].Label)
	assert.Equal(t, "34.978 m3", got[0].Value)
	assert.Equal(t, 95, got[0].Confidence)

	all, err := readings.ListReadings(ctx, ReadingsFilter{DeviceID: dev.ID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, r := range all {
		assert.Equal(t, i, r.LineIndex)
	}

	future, err := readings.ListReadings(ctx, ReadingsFilter{DeviceID: dev.ID, From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestReplaceForJobIsIdempotent(t *testing.T) {
	client, logger := newTestClient(t)
	ctx := context.Background()
	dev, job := seedJob(t, client, logger)

	readings := NewReadingRepository(client, logger)
	first := []textproc.Item{
		{ID: "meter-number", Label: "Meter Number", Value: "70260094", Confidence: 92},
		{ID: "line-2", Label: "Line 2", Value: "Qp 1,6", Confidence: 74},
	}
	_, err := readings.ReplaceForJob(ctx, job.ID, dev.ID, first)
	require.NoError(t, err)

	second := []textproc.Item{
		{ID: "meter-number", Label: "Meter Number", Value: "70260094", Confidence: 92},
	}
	_, err = readings.ReplaceForJob(ctx, job.ID, dev.ID, second)
	require.NoError(t, err)

	got, err := readings.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Meter Number", got[0].Label)
}
