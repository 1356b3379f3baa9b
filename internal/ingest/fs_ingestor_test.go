package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utiliscan/meterscan/internal/entity"
)

type fakeDevices struct {
	known map[uuid.UUID]bool
}

func (f *fakeDevices) GetByID(context.Context, uuid.UUID) (*entity.Device, error) { return nil, nil }
func (f *fakeDevices) CreateDevice(context.Context, string, string, string) (*entity.Device, error) {
	return nil, nil
}
func (f *fakeDevices) ListDevices(context.Context) ([]*entity.Device, error) { return nil, nil }
func (f *fakeDevices) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeFileRepo struct {
	byHash map[string]*entity.ScanFile
}

func (f *fakeFileRepo) GetByID(context.Context, uuid.UUID) (*entity.ScanFile, error) {
	return nil, nil
}

func (f *fakeFileRepo) GetByDeviceAndHash(_ context.Context, _ uuid.UUID, hash []byte) (*entity.ScanFile, error) {
	if row, ok := f.byHash[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, os.ErrNotExist
}

func (f *fakeFileRepo) Create(_ context.Context, deviceID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.ScanFile, error) {
	row := &entity.ScanFile{
		ID: uuid.New(), DeviceID: deviceID, SourcePath: sourcePath,
		ContentHash: hash, Filename: filename, FileExt: ext,
		FileSize: size, UploadedAt: uploadedAt,
	}
	f.byHash[hex.EncodeToString(hash)] = row
	return row, nil
}

func (f *fakeFileRepo) UpsertByHash(ctx context.Context, deviceID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.ScanFile, bool, error) {
	if row, err := f.GetByDeviceAndHash(ctx, deviceID, hash); err == nil {
		return row, true, nil
	}
	row, err := f.Create(ctx, deviceID, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPathRegistersFile(t *testing.T) {
	deviceID := uuid.New()
	dir := t.TempDir()
	path := writeFile(t, dir, "meter.jpg", "fake image bytes")

	ing := NewFSIngestor(
		&fakeDevices{known: map[uuid.UUID]bool{deviceID: true}},
		&fakeFileRepo{byHash: map[string]*entity.ScanFile{}},
		nil,
	)
	res, err := ing.IngestPath(context.Background(), deviceID, path)
	require.NoError(t, err)

	assert.False(t, res.Deduplicated)
	assert.Equal(t, "jpg", res.FileExt)
	assert.NotEmpty(t, res.FileID)

	sum := sha256.Sum256([]byte("fake image bytes"))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	deviceID := uuid.New()
	dir := t.TempDir()
	first := writeFile(t, dir, "a.jpg", "same bytes")
	second := writeFile(t, dir, "b.jpg", "same bytes")

	ing := NewFSIngestor(
		&fakeDevices{known: map[uuid.UUID]bool{deviceID: true}},
		&fakeFileRepo{byHash: map[string]*entity.ScanFile{}},
		nil,
	)
	r1, err := ing.IngestPath(context.Background(), deviceID, first)
	require.NoError(t, err)
	r2, err := ing.IngestPath(context.Background(), deviceID, second)
	require.NoError(t, err)

	assert.False(t, r1.Deduplicated)
	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.FileID, r2.FileID)
}

func TestIngestPathRejectsUnknownDevice(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "meter.jpg", "bytes")

	ing := NewFSIngestor(
		&fakeDevices{known: map[uuid.UUID]bool{}},
		&fakeFileRepo{byHash: map[string]*entity.ScanFile{}},
		nil,
	)
	_, err := ing.IngestPath(context.Background(), uuid.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device not found")
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	deviceID := uuid.New()
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not an image")

	ing := NewFSIngestor(
		&fakeDevices{known: map[uuid.UUID]bool{deviceID: true}},
		&fakeFileRepo{byHash: map[string]*entity.ScanFile{}},
		nil,
	)
	_, err := ing.IngestPath(context.Background(), deviceID, path)
	require.Error(t, err)
}

func TestIngestDirectoryWalksAndSkipsHidden(t *testing.T) {
	deviceID := uuid.New()
	dir := t.TempDir()
	writeFile(t, dir, "one.jpg", "one")
	writeFile(t, dir, "two.png", "two")
	writeFile(t, dir, "skip.txt", "not an image")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".cache"), 0o755))
	writeFile(t, filepath.Join(dir, ".cache"), "hidden.jpg", "hidden")

	ing := NewFSIngestor(
		&fakeDevices{known: map[uuid.UUID]bool{deviceID: true}},
		&fakeFileRepo{byHash: map[string]*entity.ScanFile{}},
		nil,
	)
	results, stats, err := ing.IngestDirectory(context.Background(), deviceID, dir, true)
	require.NoError(t, err)

	assert.Len(t, results, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(
		&fakeDevices{known: map[uuid.UUID]bool{}},
		&fakeFileRepo{byHash: map[string]*entity.ScanFile{}},
		nil,
	)
	_, _, err := ing.IngestDirectory(context.Background(), uuid.New(), "  ", true)
	require.Error(t, err)
}
