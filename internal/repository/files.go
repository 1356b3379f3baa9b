package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/gen/ent"
	entfile "github.com/utiliscan/meterscan/gen/ent/scanfile"
	"github.com/utiliscan/meterscan/internal/entity"
)

type ScanFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanFile, error)
	GetByDeviceAndHash(ctx context.Context, deviceID uuid.UUID, hash []byte) (*entity.ScanFile, error)
	Create(ctx context.Context, deviceID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.ScanFile, error)
	UpsertByHash(ctx context.Context, deviceID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.ScanFile, bool, error)
}

type scanFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewScanFileRepository(entc *ent.Client, logger *slog.Logger) ScanFileRepository {
	return &scanFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *scanFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScanFile, error) {
	row, err := r.ent.ScanFile.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get scan file", "file_id", id, "error", err)
		return nil, err
	}
	return toScanFile(row), nil
}

func (r *scanFileRepo) GetByDeviceAndHash(ctx context.Context, deviceID uuid.UUID, hash []byte) (*entity.ScanFile, error) {
	row, err := r.ent.ScanFile.Query().
		Where(
			entfile.DeviceID(deviceID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toScanFile(row), nil
}

func (r *scanFileRepo) Create(ctx context.Context, deviceID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.ScanFile, error) {
	row, err := r.ent.ScanFile.Create().
		SetDeviceID(deviceID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scan file", "device_id", deviceID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return toScanFile(row), nil
}

// UpsertByHash returns the existing row when the device already has a file
// with this content hash. The second return reports whether it was a duplicate.
func (r *scanFileRepo) UpsertByHash(ctx context.Context, deviceID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.ScanFile, bool, error) {
	if existing, err := r.GetByDeviceAndHash(ctx, deviceID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, deviceID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert scan file by hash", "device_id", deviceID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
