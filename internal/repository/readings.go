package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/gen/ent"
	entreading "github.com/utiliscan/meterscan/gen/ent/reading"
	"github.com/utiliscan/meterscan/internal/entity"
	"github.com/utiliscan/meterscan/internal/textproc"
)

// ReadingsFilter narrows ListReadings. Zero values mean "no bound".
type ReadingsFilter struct {
	DeviceID uuid.UUID
	Label    string
	From     time.Time
	To       time.Time
}

type ReadingRepository interface {
	ReplaceForJob(ctx context.Context, jobID, deviceID uuid.UUID, items []textproc.Item) ([]*entity.Reading, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Reading, error)
	ListReadings(ctx context.Context, filter ReadingsFilter) ([]*entity.Reading, error)
}

type readingRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReadingRepository(entc *ent.Client, logger *slog.Logger) ReadingRepository {
	return &readingRepo{
		ent:    entc,
		logger: logger,
	}
}

// ReplaceForJob stores the extracted items for a job, replacing any rows a
// previous run left behind so reprocessing a file stays idempotent.
func (r *readingRepo) ReplaceForJob(ctx context.Context, jobID, deviceID uuid.UUID, items []textproc.Item) ([]*entity.Reading, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to open transaction", "job_id", jobID, "error", err)
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Reading.Delete().
		Where(entreading.JobID(jobID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear previous readings", "job_id", jobID, "error", err)
		return nil, err
	}

	builders := make([]*ent.ReadingCreate, 0, len(items))
	for i, item := range items {
		builders = append(builders, tx.Reading.Create().
			SetJobID(jobID).
			SetDeviceID(deviceID).
			SetItemID(item.ID).
			SetLabel(item.Label).
			SetValue(item.Value).
			SetConfidence(item.Confidence).
			SetLineIndex(i))
	}
	rows, err := tx.Reading.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert readings", "job_id", jobID, "count", len(items), "error", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		r.logger.Error("failed to commit readings", "job_id", jobID, "error", err)
		return nil, err
	}
	r.logger.Info("stored readings", "job_id", jobID, "count", len(rows))
	return toReadings(rows), nil
}

func (r *readingRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.Reading, error) {
	rows, err := r.ent.Reading.Query().
		Where(entreading.JobID(jobID)).
		Order(ent.Asc(entreading.FieldLineIndex)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list readings by job", "job_id", jobID, "error", err)
		return nil, err
	}
	return toReadings(rows), nil
}

func (r *readingRepo) ListReadings(ctx context.Context, filter ReadingsFilter) ([]*entity.Reading, error) {
	q := r.ent.Reading.Query()
	if filter.DeviceID != uuid.Nil {
		q = q.Where(entreading.DeviceID(filter.DeviceID))
	}
	if filter.Label != "" {
		q = q.Where(entreading.LabelEQ(filter.Label))
	}
	if !filter.From.IsZero() {
		q = q.Where(entreading.CreatedAtGTE(filter.From))
	}
	if !filter.To.IsZero() {
		q = q.Where(entreading.CreatedAtLTE(filter.To))
	}
	rows, err := q.
		Order(ent.Asc(entreading.FieldCreatedAt), ent.Asc(entreading.FieldLineIndex)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list readings", "device_id", filter.DeviceID, "error", err)
		return nil, err
	}
	return toReadings(rows), nil
}
