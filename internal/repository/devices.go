package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/gen/ent"
	entdevice "github.com/utiliscan/meterscan/gen/ent/device"
	"github.com/utiliscan/meterscan/internal/entity"
)

type DeviceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)
	CreateDevice(ctx context.Context, name, location, meterType string) (*entity.Device, error)
	ListDevices(ctx context.Context) ([]*entity.Device, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type deviceRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDeviceRepository(entc *ent.Client, logger *slog.Logger) DeviceRepository {
	return &deviceRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *deviceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	row, err := r.ent.Device.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get device", "device_id", id, "error", err)
		return nil, err
	}
	return toDevice(row), nil
}

func (r *deviceRepo) CreateDevice(ctx context.Context, name, location, meterType string) (*entity.Device, error) {
	row, err := r.ent.Device.Create().
		SetName(name).
		SetLocation(location).
		SetMeterType(meterType).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create device", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("created device", "device_id", row.ID, "name", name)
	return toDevice(row), nil
}

func (r *deviceRepo) ListDevices(ctx context.Context) ([]*entity.Device, error) {
	rows, err := r.ent.Device.Query().
		Order(ent.Asc(entdevice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list devices", "error", err)
		return nil, err
	}
	return toDevices(rows), nil
}

func (r *deviceRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.ent.Device.Query().
		Where(entdevice.ID(id)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check device existence", "device_id", id, "error", err)
		return false, err
	}
	return ok, nil
}
