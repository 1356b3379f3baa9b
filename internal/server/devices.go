package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/utiliscan/meterscan/gen/proto/meterscan/v1"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/entity"
	"github.com/utiliscan/meterscan/internal/repository"
)

type DevicesService struct {
	v1.UnimplementedDevicesServiceServer
	repo   repository.DeviceRepository
	logger *slog.Logger
}

func NewDevicesService(repo repository.DeviceRepository, logger *slog.Logger) *DevicesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DevicesService{repo: repo, logger: logger}
}

// CreateDevice registers a new meter/device.
func (s *DevicesService) CreateDevice(ctx context.Context, req *v1.CreateDeviceRequest) (*v1.CreateDeviceResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	d, err := s.repo.CreateDevice(ctx, name, req.GetLocation(), req.GetMeterType())
	if err != nil {
		return nil, common.InternalError("create device failed")
	}
	return &v1.CreateDeviceResponse{Device: toPBDevice(d)}, nil
}

// ListDevices lists all registered devices.
func (s *DevicesService) ListDevices(ctx context.Context, _ *v1.ListDevicesRequest) (*v1.ListDevicesResponse, error) {
	dlist, err := s.repo.ListDevices(ctx)
	if err != nil {
		return nil, common.InternalError("list devices failed")
	}
	out := make([]*v1.Device, 0, len(dlist))
	for _, d := range dlist {
		out = append(out, toPBDevice(d))
	}
	return &v1.ListDevicesResponse{Devices: out}, nil
}

func toPBDevice(d *entity.Device) *v1.Device {
	return &v1.Device{
		Id:        d.ID.String(),
		Name:      d.Name,
		Location:  d.Location,
		MeterType: d.MeterType,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
