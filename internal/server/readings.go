package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utiliscan/meterscan/constants"
	v1 "github.com/utiliscan/meterscan/gen/proto/meterscan/v1"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/export"
	"github.com/utiliscan/meterscan/internal/repository"
)

type ReadingsService struct {
	v1.UnimplementedReadingsServiceServer
	repo     repository.ReadingRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewReadingsService(repo repository.ReadingRepository, exporter *export.Service, logger *slog.Logger) *ReadingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadingsService{repo: repo, exporter: exporter, logger: logger}
}

func (s *ReadingsService) ListReadings(ctx context.Context, req *v1.ListReadingsRequest) (*v1.ListReadingsResponse, error) {
	deviceID, err := parseUUIDField(req.GetDeviceId(), "device_id")
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(req.GetLabel())
	if canon, ok := constants.IsCanonical(label); ok {
		// accept any casing for taxonomy labels
		label = string(canon)
	}
	filter := repository.ReadingsFilter{
		DeviceID: deviceID,
		Label:    label,
	}
	if filter.From, err = parseDateField(req.GetFromDate(), "from_date"); err != nil {
		return nil, err
	}
	if filter.To, err = parseDateField(req.GetToDate(), "to_date"); err != nil {
		return nil, err
	}

	readings, err := s.repo.ListReadings(ctx, filter)
	if err != nil {
		s.logger.Error("list readings failed", "device_id", deviceID, "err", err)
		return nil, common.InternalError("list readings failed")
	}

	out := make([]*v1.Reading, 0, len(readings))
	for _, r := range readings {
		out = append(out, &v1.Reading{
			Id:         r.ID.String(),
			JobId:      r.JobID.String(),
			DeviceId:   r.DeviceID.String(),
			ItemId:     r.ItemID,
			Label:      r.Label,
			Value:      r.Value,
			Confidence: int32(r.Confidence),
			LineIndex:  int32(r.LineIndex),
			RecordedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &v1.ListReadingsResponse{Readings: out}, nil
}

func (s *ReadingsService) ExportReadings(ctx context.Context, req *v1.ExportReadingsRequest) (*v1.ExportReadingsResponse, error) {
	deviceID, err := parseUUIDField(req.GetDeviceId(), "device_id")
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if from, err := parseDateField(req.GetFromDate(), "from_date"); err != nil {
		return nil, err
	} else if !from.IsZero() {
		fromPtr = &from
	}
	if to, err := parseDateField(req.GetToDate(), "to_date"); err != nil {
		return nil, err
	} else if !to.IsZero() {
		toPtr = &to
	}

	xlsx, err := s.exporter.ExportReadingsXLSX(ctx, deviceID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "device_id", deviceID, "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &v1.ExportReadingsResponse{Xlsx: xlsx}, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func parseDateField(raw, field string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, common.InvalidArgumentErrorf("%s must be YYYY-MM-DD", field)
	}
	return t, nil
}
