package server

import (
	"context"
	"log/slog"

	v1 "github.com/utiliscan/meterscan/gen/proto/meterscan/v1"
	"github.com/utiliscan/meterscan/internal/common"
	"github.com/utiliscan/meterscan/internal/extract"
)

type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	svc    *extract.Service
	logger *slog.Logger
}

func NewExtractionService(svc *extract.Service, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{svc: svc, logger: logger}
}

// ExtractText recognizes and parses one uploaded image. Nothing is persisted;
// this is the stateless one-shot surface.
func (s *ExtractionService) ExtractText(ctx context.Context, req *v1.ExtractTextRequest) (*v1.ExtractTextResponse, error) {
	if len(req.GetImage()) == 0 {
		return nil, common.InvalidArgumentError("image is required")
	}

	res := s.svc.Extract(ctx, req.GetImage(), req.GetFileName())

	out := &v1.ExtractTextResponse{
		Success: res.Success,
		Text:    res.Text,
		Error:   res.Error,
		Items:   make([]*v1.Item, 0, len(res.Items)),
	}
	for _, item := range res.Items {
		out.Items = append(out.Items, &v1.Item{
			Id:         item.ID,
			Label:      item.Label,
			Value:      item.Value,
			Confidence: int32(item.Confidence),
		})
	}
	return out, nil
}
