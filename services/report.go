package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/types/responses"
	"github.com/swy0123/stablepath/upstream"
)

// ReportService asks the general-analysis model for a short assessment of a
// transfer scenario, optionally grounded on a previously computed quote.
type ReportService interface {
	CreateReport(ctx context.Context, req *requests.CreateReportRequest) (*responses.Response[*responses.ReportResponseData], error)
}

func NewReportService(cfg *config.Config, gemini upstream.GeminiClient, log *zap.Logger) ReportService {
	return &reportService{
		service: service{cfg: cfg, gemini: gemini, log: log},
	}
}

type reportService struct {
	service
}

func (s *reportService) CreateReport(ctx context.Context, req *requests.CreateReportRequest) (*responses.Response[*responses.ReportResponseData], error) {
	prompt := fmt.Sprintf("Analysis topic requested by the user: %s\n\n", req.Query)
	if len(req.Quote) > 0 {
		prompt += fmt.Sprintf("Supporting quote figures (reference only):\n%s\n\n", string(req.Quote))
	}
	prompt += "Based on the above, briefly assess the suitability of this stablecoin transfer and any caveats.\n" +
		"- Keep it to 3-4 sentences, no padding.\n" +
		"- Mention current opportunities and risks.\n"

	analysis, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &responses.Response[*responses.ReportResponseData]{
		Status: "successful",
		Data: &responses.ReportResponseData{
			Query:    req.Query,
			Analysis: analysis,
			Model:    s.gemini.Model(),
		},
	}, nil
}
