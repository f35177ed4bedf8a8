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

const trendsSystemPrompt = "You are a research assistant. Return a concise, up-to-date trend brief for the given query. " +
	"Focus on recent developments (last 30-90 days), practical implications for remittance and stablecoin trading, " +
	"and notable risks (liquidity, regulation). Keep it within 6-10 bullet lines."

// TrendsService asks the web-search-augmented model for a recent-developments
// brief with citations.
type TrendsService interface {
	CreateTrends(ctx context.Context, req *requests.CreateTrendsRequest) (*responses.Response[*responses.TrendsResponseData], error)
}

func NewTrendsService(cfg *config.Config, perplexity upstream.PerplexityClient, log *zap.Logger) TrendsService {
	return &trendsService{
		service: service{cfg: cfg, perplexity: perplexity, log: log},
	}
}

type trendsService struct {
	service
}

func (s *trendsService) CreateTrends(ctx context.Context, req *requests.CreateTrendsRequest) (*responses.Response[*responses.TrendsResponseData], error) {
	userPrompt := fmt.Sprintf("Keyword: %s\n\n", req.Query) +
		"Requirements:\n" +
		"- Bullets only, no tables or charts.\n" +
		"- Include dates, figures, and institution names where verifiable.\n" +
		"- Close with a 2-3 line checklist summary."

	text, citations, err := s.perplexity.ChatCompletion(ctx, trendsSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return &responses.Response[*responses.TrendsResponseData]{
		Status: "successful",
		Data: &responses.TrendsResponseData{
			Text:      text,
			Citations: citations,
			Model:     s.perplexity.Model(),
		},
	}, nil
}
