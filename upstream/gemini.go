package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
)

// GeminiClient generates free-text analysis from a prompt. Opaque to the
// quote pipeline.
type GeminiClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

type geminiClient struct {
	cfg    *config.Config
	log    *zap.Logger
	client *client
}

func NewGeminiClient(cfg *config.Config, log *zap.Logger) GeminiClient {
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, report generation will fail")
	}
	return &geminiClient{cfg: cfg, log: log, client: newClient()}
}

func (g *geminiClient) Model() string {
	return g.cfg.GeminiModel
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g.cfg.GeminiAPIKey == "" {
		return "", errors.NewUpstreamError("gemini", fmt.Errorf("GEMINI_API_KEY not set"))
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.cfg.GeminiBaseURL, g.cfg.GeminiModel, g.cfg.GeminiAPIKey)
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}

	raw, err := g.client.postJSON(ctx, url, nil, body)
	if err != nil {
		return "", errors.NewUpstreamError("gemini", err)
	}

	var res geminiResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", errors.NewUpstreamError("gemini", err)
	}
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewUpstreamError("gemini", fmt.Errorf("empty candidate list"))
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
