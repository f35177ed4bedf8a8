package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
)

// PerplexityClient generates a web-search-augmented trend brief. The API is
// OpenAI chat-completions compatible and returns citation URLs.
type PerplexityClient interface {
	ChatCompletion(ctx context.Context, system, user string) (text string, citations []string, err error)
	Model() string
}

type perplexityClient struct {
	cfg    *config.Config
	log    *zap.Logger
	client *client
}

func NewPerplexityClient(cfg *config.Config, log *zap.Logger) PerplexityClient {
	if cfg.PerplexityAPIKey == "" {
		log.Warn("PERPLEXITY_API_KEY not set, trend generation will fail")
	}
	return &perplexityClient{cfg: cfg, log: log, client: newClient()}
}

func (p *perplexityClient) Model() string {
	return p.cfg.PerplexityModel
}

type pplxMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type pplxRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
	Messages    []pplxMessage `json:"messages"`
}

// Citation location has moved across API versions; all observed spots are
// checked.
type pplxResponse struct {
	Citations []string `json:"citations"`
	Choices   []struct {
		Text      string   `json:"text"`
		Citations []string `json:"citations"`
		Message   struct {
			Content   string   `json:"content"`
			Citations []string `json:"citations"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *perplexityClient) ChatCompletion(ctx context.Context, system, user string) (string, []string, error) {
	if p.cfg.PerplexityAPIKey == "" {
		return "", nil, errors.NewUpstreamError("perplexity", fmt.Errorf("PERPLEXITY_API_KEY not set"))
	}

	body := pplxRequest{
		Model:       p.cfg.PerplexityModel,
		Temperature: 0.2,
		TopP:        0.9,
		Messages: []pplxMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + p.cfg.PerplexityAPIKey}

	raw, err := p.client.postJSON(ctx, p.cfg.PerplexityBaseURL+"/chat/completions", headers, body)
	if err != nil {
		return "", nil, errors.NewUpstreamError("perplexity", err)
	}

	var res pplxResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		// Non-JSON success body: pass the raw text through rather than fail.
		return string(raw), nil, nil
	}
	if len(res.Choices) == 0 {
		return "", nil, errors.NewUpstreamError("perplexity", fmt.Errorf("empty choice list"))
	}

	choice := res.Choices[0]
	text := choice.Message.Content
	if text == "" {
		text = choice.Text
	}

	citations := res.Citations
	if len(citations) == 0 {
		citations = choice.Message.Citations
	}
	if len(citations) == 0 {
		citations = choice.Citations
	}
	return text, citations, nil
}
