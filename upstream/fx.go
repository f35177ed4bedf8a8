package upstream

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/models"
)

// FXSource resolves the USD->KRW reference rate through an ordered provider
// chain. It never fails: when every provider is down it falls back to the
// configured last-resort rate and flags the result as degraded via Source.
type FXSource interface {
	USDKRW(ctx context.Context) (*models.Rate, error)
	Refresh(ctx context.Context) (*models.Rate, error)
}

type fxProvider struct {
	name  string
	fetch func(ctx context.Context) (float64, time.Time, error)
}

type fxSource struct {
	cfg       *config.Config
	log       *zap.Logger
	client    *client
	providers []fxProvider

	mu        sync.Mutex
	cached    *models.Rate
	fetchedAt time.Time
}

func NewFXSource(cfg *config.Config, log *zap.Logger) FXSource {
	f := &fxSource{
		cfg:    cfg,
		log:    log,
		client: newClient(),
	}
	// Attempt order is part of the contract: official source first, then the
	// operator-configured API, then the public fallback.
	f.providers = []fxProvider{
		{name: "koreaexim", fetch: f.fetchKoreaexim},
		{name: "env-rate-api", fetch: f.fetchEnvRateAPI},
		{name: "exchangerate.host", fetch: f.fetchExchangeHost},
	}
	return f
}

func (f *fxSource) USDKRW(ctx context.Context) (*models.Rate, error) {
	f.mu.Lock()
	if f.cached != nil && time.Since(f.fetchedAt) < f.cfg.RateCacheTTL {
		cached := *f.cached
		f.mu.Unlock()
		return &cached, nil
	}
	f.mu.Unlock()

	return f.Refresh(ctx)
}

func (f *fxSource) Refresh(ctx context.Context) (*models.Rate, error) {
	rate := f.resolve(ctx)

	f.mu.Lock()
	f.cached = rate
	f.fetchedAt = time.Now()
	f.mu.Unlock()

	out := *rate
	return &out, nil
}

func (f *fxSource) resolve(ctx context.Context) *models.Rate {
	for _, p := range f.providers {
		value, asOf, err := p.fetch(ctx)
		if err != nil {
			f.log.Debug("fx provider failed", zap.String("provider", p.name), zap.Error(err))
			continue
		}
		if !finitePositive(value) {
			f.log.Warn("fx provider returned unusable rate", zap.String("provider", p.name), zap.Float64("rate", value))
			continue
		}
		return &models.Rate{Base: "USD", Quote: "KRW", Rate: value, AsOf: asOf, Source: p.name}
	}

	f.log.Warn("all fx providers failed, using configured fallback rate",
		zap.Float64("rate", f.cfg.FXFallbackUSDKRW))
	return &models.Rate{
		Base:   "USD",
		Quote:  "KRW",
		Rate:   f.cfg.FXFallbackUSDKRW,
		AsOf:   time.Now(),
		Source: "fallback",
	}
}

type koreaeximRow struct {
	CurUnit  string `json:"cur_unit"`
	DealBasR string `json:"deal_bas_r"`
}

// fetchKoreaexim walks back up to a week of publication dates; the bank
// publishes nothing on weekends and holidays.
func (f *fxSource) fetchKoreaexim(ctx context.Context) (float64, time.Time, error) {
	if f.cfg.KoreaeximAPIKey == "" {
		return 0, time.Time{}, fmt.Errorf("koreaexim api key not configured")
	}

	today := time.Now()
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, -i)
		url := fmt.Sprintf("%s/site/program/financial/exchangeJSON?authkey=%s&searchdate=%s&data=AP01",
			f.cfg.KoreaeximBaseURL, f.cfg.KoreaeximAPIKey, day.Format("20060102"))

		var rows []koreaeximRow
		if err := f.client.getJSON(ctx, url, &rows); err != nil {
			continue
		}
		for _, row := range rows {
			if row.CurUnit != "USD" {
				continue
			}
			value, err := strconv.ParseFloat(strings.ReplaceAll(row.DealBasR, ",", ""), 64)
			if err == nil && finitePositive(value) {
				return value, day, nil
			}
		}
	}
	return 0, time.Time{}, fmt.Errorf("no USD row published within the last 7 days")
}

type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
}

func (f *fxSource) fetchEnvRateAPI(ctx context.Context) (float64, time.Time, error) {
	if f.cfg.ExchangeRateAPIURL == "" {
		return 0, time.Time{}, fmt.Errorf("exchange rate api url not configured")
	}
	var payload ratesPayload
	if err := f.client.getJSON(ctx, f.cfg.ExchangeRateAPIURL, &payload); err != nil {
		return 0, time.Time{}, err
	}
	return payload.Rates["KRW"], time.Now(), nil
}

func (f *fxSource) fetchExchangeHost(ctx context.Context) (float64, time.Time, error) {
	url := f.cfg.ExchangeHostURL + "?base=USD&symbols=KRW"
	var payload ratesPayload
	if err := f.client.getJSON(ctx, url, &payload); err != nil {
		return 0, time.Time{}, err
	}
	return payload.Rates["KRW"], time.Now(), nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
