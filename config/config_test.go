package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "UPBIT_BASE_URL", "TICKER_CACHE_TTL",
		"KOREAEXIM_API_KEY", "KOREAEXIM_BASE_URL", "EXCHANGE_RATE_API_URL",
		"EXCHANGE_HOST_URL", "FX_FALLBACK_USD_KRW", "RATE_CACHE_TTL",
		"GEMINI_MODEL", "PERPLEXITY_MODEL", "COIN_ALGO_AAAA_FACTOR",
	} {
		t.Setenv(key, "")
	}

	cfg := New()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://api.upbit.com/v1", cfg.UpbitBaseURL)
	assert.Equal(t, 5*time.Second, cfg.TickerCacheTTL)
	assert.Equal(t, "https://oapi.koreaexim.go.kr", cfg.KoreaeximBaseURL)
	assert.Empty(t, cfg.ExchangeRateAPIURL)
	assert.Equal(t, 1350.0, cfg.FXFallbackUSDKRW)
	assert.Equal(t, time.Minute, cfg.RateCacheTTL)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "sonar", cfg.PerplexityModel)
	assert.Equal(t, DefaultCoinAlgoAAAAFactor, cfg.CoinAlgoAAAAFactor)
}

func TestNewEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("TICKER_CACHE_TTL", "250ms")
	t.Setenv("FX_FALLBACK_USD_KRW", "1412.75")
	t.Setenv("COIN_ALGO_AAAA_FACTOR", "0.9")
	t.Setenv("EXCHANGE_RATE_API_URL", "https://rates.internal/latest")

	cfg := New()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.TickerCacheTTL)
	assert.Equal(t, 1412.75, cfg.FXFallbackUSDKRW)
	assert.Equal(t, 0.9, cfg.CoinAlgoAAAAFactor)
	assert.Equal(t, "https://rates.internal/latest", cfg.ExchangeRateAPIURL)
}

func TestNewIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("FX_FALLBACK_USD_KRW", "not-a-number")
	t.Setenv("RATE_CACHE_TTL", "soon")
	t.Setenv("COIN_ALGO_AAAA_FACTOR", "")

	cfg := New()

	assert.Equal(t, 1350.0, cfg.FXFallbackUSDKRW)
	assert.Equal(t, time.Minute, cfg.RateCacheTTL)
	assert.Equal(t, DefaultCoinAlgoAAAAFactor, cfg.CoinAlgoAAAAFactor)
}
