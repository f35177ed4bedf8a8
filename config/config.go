package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Coin algorithm factors. Exposed here rather than buried in the registry so
// deployments can retune them without touching calculation code.
const DefaultCoinAlgoAAAAFactor = 1.0

type Config struct {
	Addr string

	UpbitBaseURL   string
	TickerCacheTTL time.Duration

	KoreaeximAPIKey    string
	KoreaeximBaseURL   string
	ExchangeRateAPIURL string
	ExchangeHostURL    string
	// Last-resort USD->KRW rate used when every FX provider fails. Must be
	// overridden in production; the default only keeps local development alive.
	FXFallbackUSDKRW float64
	RateCacheTTL     time.Duration

	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	PerplexityAPIKey  string
	PerplexityModel   string
	PerplexityBaseURL string

	CoinAlgoAAAAFactor float64
}

func New() *Config {
	// Missing .env is fine; environment may already be populated.
	_ = godotenv.Load()

	return &Config{
		Addr: envString("HTTP_ADDR", ":8080"),

		UpbitBaseURL:   envString("UPBIT_BASE_URL", "https://api.upbit.com/v1"),
		TickerCacheTTL: envDuration("TICKER_CACHE_TTL", 5*time.Second),

		KoreaeximAPIKey:    os.Getenv("KOREAEXIM_API_KEY"),
		KoreaeximBaseURL:   envString("KOREAEXIM_BASE_URL", "https://oapi.koreaexim.go.kr"),
		ExchangeRateAPIURL: os.Getenv("EXCHANGE_RATE_API_URL"),
		ExchangeHostURL:    envString("EXCHANGE_HOST_URL", "https://api.exchangerate.host/latest"),
		FXFallbackUSDKRW:   envFloat("FX_FALLBACK_USD_KRW", 1350),
		RateCacheTTL:       envDuration("RATE_CACHE_TTL", time.Minute),

		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       envString("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:     envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		PerplexityAPIKey:  os.Getenv("PERPLEXITY_API_KEY"),
		PerplexityModel:   envString("PERPLEXITY_MODEL", "sonar"),
		PerplexityBaseURL: envString("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),

		CoinAlgoAAAAFactor: envFloat("COIN_ALGO_AAAA_FACTOR", DefaultCoinAlgoAAAAFactor),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
