package upstream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/models"
)

const Exchange = "UPBIT"

// TickerClient looks up the latest trade price of a coin on the exchange.
// It must fail loudly; a zero or missing price is an error, never a value.
type TickerClient interface {
	Ticker(ctx context.Context, symbol, market string) (*models.CoinPrice, error)
}

type upbitTicker struct {
	TradePrice float64 `json:"trade_price"`
	Timestamp  int64   `json:"timestamp"`
}

type upbitClient struct {
	cfg    *config.Config
	log    *zap.Logger
	client *client

	mu    sync.Mutex
	cache map[string]cachedPrice
}

type cachedPrice struct {
	price     models.CoinPrice
	fetchedAt time.Time
}

func NewUpbitClient(cfg *config.Config, log *zap.Logger) TickerClient {
	return &upbitClient{
		cfg:    cfg,
		log:    log,
		client: newClient(),
		cache:  map[string]cachedPrice{},
	}
}

// Ticker fetches the <market>-<symbol> ticker, e.g. KRW-USDT. Responses are
// cached briefly; ticker churn below the TTL is noise for quoting purposes.
func (u *upbitClient) Ticker(ctx context.Context, symbol, market string) (*models.CoinPrice, error) {
	upbitMarket := market + "-" + symbol

	u.mu.Lock()
	if entry, ok := u.cache[upbitMarket]; ok && time.Since(entry.fetchedAt) < u.cfg.TickerCacheTTL {
		price := entry.price
		u.mu.Unlock()
		return &price, nil
	}
	u.mu.Unlock()

	url := fmt.Sprintf("%s/ticker?markets=%s", u.cfg.UpbitBaseURL, upbitMarket)
	var tickers []upbitTicker
	if err := u.client.getJSON(ctx, url, &tickers); err != nil {
		return nil, errors.NewUpstreamError("upbit", err)
	}
	if len(tickers) == 0 {
		return nil, errors.NewUpstreamError("upbit", fmt.Errorf("ticker empty for %s", upbitMarket))
	}
	if !finitePositive(tickers[0].TradePrice) {
		return nil, errors.NewUpstreamError("upbit", fmt.Errorf("unusable trade price %v for %s", tickers[0].TradePrice, upbitMarket))
	}

	price := models.CoinPrice{
		Symbol:   symbol,
		Market:   upbitMarket,
		Price:    tickers[0].TradePrice,
		Exchange: Exchange,
		AsOf:     time.UnixMilli(tickers[0].Timestamp),
	}

	u.mu.Lock()
	u.cache[upbitMarket] = cachedPrice{price: price, fetchedAt: time.Now()}
	u.mu.Unlock()

	return &price, nil
}
