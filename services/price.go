package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/models"
	"github.com/swy0123/stablepath/upstream"
	"github.com/swy0123/stablepath/utils"
)

// PriceService resolves stablecoin prices. The exchange quotes in KRW; any
// other fiat denomination is derived through the USD->KRW rate.
type PriceService interface {
	GetTicker(ctx context.Context, symbol, market string) (*models.CoinPrice, error)
	PriceInCurrency(ctx context.Context, symbol, fiat string) (float64, error)
}

func NewPriceService(cfg *config.Config, ticker upstream.TickerClient, rateService RateService, log *zap.Logger) PriceService {
	return &priceService{
		service: service{cfg: cfg, ticker: ticker, rateService: rateService, log: log},
	}
}

type priceService struct {
	service
}

func (s *priceService) GetTicker(ctx context.Context, symbol, market string) (*models.CoinPrice, error) {
	return s.ticker.Ticker(ctx, utils.UpperCode(symbol), utils.UpperCode(market))
}

func (s *priceService) PriceInCurrency(ctx context.Context, symbol, fiat string) (float64, error) {
	symbol = utils.UpperCode(symbol)
	fiat = utils.UpperCode(fiat)

	krwPrice, err := s.ticker.Ticker(ctx, symbol, "KRW")
	if err != nil {
		return 0, err
	}
	if fiat == "KRW" {
		return krwPrice.Price, nil
	}

	usdkrw, err := s.rateService.GetRate(ctx, "USD", "KRW")
	if err != nil {
		return 0, err
	}
	price := krwPrice.Price / usdkrw.Rate
	if !utils.Finite(price) || price <= 0 {
		return 0, errors.NewUpstreamError("fx-rate", fmt.Errorf("derived %s price in %s is unusable: %v", symbol, fiat, price))
	}
	return price, nil
}
