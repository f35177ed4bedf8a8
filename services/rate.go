package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/models"
	"github.com/swy0123/stablepath/upstream"
	"github.com/swy0123/stablepath/utils"
)

// RateService resolves fiat exchange rates. rate(X,X) is 1 by definition and
// never fetched; beyond that only the USD/KRW pair is supported.
type RateService interface {
	GetRate(ctx context.Context, base, quote string) (*models.Rate, error)
}

func NewRateService(cfg *config.Config, fxSource upstream.FXSource, log *zap.Logger) RateService {
	return &rateService{
		service: service{cfg: cfg, fxSource: fxSource, log: log},
	}
}

type rateService struct {
	service
}

func (s *rateService) GetRate(ctx context.Context, base, quote string) (*models.Rate, error) {
	base = utils.UpperCode(base)
	quote = utils.UpperCode(quote)

	if base == quote {
		return &models.Rate{Base: base, Quote: quote, Rate: 1, AsOf: time.Now(), Source: "identity"}, nil
	}
	if !SupportedFiat[base] || !SupportedFiat[quote] {
		return nil, errors.NewUnsupportedPairError(base, quote)
	}

	usdkrw, err := s.fxSource.USDKRW(ctx)
	if err != nil {
		return nil, errors.NewUpstreamError("fx-rate", err)
	}

	rate := usdkrw.Rate
	if base == "KRW" && quote == "USD" {
		rate = 1 / usdkrw.Rate
	}

	return &models.Rate{
		Base:   base,
		Quote:  quote,
		Rate:   utils.Round6(rate),
		AsOf:   usdkrw.AsOf,
		Source: usdkrw.Source,
	}, nil
}
