package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/types/responses"
	"github.com/swy0123/stablepath/utils"
)

// QuoteService runs the quote pipeline: optional fiat conversion, stablecoin
// purchase, optional algorithm adjustment, stablecoin sale, optional fiat
// conversion, then an itemized fee rollup. One linear pass per request; any
// upstream failure aborts the whole quote.
type QuoteService interface {
	CreateQuote(ctx context.Context, req *requests.CreateQuoteRequest) (*responses.Response[*responses.QuoteResponseData], error)
}

func NewQuoteService(cfg *config.Config, rateService RateService, priceService PriceService, algoRegistry *AlgoRegistry, log *zap.Logger) QuoteService {
	return &quoteService{
		service: service{
			cfg:          cfg,
			rateService:  rateService,
			priceService: priceService,
			algoRegistry: algoRegistry,
			log:          log,
		},
	}
}

type quoteService struct {
	service
}

func (s *quoteService) CreateQuote(ctx context.Context, req *requests.CreateQuoteRequest) (*responses.Response[*responses.QuoteResponseData], error) {
	// Validation runs before any upstream call; a bad request never costs a
	// fetch.
	if err := s.validate(req); err != nil {
		return nil, err
	}

	amount := float64(req.Amount)
	fxSpreadPct, tradePct, networkFixedInCoin := req.Fees()
	fxBefore := req.FxBeforeCoin()
	fxAfter := req.FxAfterCoin()

	// Effective trading currencies for the buy and sell legs.
	buyCurrency := req.BaseCurrency
	if fxBefore {
		buyCurrency = req.ViaFiatBefore
	}
	sellCurrency := req.TargetCurrency
	if fxAfter {
		sellCurrency = req.ViaFiatAfter
	}

	// Only enabled legs with differing currencies cost a rate lookup.
	baseToViaRate := 1.0
	if fxBefore && req.BaseCurrency != req.ViaFiatBefore {
		rate, err := s.rateService.GetRate(ctx, req.BaseCurrency, req.ViaFiatBefore)
		if err != nil {
			return nil, err
		}
		baseToViaRate = rate.Rate
	}
	viaToTargetRate := 1.0
	if fxAfter && req.ViaFiatAfter != req.TargetCurrency {
		rate, err := s.rateService.GetRate(ctx, req.ViaFiatAfter, req.TargetCurrency)
		if err != nil {
			return nil, err
		}
		viaToTargetRate = rate.Rate
	}

	// Spread applies only to legs that execute; a disabled leg stays identity
	// no matter what spread was requested.
	effBaseToViaRate := 1.0
	if fxBefore {
		effBaseToViaRate = baseToViaRate * (1 - fxSpreadPct/100)
	}
	effViaToTargetRate := 1.0
	if fxAfter {
		effViaToTargetRate = viaToTargetRate * (1 - fxSpreadPct/100)
	}

	buyPrice, err := s.priceService.PriceInCurrency(ctx, req.StableSymbol, buyCurrency)
	if err != nil {
		return nil, wrapLegError("buy price", req.StableSymbol, buyCurrency, err)
	}
	sellPrice, err := s.priceService.PriceInCurrency(ctx, req.StableSymbol, sellCurrency)
	if err != nil {
		return nil, wrapLegError("sell price", req.StableSymbol, sellCurrency, err)
	}

	// Fx-before leg.
	cashForBuy := amount
	if fxBefore && req.BaseCurrency != buyCurrency {
		cashForBuy = amount * effBaseToViaRate
	}

	// Buy leg: percentage fee comes off the cash before the purchase. A
	// non-positive price cannot buy anything; guarding here keeps the rest of
	// the chain finite.
	buyFee := cashForBuy * tradePct / 100
	coinAmount := 0.0
	if buyPrice > 0 {
		coinAmount = max(0, (cashForBuy-buyFee)/buyPrice)
	}

	// Network fee is a fixed coin quantity; its cash value is reported in the
	// buy currency.
	coinAfterNetwork := max(0, coinAmount-networkFixedInCoin)
	networkFeeInBuy := networkFixedInCoin * buyPrice

	algoResult := s.algoRegistry.Apply(req.CoinAlgoName, coinAfterNetwork, AlgoContext{
		Enabled:      req.EnableCoinAlgo,
		BuyCurrency:  buyCurrency,
		SellCurrency: sellCurrency,
		BuyPrice:     buyPrice,
		SellPrice:    sellPrice,
	})
	coinForSell := algoResult.AdjustedQty

	// Sell leg.
	grossSell := coinForSell * sellPrice
	sellFee := grossSell * tradePct / 100
	cashAfterSell := max(0, grossSell-sellFee)

	// Fx-after leg.
	finalTargetAmount := cashAfterSell
	if fxAfter && sellCurrency != req.TargetCurrency {
		finalTargetAmount = cashAfterSell * effViaToTargetRate
	}

	// Fee rollup in sell-currency terms, then into the target currency under
	// the same condition as the fx-after leg.
	buyToSellFactor := 1.0
	if buyPrice > 0 {
		buyToSellFactor = sellPrice / buyPrice
	}
	feesInSell := buyFee*buyToSellFactor + sellFee + networkFeeInBuy*buyToSellFactor
	totalFeeInTarget := feesInSell
	if fxAfter && sellCurrency != req.TargetCurrency {
		totalFeeInTarget = feesInSell * effViaToTargetRate
	}

	notes := algoResult.Notes
	if !fxBefore && req.BaseCurrency != req.ViaFiatBefore {
		notes = append(notes, "enableFxBeforeCoin=false: first fx leg skipped, buy leg priced in baseCurrency")
	}
	if !fxAfter && req.ViaFiatAfter != req.TargetCurrency {
		notes = append(notes, "enableFxAfterCoin=false: second fx leg skipped, final amount stays in sellCurrency")
	}

	now := time.Now()
	data := &responses.QuoteResponseData{
		ID:        uuid.NewString(),
		Ref:       cuid.Slug(),
		Inputs:    req,
		Timestamp: now,
		FX: responses.QuoteFXData{
			BaseToViaRate:      utils.Round6(baseToViaRate),
			ViaToTargetRate:    utils.Round6(viaToTargetRate),
			EffBaseToViaRate:   utils.Round6(effBaseToViaRate),
			EffViaToTargetRate: utils.Round6(effViaToTargetRate),
			AsOf:               now,
		},
		Coin: responses.QuoteCoinData{
			Symbol:       req.StableSymbol,
			Market:       "KRW-" + req.StableSymbol,
			Exchange:     "UPBIT",
			BuyCurrency:  buyCurrency,
			SellCurrency: sellCurrency,
			BuyPrice:     utils.Round6(buyPrice),
			SellPrice:    utils.Round6(sellPrice),
			AsOf:         now,
		},
		Fees: responses.QuoteFeesData{
			FxSpreadPct:        fxSpreadPct,
			TradePct:           tradePct,
			NetworkFixedInCoin: networkFixedInCoin,
			TradeFeeBuy:        utils.Round6(buyFee),
			TradeFeeSell:       utils.Round6(sellFee),
			NetworkFeeInBuy:    utils.Round6(networkFeeInBuy),
			TotalFeeInTarget:   utils.Round6(totalFeeInTarget),
		},
		Totals: responses.QuoteTotalsData{
			BaseAmount:        utils.Round6(amount),
			CashForBuy:        utils.Round6(cashForBuy),
			CoinAmount:        utils.Round6(coinAmount),
			CoinAfterNetwork:  utils.Round6(coinAfterNetwork),
			CashAfterSell:     utils.Round6(cashAfterSell),
			FinalTargetAmount: utils.Round6(finalTargetAmount),
		},
		Hooks: responses.QuoteHooksData{
			RiskAdjustmentApplied: req.EnableCoinAlgo,
			Notes:                 notes,
		},
	}

	return &responses.Response[*responses.QuoteResponseData]{
		Status: "successful",
		Data:   data,
	}, nil
}

func (s *quoteService) validate(req *requests.CreateQuoteRequest) error {
	if req == nil {
		return errors.NewValidationError("No request body")
	}
	if req.Amount <= 0 || !utils.Finite(float64(req.Amount)) {
		return errors.NewValidationError("amount must be a positive number")
	}
	for field, value := range map[string]string{
		"baseCurrency":   req.BaseCurrency,
		"viaFiatBefore":  req.ViaFiatBefore,
		"viaFiatAfter":   req.ViaFiatAfter,
		"targetCurrency": req.TargetCurrency,
	} {
		if !SupportedFiat[value] {
			return errors.NewValidationError("unsupported " + field)
		}
	}
	if !SupportedStable[req.StableSymbol] {
		return errors.NewValidationError("unsupported stableSymbol")
	}
	return nil
}

func wrapLegError(leg, symbol, fiat string, err error) error {
	appErr := errors.AsAppError(err)
	if appErr.Type != errors.ErrUpstream {
		return err
	}
	return errors.NewUpstreamError(fmt.Sprintf("%s %s/%s", leg, symbol, fiat), appErr)
}
