package services

import (
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/upstream"
)

type service struct {
	cfg *config.Config

	fxSource   upstream.FXSource
	ticker     upstream.TickerClient
	gemini     upstream.GeminiClient
	perplexity upstream.PerplexityClient

	rateService  RateService
	priceService PriceService
	algoRegistry *AlgoRegistry

	log *zap.Logger
}

// Closed currency sets. Quoting beyond these is out of scope.
var SupportedFiat = map[string]bool{
	"KRW": true,
	"USD": true,
}

var SupportedStable = map[string]bool{
	"USDT": true,
	"USDC": true,
}
