package requests

import "github.com/swy0123/stablepath/models"

type QuoteFees struct {
	FxSpreadPct        models.Double `json:"fxSpreadPct"`
	TradePct           models.Double `json:"tradePct"`
	NetworkFixedInCoin models.Double `json:"networkFixedInCoin"`
}

type CreateQuoteRequest struct {
	Amount         models.Double `json:"amount" validate:"required,gt=0"`
	BaseCurrency   string        `json:"baseCurrency" validate:"required,oneof=KRW USD"`
	ViaFiatBefore  string        `json:"viaFiatBefore" validate:"required,oneof=KRW USD"`
	ViaFiatAfter   string        `json:"viaFiatAfter" validate:"required,oneof=KRW USD"`
	TargetCurrency string        `json:"targetCurrency" validate:"required,oneof=KRW USD"`
	StableSymbol   string        `json:"stableSymbol" validate:"required,oneof=USDT USDC"`

	EnableFxBeforeCoin *bool `json:"enableFxBeforeCoin" default:"true"`
	EnableFxAfterCoin  *bool `json:"enableFxAfterCoin" default:"true"`

	EnableCoinAlgo bool   `json:"enableCoinAlgo"`
	CoinAlgoName   string `json:"coinAlgoName" default:"NONE"`

	Fee *QuoteFees `json:"fee"`
}

func (r *CreateQuoteRequest) FxBeforeCoin() bool {
	return r.EnableFxBeforeCoin == nil || *r.EnableFxBeforeCoin
}

func (r *CreateQuoteRequest) FxAfterCoin() bool {
	return r.EnableFxAfterCoin == nil || *r.EnableFxAfterCoin
}

// Fees returns the fee block with absent values defaulted to zero and
// negative values clamped to zero.
func (r *CreateQuoteRequest) Fees() (fxSpreadPct, tradePct, networkFixedInCoin float64) {
	if r.Fee == nil {
		return 0, 0, 0
	}
	return clampNonNegative(float64(r.Fee.FxSpreadPct)),
		clampNonNegative(float64(r.Fee.TradePct)),
		clampNonNegative(float64(r.Fee.NetworkFixedInCoin))
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
