package responses

import (
	"time"

	"github.com/swy0123/stablepath/types/requests"
)

type QuoteFXData struct {
	BaseToViaRate      float64   `json:"baseToViaRate"`
	ViaToTargetRate    float64   `json:"viaToTargetRate"`
	EffBaseToViaRate   float64   `json:"effBaseToViaRate"`
	EffViaToTargetRate float64   `json:"effViaToTargetRate"`
	AsOf               time.Time `json:"asOf"`
}

type QuoteCoinData struct {
	Symbol       string    `json:"symbol"`
	Market       string    `json:"market"`
	Exchange     string    `json:"exchange"`
	BuyCurrency  string    `json:"buyCurrency"`
	SellCurrency string    `json:"sellCurrency"`
	BuyPrice     float64   `json:"buyPrice"`
	SellPrice    float64   `json:"sellPrice"`
	AsOf         time.Time `json:"asOf"`
}

type QuoteFeesData struct {
	FxSpreadPct        float64 `json:"fxSpreadPct"`
	TradePct           float64 `json:"tradePct"`
	NetworkFixedInCoin float64 `json:"networkFixedInCoin"`
	TradeFeeBuy        float64 `json:"tradeFeeBuy"`
	TradeFeeSell       float64 `json:"tradeFeeSell"`
	NetworkFeeInBuy    float64 `json:"networkFeeInBuy"`
	TotalFeeInTarget   float64 `json:"totalFeeInTarget"`
}

type QuoteTotalsData struct {
	BaseAmount        float64 `json:"baseAmount"`
	CashForBuy        float64 `json:"cashForBuy"`
	CoinAmount        float64 `json:"coinAmount"`
	CoinAfterNetwork  float64 `json:"coinAfterNetwork"`
	CashAfterSell     float64 `json:"cashAfterSell"`
	FinalTargetAmount float64 `json:"finalTargetAmount"`
}

type QuoteHooksData struct {
	RiskAdjustmentApplied bool     `json:"riskAdjustmentApplied"`
	Notes                 []string `json:"notes"`
}

type QuoteResponseData struct {
	ID        string                       `json:"id"`
	Ref       string                       `json:"ref"`
	Inputs    *requests.CreateQuoteRequest `json:"inputs"`
	Timestamp time.Time                    `json:"timestamp"`
	FX        QuoteFXData                  `json:"fx"`
	Coin      QuoteCoinData                `json:"coin"`
	Fees      QuoteFeesData                `json:"fees"`
	Totals    QuoteTotalsData              `json:"totals"`
	Hooks     QuoteHooksData               `json:"hooks"`
}
