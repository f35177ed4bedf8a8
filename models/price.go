package models

import "time"

// CoinPrice is the per-unit price of a stablecoin in a fiat market, as quoted
// by the exchange ticker.
type CoinPrice struct {
	Symbol   string    `json:"symbol"`
	Market   string    `json:"market"`
	Price    float64   `json:"price"`
	Exchange string    `json:"exchange"`
	AsOf     time.Time `json:"asOf"`
}
