package responses

import "time"

type PriceResponseData struct {
	Symbol   string    `json:"symbol"`
	Market   string    `json:"market"`
	Price    float64   `json:"price"`
	Exchange string    `json:"exchange"`
	AsOf     time.Time `json:"asOf"`
}
