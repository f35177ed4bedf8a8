package responses

import "time"

type RateResponseData struct {
	Base   string    `json:"base"`
	Quote  string    `json:"quote"`
	Rate   float64   `json:"rate"`
	AsOf   time.Time `json:"asOf"`
	Source string    `json:"source,omitempty"`
}
