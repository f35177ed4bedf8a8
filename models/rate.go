package models

import "time"

// Rate is the multiplicative factor such that 1 base-unit = Rate quote-units.
type Rate struct {
	Base   string    `json:"base"`
	Quote  string    `json:"quote"`
	Rate   float64   `json:"rate"`
	AsOf   time.Time `json:"asOf"`
	Source string    `json:"source,omitempty"`
}
