package services

import (
	"fmt"

	"github.com/swy0123/stablepath/config"
)

// Coin algorithm identifiers. The set is open-ended; unknown names degrade to
// passthrough so registry drift never fails a quote.
const (
	AlgoNone = "NONE"
	AlgoAAAA = "AAAA"
)

// AlgoContext carries the leg context an algorithm may condition on.
type AlgoContext struct {
	Enabled      bool
	BuyCurrency  string
	SellCurrency string
	BuyPrice     float64
	SellPrice    float64
}

type AlgoResult struct {
	AdjustedQty float64
	Notes       []string
}

// AlgoFunc transforms a coin quantity and describes what it did.
type AlgoFunc func(qty float64, actx AlgoContext) (float64, string)

// AlgoRegistry maps algorithm identifiers to pure transforms on the
// post-network-fee coin quantity.
type AlgoRegistry struct {
	transforms map[string]AlgoFunc
}

func NewAlgoRegistry(cfg *config.Config) *AlgoRegistry {
	r := &AlgoRegistry{transforms: map[string]AlgoFunc{}}
	r.Register(AlgoAAAA, multiplicative(AlgoAAAA, cfg.CoinAlgoAAAAFactor))
	return r
}

func (r *AlgoRegistry) Register(name string, fn AlgoFunc) {
	r.transforms[name] = fn
}

// Apply runs the named transform on qty. Disabled, NONE, or empty names pass
// through; unknown names pass through with an audit note, never an error.
func (r *AlgoRegistry) Apply(name string, qty float64, actx AlgoContext) AlgoResult {
	if !actx.Enabled || name == "" || name == AlgoNone {
		return AlgoResult{AdjustedQty: qty, Notes: []string{"coin algorithm disabled"}}
	}

	fn, ok := r.transforms[name]
	if !ok {
		return AlgoResult{
			AdjustedQty: qty,
			Notes:       []string{fmt.Sprintf("unknown algorithm '%s', skipped", name)},
		}
	}

	adjusted, note := fn(qty, actx)
	if adjusted < 0 {
		adjusted = 0
	}
	return AlgoResult{AdjustedQty: adjusted, Notes: []string{note}}
}

func multiplicative(name string, factor float64) AlgoFunc {
	return func(qty float64, _ AlgoContext) (float64, string) {
		return qty * factor, fmt.Sprintf("algorithm %s applied: coinAfterNetwork x %g", name, factor)
	}
}
