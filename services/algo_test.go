package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swy0123/stablepath/config"
)

func registryWithFactor(factor float64) *AlgoRegistry {
	return NewAlgoRegistry(&config.Config{CoinAlgoAAAAFactor: factor})
}

func TestAlgoDisabledIsPassthroughForAnyName(t *testing.T) {
	r := registryWithFactor(0.5)

	for _, name := range []string{AlgoNone, AlgoAAAA, "whatever", ""} {
		res := r.Apply(name, 123.456, AlgoContext{Enabled: false})
		assert.Equal(t, 123.456, res.AdjustedQty, "name=%s", name)
		assert.Equal(t, []string{"coin algorithm disabled"}, res.Notes)
	}
}

func TestAlgoNoneIsPassthroughEvenWhenEnabled(t *testing.T) {
	r := registryWithFactor(0.5)

	res := r.Apply(AlgoNone, 10, AlgoContext{Enabled: true})
	assert.Equal(t, 10.0, res.AdjustedQty)
	assert.Equal(t, []string{"coin algorithm disabled"}, res.Notes)
}

func TestAlgoUnknownNameNeverErrors(t *testing.T) {
	r := registryWithFactor(1.0)

	res := r.Apply("ZZZZ", 42, AlgoContext{Enabled: true})
	assert.Equal(t, 42.0, res.AdjustedQty)
	assert.Equal(t, []string{"unknown algorithm 'ZZZZ', skipped"}, res.Notes)
}

func TestAlgoAAAAIdentityFactor(t *testing.T) {
	r := registryWithFactor(1.0)

	res := r.Apply(AlgoAAAA, 740.74, AlgoContext{Enabled: true})
	assert.Equal(t, 740.74, res.AdjustedQty)
	assert.Equal(t, []string{"algorithm AAAA applied: coinAfterNetwork x 1"}, res.Notes)
}

func TestAlgoAAAAHaircutFactor(t *testing.T) {
	r := registryWithFactor(0.9)

	res := r.Apply(AlgoAAAA, 100, AlgoContext{Enabled: true})
	assert.InEpsilon(t, 90.0, res.AdjustedQty, 1e-12)
}

func TestAlgoResultClampsNegativeQuantities(t *testing.T) {
	r := registryWithFactor(1.0)
	r.Register("NEGATE", func(qty float64, _ AlgoContext) (float64, string) {
		return -qty, "negated"
	})

	res := r.Apply("NEGATE", 5, AlgoContext{Enabled: true})
	assert.Equal(t, 0.0, res.AdjustedQty)
}

func TestAlgoDefaultFactorMatchesConfigDefault(t *testing.T) {
	assert.Equal(t, 1.0, config.DefaultCoinAlgoAAAAFactor)
}
