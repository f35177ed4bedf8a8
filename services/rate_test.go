package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/models"
)

type fakeFXSource struct {
	rate  float64
	calls int
}

func (f *fakeFXSource) USDKRW(context.Context) (*models.Rate, error) {
	f.calls++
	return &models.Rate{Base: "USD", Quote: "KRW", Rate: f.rate, AsOf: time.Now(), Source: "koreaexim"}, nil
}

func (f *fakeFXSource) Refresh(ctx context.Context) (*models.Rate, error) {
	return f.USDKRW(ctx)
}

func newTestRateService(fx *fakeFXSource) RateService {
	return NewRateService(&config.Config{}, fx, zap.NewNop())
}

func TestGetRateIdentityNeverFetches(t *testing.T) {
	fx := &fakeFXSource{rate: 1350}
	svc := newTestRateService(fx)

	for _, code := range []string{"KRW", "USD"} {
		rate, err := svc.GetRate(context.Background(), code, code)
		require.NoError(t, err)
		assert.Equal(t, 1.0, rate.Rate)
		assert.Equal(t, "identity", rate.Source)
	}
	assert.Equal(t, 0, fx.calls)
}

func TestGetRateUSDKRW(t *testing.T) {
	fx := &fakeFXSource{rate: 1350}
	svc := newTestRateService(fx)

	rate, err := svc.GetRate(context.Background(), "USD", "KRW")
	require.NoError(t, err)
	assert.Equal(t, 1350.0, rate.Rate)
	assert.Equal(t, "koreaexim", rate.Source)
}

func TestGetRateReciprocal(t *testing.T) {
	// 1/1250 is exactly representable at 6 decimal digits, so rounding does
	// not disturb the reciprocal identity
	fx := &fakeFXSource{rate: 1250}
	svc := newTestRateService(fx)

	usdkrw, err := svc.GetRate(context.Background(), "USD", "KRW")
	require.NoError(t, err)
	krwusd, err := svc.GetRate(context.Background(), "KRW", "USD")
	require.NoError(t, err)

	assert.InEpsilon(t, 1/usdkrw.Rate, krwusd.Rate, 1e-9)
}

func TestGetRateNormalizesCase(t *testing.T) {
	fx := &fakeFXSource{rate: 1350}
	svc := newTestRateService(fx)

	rate, err := svc.GetRate(context.Background(), " usd ", "krw")
	require.NoError(t, err)
	assert.Equal(t, "USD", rate.Base)
	assert.Equal(t, "KRW", rate.Quote)
	assert.Equal(t, 1350.0, rate.Rate)
}

func TestGetRateUnsupportedPair(t *testing.T) {
	fx := &fakeFXSource{rate: 1350}
	svc := newTestRateService(fx)

	for _, pair := range [][2]string{{"EUR", "KRW"}, {"USD", "JPY"}, {"EUR", "GBP"}} {
		_, err := svc.GetRate(context.Background(), pair[0], pair[1])
		require.Error(t, err)
		assert.Equal(t, errors.ErrUnsupportedPair, errors.AsAppError(err).Type)
	}
	assert.Equal(t, 0, fx.calls)
}
