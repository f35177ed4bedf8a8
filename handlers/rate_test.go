package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/models"
	"github.com/swy0123/stablepath/types/responses"
)

type fakeRateService struct {
	rate *models.Rate
	err  error
	base string
	qte  string
}

func (f *fakeRateService) GetRate(_ context.Context, base, quote string) (*models.Rate, error) {
	f.base, f.qte = base, quote
	if f.err != nil {
		return nil, f.err
	}
	return f.rate, nil
}

func newRateMux(svc *fakeRateService) *http.ServeMux {
	mux := http.NewServeMux()
	h := NewRateHandler(svc, NewMiddlewareHandler(zap.NewNop()), zap.NewNop())
	h.ServeHttp(mux)
	return mux
}

func getRate(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestGetRateHandlerDefaultsToUSDKRW(t *testing.T) {
	svc := &fakeRateService{rate: &models.Rate{Base: "USD", Quote: "KRW", Rate: 1350, AsOf: time.Now(), Source: "koreaexim"}}
	mux := newRateMux(svc)

	rec := getRate(mux, "/api/rate")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "USD", svc.base)
	assert.Equal(t, "KRW", svc.qte)

	var res responses.Response[*responses.RateResponseData]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "successful", res.Status)
	assert.Equal(t, 1350.0, res.Data.Rate)
	assert.Equal(t, "koreaexim", res.Data.Source)
}

func TestGetRateHandlerReadsQueryParameters(t *testing.T) {
	svc := &fakeRateService{rate: &models.Rate{Base: "KRW", Quote: "USD", Rate: 0.000741, AsOf: time.Now(), Source: "koreaexim"}}
	mux := newRateMux(svc)

	rec := getRate(mux, "/api/rate?base=KRW&quote=USD")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "KRW", svc.base)
	assert.Equal(t, "USD", svc.qte)
}

func TestGetRateHandlerUnsupportedPair(t *testing.T) {
	svc := &fakeRateService{err: errors.NewUnsupportedPairError("EUR", "KRW")}
	mux := newRateMux(svc)

	rec := getRate(mux, "/api/rate?base=EUR&quote=KRW")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, errors.ErrUnsupportedPair, appErr.Type)
}
