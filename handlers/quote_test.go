package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/types/responses"
)

type fakeQuoteService struct {
	res   *responses.Response[*responses.QuoteResponseData]
	err   error
	got   *requests.CreateQuoteRequest
	calls int
}

func (f *fakeQuoteService) CreateQuote(_ context.Context, req *requests.CreateQuoteRequest) (*responses.Response[*responses.QuoteResponseData], error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func newQuoteMux(svc *fakeQuoteService) *http.ServeMux {
	mux := http.NewServeMux()
	h := NewQuoteHandler(svc, NewMiddlewareHandler(zap.NewNop()), zap.NewNop())
	h.ServeHttp(mux)
	return mux
}

func postQuote(t *testing.T, mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateQuoteHandlerSuccess(t *testing.T) {
	svc := &fakeQuoteService{
		res: &responses.Response[*responses.QuoteResponseData]{
			Status: "successful",
			Data:   &responses.QuoteResponseData{ID: "q-1", Ref: "ref1"},
		},
	}
	mux := newQuoteMux(svc)

	rec := postQuote(t, mux, `{"amount":1000000,"baseCurrency":"KRW","viaFiatBefore":"USD","viaFiatAfter":"USD","targetCurrency":"USD","stableSymbol":"USDT"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res responses.Response[*responses.QuoteResponseData]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "successful", res.Status)
	assert.Equal(t, "q-1", res.Data.ID)

	require.NotNil(t, svc.got)
	assert.Equal(t, 1000000.0, float64(svc.got.Amount))
	// defaults survive a body that omits the flags
	assert.True(t, svc.got.FxBeforeCoin())
	assert.True(t, svc.got.FxAfterCoin())
}

func TestCreateQuoteHandlerRejectsInvalidCurrency(t *testing.T) {
	svc := &fakeQuoteService{}
	mux := newQuoteMux(svc)

	rec := postQuote(t, mux, `{"amount":1000000,"baseCurrency":"EUR","viaFiatBefore":"USD","viaFiatAfter":"USD","targetCurrency":"USD","stableSymbol":"USDT"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, errors.ErrValidation, appErr.Type)
	// binding fails before the service is touched
	assert.Equal(t, 0, svc.calls)
}

func TestCreateQuoteHandlerRejectsMalformedJSON(t *testing.T) {
	svc := &fakeQuoteService{}
	mux := newQuoteMux(svc)

	rec := postQuote(t, mux, `{"amount":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestCreateQuoteHandlerMapsUpstreamErrors(t *testing.T) {
	svc := &fakeQuoteService{err: errors.NewUpstreamError("upbit", fmt.Errorf("timeout"))}
	mux := newQuoteMux(svc)

	rec := postQuote(t, mux, `{"amount":1000000,"baseCurrency":"KRW","viaFiatBefore":"USD","viaFiatAfter":"USD","targetCurrency":"USD","stableSymbol":"USDT"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, errors.ErrUpstream, appErr.Type)
	assert.Contains(t, appErr.Message, "upbit")
}

func TestCreateQuoteHandlerMethodNotAllowed(t *testing.T) {
	mux := newQuoteMux(&fakeQuoteService{})

	req := httptest.NewRequest(http.MethodGet, "/api/quote", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
