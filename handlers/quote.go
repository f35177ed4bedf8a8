package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/services"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/utils"
)

type QuoteHandler interface {
	CreateQuote(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewQuoteHandler(quoteService services.QuoteService, middlewares MiddlewareHandler, log *zap.Logger) QuoteHandler {
	return &quoteHandler{
		handler: handler{quoteService: quoteService, middlewares: middlewares, log: log},
	}
}

type quoteHandler struct {
	handler
}

func (q *quoteHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/quote", q.middlewares.AttachRecover(q.CreateQuote))
}

func (q *quoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.CreateQuoteRequest](r)

	res, err := q.quoteService.CreateQuote(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}
