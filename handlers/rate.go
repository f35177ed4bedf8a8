package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/services"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/types/responses"
	"github.com/swy0123/stablepath/utils"
)

type RateHandler interface {
	GetRate(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewRateHandler(rateService services.RateService, middlewares MiddlewareHandler, log *zap.Logger) RateHandler {
	return &rateHandler{
		handler: handler{rateService: rateService, middlewares: middlewares, log: log},
	}
}

type rateHandler struct {
	handler
}

func (h *rateHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/rate", h.middlewares.AttachRecover(h.GetRate))
}

func (h *rateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.GetRateRequest](r)

	rate, err := h.rateService.GetRate(r.Context(), req.Base, req.Quote)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.Response[*responses.RateResponseData]{
		Status: "successful",
		Data: &responses.RateResponseData{
			Base:   rate.Base,
			Quote:  rate.Quote,
			Rate:   rate.Rate,
			AsOf:   rate.AsOf,
			Source: rate.Source,
		},
	})
}
