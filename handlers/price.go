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

type PriceHandler interface {
	GetPrice(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewPriceHandler(priceService services.PriceService, middlewares MiddlewareHandler, log *zap.Logger) PriceHandler {
	return &priceHandler{
		handler: handler{priceService: priceService, middlewares: middlewares, log: log},
	}
}

type priceHandler struct {
	handler
}

func (h *priceHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/price", h.middlewares.AttachRecover(h.GetPrice))
}

func (h *priceHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.GetPriceRequest](r)

	price, err := h.priceService.GetTicker(r.Context(), req.Symbol, req.Market)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.Response[*responses.PriceResponseData]{
		Status: "successful",
		Data: &responses.PriceResponseData{
			Symbol:   price.Symbol,
			Market:   price.Market,
			Price:    price.Price,
			Exchange: price.Exchange,
			AsOf:     price.AsOf,
		},
	})
}
