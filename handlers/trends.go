package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/services"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/utils"
)

type TrendsHandler interface {
	CreateTrends(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewTrendsHandler(trendsService services.TrendsService, middlewares MiddlewareHandler, log *zap.Logger) TrendsHandler {
	return &trendsHandler{
		handler: handler{trendsService: trendsService, middlewares: middlewares, log: log},
	}
}

type trendsHandler struct {
	handler
}

func (h *trendsHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/trends", h.middlewares.AttachRecover(h.CreateTrends))
}

func (h *trendsHandler) CreateTrends(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.CreateTrendsRequest](r)

	res, err := h.trendsService.CreateTrends(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}
