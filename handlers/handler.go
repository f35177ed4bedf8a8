package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/services"
)

type handler struct {
	quoteService  services.QuoteService
	rateService   services.RateService
	priceService  services.PriceService
	reportService services.ReportService
	trendsService services.TrendsService
	middlewares   MiddlewareHandler

	log *zap.Logger
}

type Handler interface {
	ServeHttp(*http.ServeMux)
}
