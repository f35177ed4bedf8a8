package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
	"github.com/swy0123/stablepath/services"
	"github.com/swy0123/stablepath/types/requests"
	"github.com/swy0123/stablepath/utils"
)

type ReportHandler interface {
	CreateReport(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewReportHandler(reportService services.ReportService, middlewares MiddlewareHandler, log *zap.Logger) ReportHandler {
	return &reportHandler{
		handler: handler{reportService: reportService, middlewares: middlewares, log: log},
	}
}

type reportHandler struct {
	handler
}

func (h *reportHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/report", h.middlewares.AttachRecover(h.CreateReport))
}

func (h *reportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	req := utils.Bind[requests.CreateReportRequest](r)

	res, err := h.reportService.CreateReport(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}
