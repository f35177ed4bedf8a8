package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/utils"
)

type HealthHandler interface {
	ServeHttp(*http.ServeMux)
}

func NewHealthHandler(log *zap.Logger) HealthHandler {
	return &healthHandler{handler: handler{log: log}}
}

type healthHandler struct {
	handler
}

func (h *healthHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, 200, map[string]string{"status": "ok"})
	})
}
