package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swy0123/stablepath/errors"
)

type MiddlewareHandler interface {
	AttachRecover(http.HandlerFunc) http.HandlerFunc
}

type middlewareHandler struct {
	log *zap.Logger
}

func NewMiddlewareHandler(log *zap.Logger) MiddlewareHandler {
	return &middlewareHandler{log: log}
}

// AttachRecover converts panics into serialized AppErrors. Bind panics with
// an AppError on malformed input; anything else becomes a fatal error.
func (m *middlewareHandler) AttachRecover(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if appErr, ok := rec.(errors.AppError); ok {
					appErr.Serialize(w)
					return
				}
				m.log.Error("panic in handler", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				errors.NewUnknownError(rec).Serialize(w)
			}
		}()
		h.ServeHTTP(w, r)
	}
}
