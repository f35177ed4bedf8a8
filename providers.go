package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/MadAppGang/httplog"
	lzap "github.com/MadAppGang/httplog/zap"
	gorilla "github.com/gorilla/handlers"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/handlers"
)

func NewHttpServer(lc fx.Lifecycle, cfg *config.Config, root http.Handler, log *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      root,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

func NewServeMux(routers []handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for _, router := range routers {
		router.ServeHttp(mux)
	}
	return mux
}

// NewRootHandler wraps the mux with request logging, CORS, and recovery.
func NewRootHandler(mux *http.ServeMux, log *zap.Logger) http.Handler {
	logged := httplog.LoggerWithFormatter(
		lzap.DefaultZapLogger(log, zapcore.InfoLevel, "request"),
	)(mux)

	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type"}),
	)

	return gorilla.RecoveryHandler()(cors(logged))
}
