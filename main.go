package main

import (
	"net/http"

	"github.com/madflojo/tasks"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/swy0123/stablepath/config"
	"github.com/swy0123/stablepath/handlers"
	"github.com/swy0123/stablepath/services"
	"github.com/swy0123/stablepath/upstream"
)

func main() {
	fx.New(
		fx.Provide(
			NewHttpServer,
			NewRootHandler,
			fx.Annotate(
				NewServeMux,
				fx.ParamTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewQuoteHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewRateHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewPriceHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewReportHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewTrendsHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			fx.Annotate(
				handlers.NewHealthHandler,
				fx.As(new(handlers.Handler)),
				fx.ResultTags(`group:"handlers"`),
			),
			handlers.NewMiddlewareHandler,
			services.NewQuoteService,
			services.NewRateService,
			services.NewPriceService,
			services.NewReportService,
			services.NewTrendsService,
			services.NewSchedulerService,
			services.NewAlgoRegistry,
			upstream.NewFXSource,
			upstream.NewUpbitClient,
			upstream.NewGeminiClient,
			upstream.NewPerplexityClient,
			config.New,
			tasks.New,
			zap.NewProduction,
		),
		fx.Invoke(
			func(*http.Server) {},
			func(s services.SchedulerService) { s.ScheduleRateWarmup() },
		),
	).Run()
}
