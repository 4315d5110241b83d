package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/config"
	handlers "github.com/CodMatt/ascenda-hotel-sub000/internal/http"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/obs"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/routes"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/search"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/upstream"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Config     *config.Config
	Router     http.Handler
	Aggregator search.AggregatorService
	Metrics    *obs.Metrics
}

func SetAppConfig() *App {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	customRegistry := prometheus.NewRegistry()
	metrics := obs.NewMetrics(customRegistry)

	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	poller := search.NewPoller(client, cfg.PollMaxAttempts, cfg.PollDelay, metrics, logger)
	agg := search.NewAggregator(poller, client, metrics, logger)
	h := handlers.NewHandler(agg, metrics, logger)

	router := routes.GetRoutes(h, metrics, logger, cfg)

	return &App{
		Config:     cfg,
		Router:     router,
		Aggregator: agg,
		Metrics:    metrics,
	}
}
