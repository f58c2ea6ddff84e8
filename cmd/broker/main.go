package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/brokerkit/internal/httpapi"
	"github.com/dmitrymomot/brokerkit/pkg/config"
	"github.com/dmitrymomot/brokerkit/pkg/fanout"
	"github.com/dmitrymomot/brokerkit/pkg/httpserver"
	"github.com/dmitrymomot/brokerkit/pkg/logger"
	"github.com/dmitrymomot/brokerkit/pkg/memq"
)

type appConfig struct {
	HTTP httpserver.Config
	Log  logger.Config

	// StreamKeepAlive is the keepalive interval for subscription streams.
	StreamKeepAlive time.Duration `env:"STREAM_KEEPALIVE" envDefault:"15s"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithAttr(slog.String("service", "broker")),
		logger.WithContextValue("req_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	router := httpapi.NewRouter(httpapi.Deps{
		Broker:          memq.NewBroker(),
		Hub:             fanout.NewHub(),
		Logger:          log,
		StreamKeepAlive: cfg.StreamKeepAlive,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
