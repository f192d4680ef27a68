package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/filedeck/filedeck/internal/client/cli"
	"github.com/filedeck/filedeck/internal/client/config"
	"github.com/filedeck/filedeck/internal/client/metrics"
	"github.com/filedeck/filedeck/internal/logging"
	"github.com/filedeck/filedeck/internal/tracing"
)

func main() {

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	shutdown, err := tracing.Init(ctx, "filedeck", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("initializing tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn(context.Background(), "tracer shutdown failed", "error", err)
		}
	}()

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Warn(context.Background(), "metrics server stopped", "error", err)
			}
		}()
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
