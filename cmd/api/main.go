package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/matteoferrante/spediquote-backend/api/routes"
	"github.com/matteoferrante/spediquote-backend/internal/containers"
	"github.com/matteoferrante/spediquote-backend/internal/couriers"
	"github.com/matteoferrante/spediquote-backend/internal/rating"
	"github.com/matteoferrante/spediquote-backend/pkg/config"
	"github.com/matteoferrante/spediquote-backend/pkg/db"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
	"github.com/matteoferrante/spediquote-backend/pkg/metrics"
	"github.com/matteoferrante/spediquote-backend/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	containerService, err := containers.NewService(containers.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create container service", err)
		os.Exit(1)
	}

	courierService, err := couriers.NewService(couriers.NewRepository(dbClient.DB()), containerService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create courier service", err)
		os.Exit(1)
	}

	if cfg.App.IsDev() {
		if err := courierService.EnsureSeeded(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed default couriers", err)
			os.Exit(1)
		}
		if err := containerService.EnsureSeeded(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed default containers", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	aggregator := rating.NewAggregator(logg, quoteMetrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, courierService, courierService, containerService, aggregator, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
