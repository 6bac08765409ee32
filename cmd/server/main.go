package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"banking-reports/internal/config"
	"banking-reports/internal/database"
	"banking-reports/internal/middleware"
	"banking-reports/internal/server"
	"banking-reports/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, err := config.LoadPolicy(cfg.Reports.PolicyFile)
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	engine := services.NewReportEngine(services.NewGormLedgerReaders(db.DB), policy, cfg.Reports, registry)

	api := server.NewWebAPI(cfg, server.Dependencies{
		DB:         db.DB,
		Dispatcher: engine.Dispatcher,
		Breaker:    engine.Breaker,
		Gatherer:   prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	})
	return api.Run(ctx)
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(middleware.NewTraceHandler(handler)))
}
