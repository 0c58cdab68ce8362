package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/config"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/database"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/feeder"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/logging"
)

func main() {
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	f := feeder.New(pool, cfg.Database.Schema)
	err = f.Run(ctx, cfg.Feeder.TickInterval, cfg.Feeder.BatchMin, cfg.Feeder.BatchMax)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("feeder stopped with error", "error", err)
		os.Exit(1)
	}
}
