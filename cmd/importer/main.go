package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/config"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/database"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/importer"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/logging"
	"github.com/Alibi7777/Smart-Mobility-Solutions/internal/schema"
)

func main() {
	dataDirFlag := flag.String("data-dir", "", "directory holding the CSV extracts (overrides DATA_DIR)")
	flag.Parse()

	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	dataDir := cfg.Import.DataDir
	if *dataDirFlag != "" {
		dataDir = *dataDirFlag
	}
	if dataDir == "" {
		slog.Error("no data directory configured, set DATA_DIR or pass -data-dir")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.Database.URL); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	slog.Info("starting import",
		"data_dir", dataDir,
		"schema", cfg.Database.Schema,
		"tables", schema.Count(),
	)

	imp := importer.New(pool, cfg.Database.Schema, dataDir)
	report, err := imp.Run(ctx)

	for _, t := range report.Tables {
		switch t.Status {
		case importer.StatusLoaded:
			slog.Info("table loaded", "table", t.Table, "rows", t.Rows)
		case importer.StatusSkipped:
			slog.Info("table skipped", "table", t.Table)
		case importer.StatusFailed:
			slog.Error("table failed", "table", t.Table, "error", t.Err)
		}
	}

	if err != nil {
		slog.Error("import aborted", "error", err)
		os.Exit(1)
	}
	slog.Info("import finished", "run_id", report.RunID)
}
