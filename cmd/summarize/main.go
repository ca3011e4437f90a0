package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"oilstcli/internal/analytics"
	"oilstcli/internal/config"
	"oilstcli/internal/dataset"
	"oilstcli/internal/errors"
	"oilstcli/internal/exporter"
	"oilstcli/internal/infrastructure"
	"oilstcli/pkg/contracts/domain"
)

func main() {
	inFile := flag.String("in", "", "consolidated CSV to summarize (defaults to the configured output in the reports directory)")
	dataDir := flag.String("data", "", "data directory holding the raw payments source (defaults to data relative to executable)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath("summarize.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *inFile == "" {
		*inFile = paths.GetReportPath(cfg.Pipeline.OutputFile)
	}
	if *dataDir == "" {
		*dataDir = paths.DataDir
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.New().String())

	logger.InfoContext(ctx, "Starting summary reports",
		slog.String("input", *inFile),
		slog.String("reports_dir", paths.ReportsDir))

	records, err := analytics.LoadConsolidated(*inFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load consolidated dataset", "error", err)
		os.Exit(1)
	}

	// The payments source is optional here: the summary still makes sense
	// without the payments report.
	var payments []domain.Payment
	loader := dataset.NewLoader(*dataDir, cfg.Pipeline.Sources)
	payments, err = loader.LoadPayments(ctx)
	if err != nil {
		if errors.IsType(err, errors.ErrTypeSourceNotFound) {
			logger.WarnContext(ctx, "Payments source not found, skipping payments report", "error", err)
			payments = nil
		} else {
			logger.ErrorContext(ctx, "Failed to load payments", "error", err)
			os.Exit(1)
		}
	}

	reporter := analytics.NewReporter(exporter.NewCSVWriter(paths))
	if err := reporter.WriteReports(ctx, records, payments); err != nil {
		logger.ErrorContext(ctx, "Failed to write summary reports", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Summary reports finished",
		slog.String("reports_dir", paths.ReportsDir))
}
