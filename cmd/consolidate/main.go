package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"oilstcli/internal/config"
	"oilstcli/internal/dataprocessing"
	"oilstcli/internal/dataset"
	"oilstcli/internal/exporter"
	"oilstcli/internal/infrastructure"
	"oilstcli/internal/validation"
)

func main() {
	dataDir := flag.String("data", "", "data directory holding the raw sources (defaults to data relative to executable)")
	outFile := flag.String("out", "", "output file name written to the reports directory (defaults to configured name)")
	longDelay := flag.Float64("long-delay-days", 0, "delta days threshold for a long delay (defaults to configured value)")
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

	cfg.Logging.FilePath = paths.GetLogPath("consolidate.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *dataDir == "" {
		*dataDir = paths.DataDir
	}
	if *outFile == "" {
		*outFile = cfg.Pipeline.OutputFile
	}
	if *longDelay == 0 {
		*longDelay = cfg.Pipeline.LongDelayDays
	}

	ctx := infrastructure.WithRunID(context.Background(), uuid.New().String())

	logger.InfoContext(ctx, "Starting consolidation pipeline",
		slog.String("data_dir", *dataDir),
		slog.String("output_file", *outFile),
		slog.Float64("long_delay_days", *longDelay))

	if err := run(ctx, cfg, paths, *dataDir, *outFile, *longDelay); err != nil {
		logger.ErrorContext(ctx, "Consolidation pipeline failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Consolidation pipeline finished",
		slog.String("output", paths.GetReportPath(*outFile)))
}

func run(ctx context.Context, cfg *config.Config, paths *config.Paths, dataDir, outFile string, longDelay float64) error {
	validator := validation.NewSourceValidator(infrastructure.LoggerFromContext(ctx))
	if err := validator.ValidateDataDirectory(dataDir, cfg.Pipeline.Sources); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(paths.ReportsDir); err != nil {
		return err
	}

	loader := dataset.NewLoader(dataDir, cfg.Pipeline.Sources)
	ds, err := loader.LoadAll(ctx)
	if err != nil {
		return err
	}

	orders := dataprocessing.NewEnricher(longDelay).EnrichOrders(ctx, ds.Orders)
	aggregates := dataprocessing.AggregateItems(ctx, ds.Items)
	geos := dataprocessing.DedupeGeolocations(ctx, ds.Geolocations)
	states := dataprocessing.DedupeStates(ctx, ds.States)

	records := dataprocessing.Consolidate(ctx, orders, aggregates, ds.Customers, geos, states)

	writer := exporter.NewCSVWriter(paths)
	return exporter.NewConsolidatedExporter(writer).Export(ctx, records, outFile)
}
