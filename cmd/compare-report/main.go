package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"compareengine/internal/config"
	"compareengine/internal/exporter"
	"compareengine/internal/infrastructure"
	"compareengine/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to config.yaml if present)")
	pipelinePath := flag.String("pipeline", "", "path to pipeline definition YAML (required)")
	outputDir := flag.String("out", "", "output directory (defaults to the configured output dir)")
	formats := flag.String("formats", "", "comma-separated export formats: csv, json, xlsx (defaults to configured formats)")
	flag.Parse()

	if *pipelinePath == "" {
		slog.Error("Missing required -pipeline flag",
			"hint", "point it at a pipeline definition YAML")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *outputDir == "" {
		*outputDir = cfg.Output.Dir
	}
	exportFormats := cfg.Output.Formats
	if *formats != "" {
		exportFormats = strings.Split(*formats, ",")
		for i := range exportFormats {
			exportFormats[i] = strings.TrimSpace(exportFormats[i])
		}
	}

	def, err := pipeline.LoadDefinition(*pipelinePath)
	if err != nil {
		logger.Error("Failed to load pipeline definition", "path", *pipelinePath, "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.EnsureRunID(context.Background())
	runner := pipeline.NewRunner(logger)

	results, err := runner.Run(ctx, def)
	if err != nil {
		logger.ErrorContext(ctx, "Pipeline run failed", "pipeline", def.Name, "error", err)
		os.Exit(1)
	}

	writer := exporter.NewWriter(*outputDir, cfg.Output.ExcelBOM)
	if err := runner.Export(ctx, def, results, writer, exportFormats); err != nil {
		logger.ErrorContext(ctx, "Export failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Report complete",
		"pipeline", def.Name,
		"outputs", len(def.Outputs),
		"formats", strings.Join(exportFormats, ","),
		"output_dir", *outputDir,
	)
}
