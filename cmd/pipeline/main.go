// Package main provides the pipeline command that cleans all raw export
// datasets and writes the run report.
package main

import (
	"flag"
	"fmt"
	"os"

	"netreach/internal/config"
	"netreach/internal/logger"
	"netreach/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional, defaults apply)")
	inputDir := flag.String("input", "", "Raw data directory (overrides config)")
	outputDir := flag.String("output", "", "Cleaned data directory (overrides config)")
	reportDir := flag.String("report", "", "Run report directory (overrides config)")
	skipMissing := flag.Bool("skip-missing", false, "Continue processing even if some raw files are missing")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if *inputDir != "" {
		cfg.Pipeline.InputDir = *inputDir
	}

	if *outputDir != "" {
		cfg.Pipeline.OutputDir = *outputDir
	}

	if *reportDir != "" {
		cfg.Pipeline.ReportDir = *reportDir
	}

	if *skipMissing {
		cfg.Pipeline.SkipMissing = true
	}

	if *logLevel != "" {
		cfg.Pipeline.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Pipeline.Logging.Level)

	log.Info("🚀 Starting cleaning pipeline")
	log.Info(fmt.Sprintf("📂 Input: %s", cfg.Pipeline.InputDir))
	log.Info(fmt.Sprintf("🎯 Output: %s", cfg.Pipeline.OutputDir))

	orchestrator := pipeline.New(cfg, log)

	report, err := orchestrator.Run()

	fmt.Println()
	fmt.Print(pipeline.Summary(report))

	if err != nil {
		log.Error(fmt.Sprintf("❌ Pipeline failed: %v", err))
		os.Exit(1)
	}

	log.Info("✅ Pipeline complete", "run_id", report.RunID)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	return config.LoadConfig(path)
}
