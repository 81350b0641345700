// Command pipeline runs the CRM sales dashboard ETL: it ingests an Excel
// workbook, merges the deals and sales-team sheets, writes the merged CSV,
// derives summary statistics and charts, and fits a deal-closure model.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"crmcli/internal/config"
	"crmcli/internal/infrastructure"
	"crmcli/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	excelPath := flag.String("excel", "", "path to the source Excel workbook (defaults to the canonical raw-data copy)")
	dealsSheet := flag.String("deals-sheet", "", "name of the deals sheet (overrides detection)")
	teamsSheet := flag.String("teams-sheet", "", "name of the sales team sheet (overrides detection)")
	configFile := flag.String("config", "", "path to an optional YAML config file")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	paths, err := config.GetPaths()
	if err != nil {
		return err
	}
	if cfg.Logging.FilePath == "logs/pipeline.log" {
		cfg.Logging.FilePath = paths.GetLogPath("pipeline.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	// Flags override config for sheet selection
	deals := *dealsSheet
	if deals == "" {
		deals = cfg.Workbook.DealsSheet
	}
	teams := *teamsSheet
	if teams == "" {
		teams = cfg.Workbook.TeamsSheet
	}

	logger.InfoContext(ctx, "Starting CRM data pipeline",
		slog.String("root", paths.RootDir))

	runner := pipeline.NewRunner(paths, logger)
	return runner.Run(ctx, pipeline.Options{
		ExcelPath:  *excelPath,
		DealsSheet: deals,
		TeamsSheet: teams,
	})
}
