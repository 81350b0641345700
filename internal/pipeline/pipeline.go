// Package pipeline wires the CRM ingestion stages together:
// acquisition, sheet resolution, loading, merge, reporting and model
// training, strictly in that order.
package pipeline

import (
	"context"
	"log/slog"

	"crmcli/internal/config"
	"crmcli/internal/dataframe"
	"crmcli/internal/domain"
	"crmcli/internal/exporter"
	"crmcli/internal/model"
	"crmcli/internal/report"
	"crmcli/internal/workbook"
)

// Options are the per-run inputs, normally sourced from CLI flags
type Options struct {
	// ExcelPath is the candidate source workbook. Empty means the
	// canonical raw-data location.
	ExcelPath string
	// DealsSheet and TeamsSheet override heuristic sheet detection for
	// their role when non-empty.
	DealsSheet string
	TeamsSheet string
}

// Runner executes one pipeline run
type Runner struct {
	paths  *config.Paths
	logger *slog.Logger
	csv    *exporter.CSVWriter
	charts *report.ChartRenderer
}

// NewRunner creates a pipeline runner
func NewRunner(paths *config.Paths, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		paths:  paths,
		logger: logger,
		csv:    exporter.NewCSVWriter(logger),
		charts: report.NewChartRenderer(logger),
	}
}

// Run executes the pipeline once. Missing columns degrade individual
// outputs with a warning; anything else is fatal and aborts the run.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	logger := r.logger

	if err := r.paths.EnsureDirectories(); err != nil {
		return err
	}

	source := opts.ExcelPath
	if source == "" {
		source = r.paths.WorkbookFile
	}
	workbookPath, err := workbook.Ensure(source, r.paths.RawDir, config.CanonicalWorkbookName, logger)
	if err != nil {
		return err
	}

	f, err := workbook.Open(workbookPath)
	if err != nil {
		return err
	}
	defer f.Close()

	resolution := workbook.Resolve(f.GetSheetList(), opts.DealsSheet, opts.TeamsSheet, logger)

	deals, err := workbook.LoadSheet(f, resolution.DealsSheet, logger)
	if err != nil {
		return err
	}
	teams, err := workbook.LoadSheet(f, resolution.TeamsSheet, logger)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Deals shape",
		slog.Int("rows", deals.NumRows()), slog.Int("columns", deals.NumCols()))
	logger.InfoContext(ctx, "Teams shape",
		slog.Int("rows", teams.NumRows()), slog.Int("columns", teams.NumCols()))

	merged := r.merge(deals, teams)

	if err := r.csv.WriteTable(r.paths.MergedCSV, merged); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Processed data saved", slog.String("path", r.paths.MergedCSV))

	summary := report.GenerateSummary(merged, logger)
	if err := report.WriteSummary(r.paths.SummaryReport, summary, logger); err != nil {
		return err
	}

	if _, err := r.charts.RevenueByStage(merged, r.paths.RevenueChart); err != nil {
		return err
	}
	if _, err := r.charts.TopSalesReps(merged, r.paths.TopRepsChart); err != nil {
		return err
	}

	if result, trained := model.Train(merged, logger); trained {
		if err := model.WriteReport(r.paths.ModelReport, result, logger); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Pipeline complete")
	return nil
}

// merge left-joins deals with teams on the sales-rep column when both
// sides carry it; otherwise the deals table passes through unchanged.
func (r *Runner) merge(deals, teams *dataframe.Table) *dataframe.Table {
	if deals.HasColumn(domain.ColSalesRep) && teams.HasColumn(domain.ColSalesRep) {
		merged := dataframe.LeftJoin(deals, teams, domain.ColSalesRep)
		r.logger.Info("Merged deals with teams",
			slog.Int("rows", merged.NumRows()),
			slog.Int("columns", merged.NumCols()))
		return merged
	}

	r.logger.Warn("Could not merge on SalesRep, saving deals only")
	return deals
}
