package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// CanonicalWorkbookName is the file name the source workbook is stored
// under once copied into the raw data directory.
const CanonicalWorkbookName = "CRM_Sales_Dashboard_25.xlsx"

// Paths contains all the application paths.
// This is the single source of truth for file locations in the pipeline.
type Paths struct {
	RootDir      string
	RawDir       string
	ProcessedDir string
	ReportsDir   string
	LogsDir      string

	// Well-known files
	WorkbookFile  string
	MergedCSV     string
	SummaryReport string
	RevenueChart  string
	TopRepsChart  string
	ModelReport   string
}

// GetPaths returns the application paths relative to the project root.
func GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return GetPathsFrom(wd), nil
}

// GetPathsFrom builds the path set for the project root detected from start.
// The root is start itself, or its parent when start is a "scripts" directory,
// so the pipeline writes to the same tree whether it is launched from the
// project root or from scripts/.
func GetPathsFrom(start string) *Paths {
	root := start
	if filepath.Base(start) == "scripts" {
		root = filepath.Dir(start)
	}

	dataDir := filepath.Join(root, "data")
	rawDir := filepath.Join(dataDir, "raw")
	processedDir := filepath.Join(dataDir, "processed")
	reportsDir := filepath.Join(root, "reports")

	return &Paths{
		RootDir:      root,
		RawDir:       rawDir,
		ProcessedDir: processedDir,
		ReportsDir:   reportsDir,
		LogsDir:      filepath.Join(root, "logs"),

		WorkbookFile:  filepath.Join(rawDir, CanonicalWorkbookName),
		MergedCSV:     filepath.Join(processedDir, "CRM_Sales_Dashboard_Merged_Enhanced.csv"),
		SummaryReport: filepath.Join(reportsDir, "summary_report.txt"),
		RevenueChart:  filepath.Join(reportsDir, "revenue_by_stage.png"),
		TopRepsChart:  filepath.Join(reportsDir, "top_sales_reps.png"),
		ModelReport:   filepath.Join(reportsDir, "model_report.txt"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.RawDir,
		p.ProcessedDir,
		p.ReportsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
