package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathsFrom(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		wantRoot string
	}{
		{
			name:     "plain directory is its own root",
			start:    filepath.Join("home", "user", "crm"),
			wantRoot: filepath.Join("home", "user", "crm"),
		},
		{
			name:     "scripts directory resolves to parent",
			start:    filepath.Join("home", "user", "crm", "scripts"),
			wantRoot: filepath.Join("home", "user", "crm"),
		},
		{
			name:     "directory merely containing scripts keeps itself",
			start:    filepath.Join("home", "user", "scripts-archive"),
			wantRoot: filepath.Join("home", "user", "scripts-archive"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := GetPathsFrom(tt.start)

			assert.Equal(t, tt.wantRoot, paths.RootDir)
			assert.Equal(t, filepath.Join(tt.wantRoot, "data", "raw"), paths.RawDir)
			assert.Equal(t, filepath.Join(tt.wantRoot, "data", "processed"), paths.ProcessedDir)
			assert.Equal(t, filepath.Join(tt.wantRoot, "reports"), paths.ReportsDir)
		})
	}
}

func TestGetPathsFrom_WellKnownFiles(t *testing.T) {
	paths := GetPathsFrom("crm")

	assert.Equal(t, filepath.Join("crm", "data", "raw", CanonicalWorkbookName), paths.WorkbookFile)
	assert.Equal(t, filepath.Join("crm", "data", "processed", "CRM_Sales_Dashboard_Merged_Enhanced.csv"), paths.MergedCSV)
	assert.Equal(t, filepath.Join("crm", "reports", "summary_report.txt"), paths.SummaryReport)
	assert.Equal(t, filepath.Join("crm", "reports", "revenue_by_stage.png"), paths.RevenueChart)
	assert.Equal(t, filepath.Join("crm", "reports", "top_sales_reps.png"), paths.TopRepsChart)
	assert.Equal(t, filepath.Join("crm", "reports", "model_report.txt"), paths.ModelReport)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	root := t.TempDir()
	paths := GetPathsFrom(root)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.RawDir, paths.ProcessedDir, paths.ReportsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent
	require.NoError(t, paths.EnsureDirectories())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0644))

	assert.True(t, FileExists(existing))
	assert.False(t, FileExists(filepath.Join(dir, "absent.txt")))
}
