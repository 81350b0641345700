// Package report derives summary statistics and charts from the merged
// deals table. Every output is gated on the presence of the columns it
// needs; a missing column skips that output and never fails the run.
package report

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"crmcli/internal/dataframe"
	"crmcli/internal/domain"
	"crmcli/internal/errors"
)

// StageCount is the number of deals in one pipeline stage
type StageCount struct {
	Stage string
	Count int
}

// Summary holds the aggregate metrics computed from the merged table.
// Each metric group is optional, mirroring the columns it was derived from.
type Summary struct {
	TotalRevenue    float64
	AverageDealSize float64
	HasRevenue      bool

	StageCounts []StageCount

	WinRate    float64
	HasWinRate bool
}

// GenerateSummary computes the metrics available for the table's schema:
// revenue figures from Amount, per-stage counts from Stage, and the win
// rate from Closed.
func GenerateSummary(t *dataframe.Table, logger *slog.Logger) *Summary {
	s := &Summary{}

	if t.HasColumn(domain.ColAmount) {
		amounts := validValues(t.Numeric(domain.ColAmount))
		s.TotalRevenue = floats.Sum(amounts)
		if len(amounts) > 0 {
			s.AverageDealSize = stat.Mean(amounts, nil)
		}
		s.HasRevenue = true
	} else {
		logger.Warn("Amount column missing, skipping revenue metrics")
	}

	if t.HasColumn(domain.ColStage) {
		s.StageCounts = countStages(t)
	} else {
		logger.Warn("Stage column missing, skipping stage breakdown")
	}

	if t.HasColumn(domain.ColClosed) {
		labels := t.BinaryDropEmpty(domain.ColClosed)
		if len(labels) > 0 {
			total := 0
			for _, l := range labels {
				total += l
			}
			rate := float64(total) / float64(len(labels)) * 100
			s.WinRate = math.Round(rate*100) / 100
		}
		s.HasWinRate = true
	} else {
		logger.Warn("Closed column missing, skipping win rate")
	}

	return s
}

// Lines renders the summary as "<key>: <value>" lines in computation
// order: revenue figures, then the stage breakdown, then win rate.
func (s *Summary) Lines() []string {
	var lines []string

	if s.HasRevenue {
		lines = append(lines,
			fmt.Sprintf("Total Revenue: %s", formatNumber(s.TotalRevenue)),
			fmt.Sprintf("Average Deal Size: %s", formatNumber(s.AverageDealSize)),
		)
	}
	for _, sc := range s.StageCounts {
		lines = append(lines, fmt.Sprintf("Deals by Stage (%s): %d", sc.Stage, sc.Count))
	}
	if s.HasWinRate {
		lines = append(lines, fmt.Sprintf("Win Rate (%%): %s", formatNumber(s.WinRate)))
	}

	return lines
}

// WriteSummary writes the summary report to path, one metric per line
func WriteSummary(path string, s *Summary, logger *slog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create reports directory", err)
	}

	content := strings.Join(s.Lines(), "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewStorageError("failed to write summary report", err)
	}

	logger.Info("Summary report saved", slog.String("path", path))
	return nil
}

// countStages tallies deals per stage, ordered by descending count then
// stage name. Rows with an empty stage cell are excluded.
func countStages(t *dataframe.Table) []StageCount {
	counts := make(map[string]int)
	for i := 0; i < t.NumRows(); i++ {
		stage := strings.TrimSpace(t.Cell(i, domain.ColStage))
		if stage == "" {
			continue
		}
		counts[stage]++
	}

	out := make([]StageCount, 0, len(counts))
	for stage, count := range counts {
		out = append(out, StageCount{Stage: stage, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Stage < out[j].Stage
	})

	return out
}

// validValues drops NaN entries produced by empty or unparseable cells
func validValues(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// formatNumber renders a metric without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
