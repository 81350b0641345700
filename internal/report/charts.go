package report

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"crmcli/internal/dataframe"
	"crmcli/internal/domain"
	"crmcli/internal/errors"
)

// topRepsLimit caps the representatives chart at the highest earners
const topRepsLimit = 10

// ChartRenderer renders the report bar charts as PNG files
type ChartRenderer struct {
	logger *slog.Logger
}

// NewChartRenderer creates a chart renderer
func NewChartRenderer(logger *slog.Logger) *ChartRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartRenderer{logger: logger}
}

// RevenueByStage renders summed amount grouped by stage as a bar chart.
// Returns false without error when the required columns are absent.
func (r *ChartRenderer) RevenueByStage(t *dataframe.Table, path string) (bool, error) {
	if !t.HasColumn(domain.ColAmount) || !t.HasColumn(domain.ColStage) {
		r.logger.Debug("Skipping revenue-by-stage chart, columns missing")
		return false, nil
	}

	labels, values := groupSum(t, domain.ColStage, domain.ColAmount)
	// Stages in ascending name order
	sortPairsByLabel(labels, values)

	if err := r.saveBarChart(path, "Revenue by Stage", "Revenue", labels, values); err != nil {
		return false, err
	}

	r.logger.Info("Chart saved", slog.String("path", path))
	return true, nil
}

// TopSalesReps renders the top representatives by summed amount,
// descending. Returns false without error when the required columns are
// absent.
func (r *ChartRenderer) TopSalesReps(t *dataframe.Table, path string) (bool, error) {
	if !t.HasColumn(domain.ColSalesRep) || !t.HasColumn(domain.ColAmount) {
		r.logger.Debug("Skipping top-sales-reps chart, columns missing")
		return false, nil
	}

	labels, values := groupSum(t, domain.ColSalesRep, domain.ColAmount)
	sortPairsByValueDesc(labels, values)
	if len(labels) > topRepsLimit {
		labels = labels[:topRepsLimit]
		values = values[:topRepsLimit]
	}

	if err := r.saveBarChart(path, "Top 10 Sales Reps by Revenue", "Revenue", labels, values); err != nil {
		return false, err
	}

	r.logger.Info("Chart saved", slog.String("path", path))
	return true, nil
}

// saveBarChart renders one bar chart to a PNG file
func (r *ChartRenderer) saveBarChart(path, title, yLabel string, labels []string, values []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create reports directory", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.X.Tick.Label.Rotation = -0.5
	p.X.Tick.Label.XAlign = -0.8

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return errors.NewStorageError("failed to build bar chart", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.NewStorageError("failed to save chart image", err)
	}

	return nil
}

// groupSum sums the value column per distinct key, excluding rows with an
// empty key. Missing or unparseable values contribute nothing.
func groupSum(t *dataframe.Table, keyCol, valCol string) ([]string, []float64) {
	values := t.Numeric(valCol)
	sums := make(map[string]float64)

	for i := 0; i < t.NumRows(); i++ {
		key := strings.TrimSpace(t.Cell(i, keyCol))
		if key == "" {
			continue
		}
		v := values[i]
		if math.IsNaN(v) {
			v = 0
		}
		sums[key] += v
	}

	labels := make([]string, 0, len(sums))
	for key := range sums {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	out := make([]float64, len(labels))
	for i, key := range labels {
		out[i] = sums[key]
	}
	return labels, out
}

func sortPairsByLabel(labels []string, values []float64) {
	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return labels[idx[a]] < labels[idx[b]] })
	applyOrder(labels, values, idx)
}

func sortPairsByValueDesc(labels []string, values []float64) {
	idx := make([]int, len(labels))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if values[idx[a]] != values[idx[b]] {
			return values[idx[a]] > values[idx[b]]
		}
		return labels[idx[a]] < labels[idx[b]]
	})
	applyOrder(labels, values, idx)
}

func applyOrder(labels []string, values []float64, idx []int) {
	newLabels := make([]string, len(labels))
	newValues := make([]float64, len(values))
	for i, j := range idx {
		newLabels[i] = labels[j]
		newValues[i] = values[j]
	}
	copy(labels, newLabels)
	copy(values, newValues)
}
