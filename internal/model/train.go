package model

import (
	"log/slog"
	"os"
	"path/filepath"

	"crmcli/internal/dataframe"
	"crmcli/internal/domain"
	"crmcli/internal/errors"
)

const (
	// testFraction is the held-out share of rows used for evaluation
	testFraction = 0.2
	// splitSeed fixes the shuffle so every run evaluates on the same rows
	splitSeed = 42
	// minRows is the smallest table that still yields a non-empty train
	// and test partition
	minRows = 2
)

// Result holds the artifacts of one fit-and-evaluate pass
type Result struct {
	Report    string
	TrainSize int
	TestSize  int
}

// Train fits a logistic regression predicting deal closure from deal
// amount on an 80/20 split and evaluates it on the held-out rows. Returns
// trained=false with a warning when the table lacks the Closed or Amount
// column, or has too few rows to split; the pipeline continues either way.
func Train(t *dataframe.Table, logger *slog.Logger) (*Result, bool) {
	if !t.HasColumn(domain.ColClosed) || !t.HasColumn(domain.ColAmount) {
		logger.Warn("Not enough columns for model training")
		return nil, false
	}
	if t.NumRows() < minRows {
		logger.Warn("Not enough rows for model training", slog.Int("rows", t.NumRows()))
		return nil, false
	}

	// Amount is the sole feature, missing values filled with zero;
	// Closed coerced to the 0/1 label
	x := t.NumericFilled(domain.ColAmount)
	y := t.Binary(domain.ColClosed)

	trainIdx, testIdx := splitIndices(t.NumRows(), testFraction, splitSeed)

	clf := NewLogisticRegression()
	clf.Fit(subsetFloats(x, trainIdx), subsetInts(y, trainIdx))

	yTest := subsetInts(y, testIdx)
	yPred := clf.Predict(subsetFloats(x, testIdx))

	logger.Info("Model trained",
		slog.Int("train_rows", len(trainIdx)),
		slog.Int("test_rows", len(testIdx)))

	return &Result{
		Report:    classificationReport(yTest, yPred),
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
	}, true
}

// WriteReport writes the classification report to path
func WriteReport(path string, result *Result, logger *slog.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create reports directory", err)
	}
	if err := os.WriteFile(path, []byte(result.Report), 0644); err != nil {
		return errors.NewStorageError("failed to write model report", err)
	}

	logger.Info("Model report saved", slog.String("path", path))
	return nil
}
