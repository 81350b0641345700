// Package model fits the deal-closure classifier: a logistic regression
// over a single feature, the deal amount.
package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// LogisticRegression is a binary classifier over one feature. The feature
// is standardized internally; learned parameters refer to the standardized
// scale.
type LogisticRegression struct {
	LearningRate float64
	Iterations   int

	weight float64
	bias   float64
	mean   float64
	std    float64
}

// NewLogisticRegression creates a classifier with default training
// parameters
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.1,
		Iterations:   1000,
	}
}

// Fit trains the classifier on feature values x and 0/1 labels y by
// batch gradient descent
func (m *LogisticRegression) Fit(x []float64, y []int) {
	m.mean = stat.Mean(x, nil)
	m.std = stat.StdDev(x, nil)
	if m.std == 0 || math.IsNaN(m.std) {
		m.std = 1
	}

	n := float64(len(x))
	for iter := 0; iter < m.Iterations; iter++ {
		var gradW, gradB float64
		for i, xi := range x {
			z := (xi - m.mean) / m.std
			p := sigmoid(m.weight*z + m.bias)
			diff := p - float64(y[i])
			gradW += diff * z
			gradB += diff
		}
		m.weight -= m.LearningRate * gradW / n
		m.bias -= m.LearningRate * gradB / n
	}
}

// Predict returns the 0/1 class for each feature value
func (m *LogisticRegression) Predict(x []float64) []int {
	out := make([]int, len(x))
	for i, xi := range x {
		z := (xi - m.mean) / m.std
		if sigmoid(m.weight*z+m.bias) >= 0.5 {
			out[i] = 1
		}
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// splitIndices shuffles row indices with the fixed seed and carves off the
// test fraction (rounded up), so every run trains and evaluates on the
// same rows.
func splitIndices(n int, testFraction float64, seed int64) (train, test []int) {
	rnd := rand.New(rand.NewSource(seed))
	perm := rnd.Perm(n)

	nTest := int(math.Ceil(float64(n) * testFraction))
	return perm[nTest:], perm[:nTest]
}

func subsetFloats(values []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

func subsetInts(values []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}
