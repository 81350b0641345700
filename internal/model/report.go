package model

import (
	"fmt"
	"sort"
	"strings"
)

// classMetrics holds precision/recall/F1/support for one class
type classMetrics struct {
	label     int
	precision float64
	recall    float64
	f1        float64
	support   int
}

// classificationReport renders per-class precision, recall, F1 and
// support, plus accuracy, macro and weighted averages, as a fixed-width
// text block.
func classificationReport(yTrue, yPred []int) string {
	classes := sortedClasses(yTrue, yPred)
	metrics := make([]classMetrics, 0, len(classes))

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	total := len(yTrue)

	for _, c := range classes {
		var tp, fp, fn int
		for i := range yTrue {
			switch {
			case yPred[i] == c && yTrue[i] == c:
				tp++
			case yPred[i] == c && yTrue[i] != c:
				fp++
			case yPred[i] != c && yTrue[i] == c:
				fn++
			}
		}

		m := classMetrics{label: c, support: tp + fn}
		if tp+fp > 0 {
			m.precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			m.recall = float64(tp) / float64(tp+fn)
		}
		if m.precision+m.recall > 0 {
			m.f1 = 2 * m.precision * m.recall / (m.precision + m.recall)
		}
		metrics = append(metrics, m)
	}

	const width = 12
	var b strings.Builder

	fmt.Fprintf(&b, "%*s  %9s %9s %9s %9s\n", width, "", "precision", "recall", "f1-score", "support")
	b.WriteString("\n")
	for _, m := range metrics {
		fmt.Fprintf(&b, "%*d  %9.2f %9.2f %9.2f %9d\n", width, m.label, m.precision, m.recall, m.f1, m.support)
	}
	b.WriteString("\n")

	if total > 0 {
		accuracy := float64(correct) / float64(total)
		fmt.Fprintf(&b, "%*s  %9s %9s %9.2f %9d\n", width, "accuracy", "", "", accuracy, total)
	}

	var macroP, macroR, macroF, weightedP, weightedR, weightedF float64
	for _, m := range metrics {
		macroP += m.precision
		macroR += m.recall
		macroF += m.f1
		weightedP += m.precision * float64(m.support)
		weightedR += m.recall * float64(m.support)
		weightedF += m.f1 * float64(m.support)
	}
	if n := float64(len(metrics)); n > 0 {
		macroP /= n
		macroR /= n
		macroF /= n
	}
	if total > 0 {
		weightedP /= float64(total)
		weightedR /= float64(total)
		weightedF /= float64(total)
	}

	fmt.Fprintf(&b, "%*s  %9.2f %9.2f %9.2f %9d\n", width, "macro avg", macroP, macroR, macroF, total)
	fmt.Fprintf(&b, "%*s  %9.2f %9.2f %9.2f %9d\n", width, "weighted avg", weightedP, weightedR, weightedF, total)

	return b.String()
}

// sortedClasses returns the ascending set of labels seen in either slice
func sortedClasses(yTrue, yPred []int) []int {
	seen := make(map[int]bool)
	for _, y := range yTrue {
		seen[y] = true
	}
	for _, y := range yPred {
		seen[y] = true
	}

	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	return classes
}
