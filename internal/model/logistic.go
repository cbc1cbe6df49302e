package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// logistic evaluates a multinomial (or binary) logistic regression using
// gonum matrix primitives. The weight matrix has one row per class.
type logistic struct {
	classes  []string
	features []string
	w        *mat.Dense
	b        *mat.VecDense
	// binary models store a single coefficient row for the positive class
	binary bool
}

func newLogistic(a *Artifact) (*logistic, error) {
	rows := len(a.Coefficients)
	cols := len(a.Features)
	switch {
	case rows == len(a.Classes):
		// multinomial: one row per class
	case rows == 1 && len(a.Classes) == 2:
		// binary: single row scores the second (positive) class
	default:
		return nil, fmt.Errorf("coefficient rows %d do not match %d classes", rows, len(a.Classes))
	}
	if len(a.Intercepts) != rows {
		return nil, fmt.Errorf("intercepts %d do not match coefficient rows %d", len(a.Intercepts), rows)
	}
	data := make([]float64, 0, rows*cols)
	for i, row := range a.Coefficients {
		if len(row) != cols {
			return nil, fmt.Errorf("coefficient row %d has %d values, want %d features", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &logistic{
		classes:  a.Classes,
		features: a.Features,
		w:        mat.NewDense(rows, cols, data),
		b:        mat.NewVecDense(rows, append([]float64(nil), a.Intercepts...)),
		binary:   rows == 1,
	}, nil
}

func (m *logistic) Classes() []string  { return m.classes }
func (m *logistic) Features() []string { return m.features }
func (m *logistic) Kind() string       { return KindLogisticRegression }

func (m *logistic) Predict(x []float64) (Prediction, error) {
	if len(x) != len(m.features) {
		return Prediction{}, fmt.Errorf("feature vector has %d values, want %d", len(x), len(m.features))
	}
	rows, _ := m.w.Dims()
	scores := mat.NewVecDense(rows, nil)
	scores.MulVec(m.w, mat.NewVecDense(len(x), x))
	scores.AddVec(scores, m.b)

	var probs []float64
	if m.binary {
		p := sigmoid(scores.AtVec(0))
		probs = []float64{1 - p, p}
	} else {
		probs = softmax(scores.RawVector().Data)
	}
	idx := floats.MaxIdx(probs)
	return Prediction{
		ClassIndex:    idx,
		Class:         m.classes[idx],
		Probabilities: probs,
	}, nil
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// softmax normalizes scores into probabilities. The max score is subtracted
// first so large logits do not overflow Exp.
func softmax(scores []float64) []float64 {
	out := make([]float64, len(scores))
	max := floats.Max(scores)
	for i, s := range scores {
		out[i] = math.Exp(s - max)
	}
	sum := floats.Sum(out)
	for i := range out {
		out[i] /= sum
	}
	return out
}
