package model

import "fmt"

// forest evaluates a bag of binary threshold trees by majority vote.
// Probabilities are the vote fractions, matching how scikit-learn averages
// per-tree votes for hard-voting ensembles.
type forest struct {
	classes  []string
	features []string
	trees    []Tree
}

func newForest(a *Artifact) (*forest, error) {
	if len(a.Trees) == 0 {
		return nil, fmt.Errorf("decision_forest artifact has no trees")
	}
	for ti, t := range a.Trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf() {
				if n.Class < 0 || n.Class >= len(a.Classes) {
					return nil, fmt.Errorf("tree %d node %d: class index %d out of range", ti, ni, n.Class)
				}
				continue
			}
			if n.Feature >= len(a.Features) {
				return nil, fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
			// children must point forward so evaluation terminates
			if n.Left <= ni || n.Right <= ni {
				return nil, fmt.Errorf("tree %d node %d: child index does not advance", ti, ni)
			}
		}
	}
	return &forest{classes: a.Classes, features: a.Features, trees: a.Trees}, nil
}

func (m *forest) Classes() []string  { return m.classes }
func (m *forest) Features() []string { return m.features }
func (m *forest) Kind() string       { return KindDecisionForest }

func (m *forest) Predict(x []float64) (Prediction, error) {
	if len(x) != len(m.features) {
		return Prediction{}, fmt.Errorf("feature vector has %d values, want %d", len(x), len(m.features))
	}
	votes := make([]float64, len(m.classes))
	for _, t := range m.trees {
		votes[t.eval(x)]++
	}
	best := 0
	for i := 1; i < len(votes); i++ {
		if votes[i] > votes[best] {
			best = i
		}
	}
	probs := make([]float64, len(votes))
	for i, v := range votes {
		probs[i] = v / float64(len(m.trees))
	}
	return Prediction{ClassIndex: best, Class: m.classes[best], Probabilities: probs}, nil
}

// eval walks the tree from the root to a leaf. Structure is validated at
// load time, so the walk cannot cycle or index out of range.
func (t Tree) eval(x []float64) int {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf() {
			return n.Class
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
