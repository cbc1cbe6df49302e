package model

// Artifact kinds understood by the loader.
const (
	KindLogisticRegression = "logistic_regression"
	KindDecisionForest     = "decision_forest"
)

// SchemaVersion is the artifact schema this build reads.
const SchemaVersion = 1

// Artifact is the JSON document produced by exporting a trained classifier.
// It carries the feature schema and class labels alongside the parameters of
// exactly one model kind.
type Artifact struct {
	// Schema version; must equal SchemaVersion.
	Schema int `json:"schema"`
	// Kind selects the parameter set: logistic_regression or decision_forest.
	Kind string `json:"kind"`
	// Optional human-friendly name.
	Name string `json:"name,omitempty"`
	// Ordered feature names; inputs are assembled in this order.
	Features []string `json:"features"`
	// Class labels; prediction indices refer into this slice.
	Classes []string `json:"classes"`

	// Logistic regression parameters. Coefficients has one row per class
	// (or a single row for a binary model) and one column per feature.
	Coefficients [][]float64 `json:"coefficients,omitempty"`
	Intercepts   []float64   `json:"intercepts,omitempty"`

	// Decision forest parameters.
	Trees []Tree `json:"trees,omitempty"`
}

// Tree is one binary threshold tree. Nodes[0] is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is either a split (Feature >= 0) or a leaf (Feature == -1).
// Splits route to Left when x[Feature] <= Threshold, else to Right.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
	// Class index for leaves.
	Class int `json:"class,omitempty"`
}

// Leaf reports whether the node terminates evaluation.
func (n Node) Leaf() bool { return n.Feature < 0 }

// Prediction is the outcome of evaluating one feature vector.
type Prediction struct {
	// Index into the artifact's class labels.
	ClassIndex int
	// Resolved class label.
	Class string
	// Per-class probabilities in class order. Nil when the model kind does
	// not produce calibrated scores.
	Probabilities []float64
}

// Predictor evaluates one feature vector against a loaded model.
type Predictor interface {
	Predict(x []float64) (Prediction, error)
	Classes() []string
	Features() []string
	Kind() string
}
