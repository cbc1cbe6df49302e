package types

// Model represents a discoverable classifier artifact on disk.
type Model struct {
	// Stable identifier for the model (artifact file name without extension).
	// example: iris-v1
	ID string `json:"id" example:"iris-v1"`
	// Human-friendly name taken from the artifact, falls back to the ID.
	// example: iris logistic regression v1
	Name string `json:"name" example:"iris logistic regression v1"`
	// Absolute path to the artifact file on disk.
	// example: /var/lib/irisd/models/iris-v1.json
	Path string `json:"path" example:"/var/lib/irisd/models/iris-v1.json"`
	// Artifact kind (logistic_regression or decision_forest).
	// example: logistic_regression
	Kind string `json:"kind,omitempty" example:"logistic_regression"`
}
