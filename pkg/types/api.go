package types

// PredictRequest carries one flat feature vector of iris measurements in
// centimeters. All four measurements are required; pointers distinguish an
// omitted field from an explicit zero.
type PredictRequest struct {
	// Optional model identifier. If empty, the server default is used.
	// example: iris-v1
	Model string `json:"model,omitempty" example:"iris-v1"`
	// Sepal length in cm.
	// example: 5.1
	SepalLength *float64 `json:"sepal_length" example:"5.1"`
	// Sepal width in cm.
	// example: 3.5
	SepalWidth *float64 `json:"sepal_width" example:"3.5"`
	// Petal length in cm.
	// example: 1.4
	PetalLength *float64 `json:"petal_length" example:"1.4"`
	// Petal width in cm.
	// example: 0.2
	PetalWidth *float64 `json:"petal_width" example:"0.2"`
}

// PredictResponse is returned by POST /predict.
type PredictResponse struct {
	// Predicted class label.
	// example: setosa
	PredictedSpecies string `json:"predicted_species" example:"setosa"`
	// Per-class probabilities (present when the model produces them).
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	// ID of the model that produced the prediction.
	// example: iris-v1
	Model string `json:"model" example:"iris-v1"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// List of available models.
	Models []Model `json:"models"`
}

// MessageResponse is the banner returned by GET /.
type MessageResponse struct {
	// example: iris model API is running
	Message string `json:"message" example:"iris model API is running"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// InstanceStatus summarizes one loaded model instance for /status.
type InstanceStatus struct {
	// ID of the model this instance serves.
	// example: iris-v1
	ModelID string `json:"model_id" example:"iris-v1"`
	// Current lifecycle state of the instance (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Last time this instance served a request (unix seconds).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix" example:"1700000000"`
	// Number of predictions served by this instance.
	// example: 412
	Predictions uint64 `json:"predictions" example:"412"`
	// Current queue length for incoming requests.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Number of in-flight requests currently being processed.
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// Maximum queued requests allowed before backpressure triggers.
	// example: 64
	MaxQueueDepth int `json:"max_queue_depth" example:"64"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Loaded model instances.
	Instances []InstanceStatus `json:"instances"`
	// Overall service state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// ID of the default model used when requests omit one.
	// example: iris-v1
	DefaultModel string `json:"default_model,omitempty" example:"iris-v1"`
	// Last error observed by the service (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Total number of artifact loads since startup.
	// example: 2
	LoadsTotal uint64 `json:"loads_total" example:"2"`
	// Total number of predictions served since startup.
	// example: 412
	PredictionsTotal uint64 `json:"predictions_total" example:"412"`
	// Number of instances currently warming up (loading).
	// example: 0
	WarmupsInProgress int `json:"warmups_in_progress" example:"0"`
}
