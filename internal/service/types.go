package service

import (
	"time"

	"irisd/internal/model"
)

// State represents lifecycle state of the service/instances.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Instance represents one loaded model (one per model id).
type Instance struct {
	ID          string
	State       State
	LastUsed    time.Time
	Predictions uint64

	predictor model.Predictor
	loadErr   error
	// closed when the artifact load finishes (success or failure)
	loaded chan struct{}

	// Queueing primitives
	genCh   chan struct{} // buffered: concurrent in-flight predictions
	queueCh chan struct{} // buffered: queue slots
}
