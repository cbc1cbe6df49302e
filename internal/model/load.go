package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates a JSON model artifact and returns a Predictor
// for its kind.
func Load(path string) (Predictor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	p, err := New(&a)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return p, nil
}

// New builds a Predictor from an in-memory artifact.
func New(a *Artifact) (Predictor, error) {
	if a.Schema != SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d (want %d)", a.Schema, SchemaVersion)
	}
	if len(a.Features) == 0 {
		return nil, fmt.Errorf("artifact declares no features")
	}
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("artifact declares %d classes, need at least 2", len(a.Classes))
	}
	switch a.Kind {
	case KindLogisticRegression:
		return newLogistic(a)
	case KindDecisionForest:
		return newForest(a)
	default:
		return nil, fmt.Errorf("unknown model kind %q", a.Kind)
	}
}

// Peek reads only the descriptive header of an artifact (kind, name) without
// validating parameters. Used by the registry when listing a models dir.
func Peek(path string) (kind, name string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	var hdr struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &hdr); err != nil {
		return "", "", err
	}
	return hdr.Kind, hdr.Name, nil
}
