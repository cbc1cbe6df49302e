package service

import (
	"context"
	"sync"
	"time"

	"irisd/internal/model"
	"irisd/pkg/types"
)

type Service struct {
	mu           sync.RWMutex
	state        State
	err          string
	registry     []types.Model
	defaultModel string
	instances    map[string]*Instance
	loader       func(path string) (model.Predictor, error)

	loadsTotal       uint64
	predictionsTotal uint64

	// Queue config
	maxQueueDepth int
	maxInflight   int
	maxWait       time.Duration

	startTime time.Time
	closed    bool
}

// New constructs a Service with package defaults.
func New(reg []types.Model, defaultModel string) *Service {
	return NewWithConfig(ServiceConfig{
		Registry:     reg,
		DefaultModel: defaultModel,
	})
}

// Warmup loads the default model artifact so the readiness probe can gate
// traffic on it. With no default configured the service is ready immediately
// and artifacts load lazily on first request.
func (s *Service) Warmup(ctx context.Context) error {
	if s.defaultModel == "" {
		s.mu.Lock()
		s.state = StateReady
		s.mu.Unlock()
		return nil
	}
	if _, err := s.ensureInstance(ctx, s.defaultModel); err != nil {
		s.mu.Lock()
		s.state = StateError
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.state = StateReady
	s.mu.Unlock()
	return nil
}

// Ready reports whether the service should receive traffic.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.state == StateError {
		return false
	}
	if s.defaultModel == "" {
		return s.state == StateReady
	}
	inst := s.instances[s.defaultModel]
	return inst != nil && inst.State == StateReady
}

// ListModels returns the artifact registry.
func (s *Service) ListModels() []types.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// return a shallow copy to avoid external mutation
	out := make([]types.Model, len(s.registry))
	copy(out, s.registry)
	return out
}

// DefaultModel returns the configured default model id ("" when unset).
func (s *Service) DefaultModel() string { return s.defaultModel }

// Close stops admitting new work. Inflight predictions finish on their own;
// they hold no resources beyond the request goroutine.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
