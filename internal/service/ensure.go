package service

import (
	"context"
	"time"

	"irisd/internal/registry"
)

// ensureInstance returns the instance for modelID, loading the artifact on
// first use. Concurrent callers for the same id share one load; the loser of
// the race waits on the winner's loaded channel.
func (s *Service) ensureInstance(ctx context.Context, modelID string) (*Instance, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrArtifactUnavailable("service shutting down")
	}
	if inst, ok := s.instances[modelID]; ok {
		s.mu.Unlock()
		return s.awaitLoad(ctx, inst)
	}
	entry, ok := registry.Find(s.registry, modelID)
	if !ok {
		s.mu.Unlock()
		return nil, modelNotFoundError{id: modelID}
	}
	inst := &Instance{
		ID:      modelID,
		State:   StateLoading,
		loaded:  make(chan struct{}),
		genCh:   make(chan struct{}, s.maxInflight),
		queueCh: make(chan struct{}, s.maxQueueDepth),
	}
	s.instances[modelID] = inst
	s.mu.Unlock()

	start := time.Now()
	p, err := s.loader(entry.Path)

	s.mu.Lock()
	if err != nil {
		inst.State = StateError
		inst.loadErr = err
		s.err = err.Error()
	} else {
		inst.State = StateReady
		inst.predictor = p
		s.loadsTotal++
		observeModelLoad(modelID, time.Since(start))
	}
	s.mu.Unlock()
	close(inst.loaded)

	if err != nil {
		return nil, ErrArtifactUnavailable("model " + modelID + " failed to load: " + err.Error())
	}
	return inst, nil
}

// awaitLoad blocks until the instance finished loading or ctx is done.
func (s *Service) awaitLoad(ctx context.Context, inst *Instance) (*Instance, error) {
	select {
	case <-inst.loaded:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if inst.loadErr != nil {
		return nil, ErrArtifactUnavailable("model " + inst.ID + " failed to load: " + inst.loadErr.Error())
	}
	return inst, nil
}
