package service

import (
	"context"
	"time"
)

// beginPredict reserves a queue slot and then an in-flight slot on the
// instance. Returns a release func to be deferred.
func (s *Service) beginPredict(ctx context.Context, inst *Instance) (func(), error) {
	// Try to reserve a queue slot with timeout
	select {
	case inst.queueCh <- struct{}{}:
		// reserved queue slot
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-time.After(s.maxWait):
		return func() {}, tooBusyError{modelID: inst.ID}
	}

	// Wait to acquire an in-flight slot
	acquired := false
	defer func() {
		if !acquired {
			<-inst.queueCh
		}
	}()
	select {
	case inst.genCh <- struct{}{}:
		acquired = true
		s.mu.Lock()
		inst.LastUsed = time.Now()
		s.mu.Unlock()
		return func() { <-inst.genCh; <-inst.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-time.After(s.maxWait):
		return func() {}, tooBusyError{modelID: inst.ID}
	}
}
