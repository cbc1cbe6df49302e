package service

import (
	"time"

	"irisd/pkg/types"
)

// Status builds a detailed status response for /status.
func (s *Service) Status() types.StatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := types.StatusResponse{
		State:            string(s.state),
		DefaultModel:     s.defaultModel,
		LastError:        s.err,
		UptimeSeconds:    int64(time.Since(s.startTime).Seconds()),
		ServerTimeUnix:   time.Now().Unix(),
		LoadsTotal:       s.loadsTotal,
		PredictionsTotal: s.predictionsTotal,
	}
	resp.Instances = make([]types.InstanceStatus, 0, len(s.instances))
	warmups := 0
	for _, inst := range s.instances {
		if inst.State == StateLoading {
			warmups++
		}
		resp.Instances = append(resp.Instances, types.InstanceStatus{
			ModelID:       inst.ID,
			State:         string(inst.State),
			LastUsed:      inst.LastUsed.Unix(),
			Predictions:   inst.Predictions,
			QueueLen:      len(inst.queueCh),
			Inflight:      len(inst.genCh),
			MaxQueueDepth: cap(inst.queueCh),
		})
	}
	resp.WarmupsInProgress = warmups
	return resp
}
