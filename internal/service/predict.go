package service

import (
	"context"

	"irisd/pkg/types"
)

// Predict resolves the target model, admits the request, assembles the
// feature vector in artifact order, and evaluates it.
func (s *Service) Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error) {
	var resp types.PredictResponse
	modelID := req.Model
	if modelID == "" {
		modelID = s.defaultModel
		if modelID == "" {
			// No model specified and no default configured
			return resp, modelNotFoundError{id: "(unspecified)"}
		}
	}
	inst, err := s.ensureInstance(ctx, modelID)
	if err != nil {
		return resp, err
	}
	// Admission: per-instance FIFO queue with bounded inflight
	release, err := s.beginPredict(ctx, inst)
	if err != nil {
		return resp, err
	}
	defer release()

	x, err := featureVector(inst.predictor.Features(), req)
	if err != nil {
		return resp, err
	}
	out, err := inst.predictor.Predict(x)
	if err != nil {
		return resp, ErrInvalidInput(err.Error())
	}

	s.mu.Lock()
	inst.Predictions++
	s.predictionsTotal++
	s.mu.Unlock()
	countPrediction(modelID, out.Class)

	resp = types.PredictResponse{
		PredictedSpecies: out.Class,
		Model:            modelID,
	}
	if out.Probabilities != nil {
		probs := make(map[string]float64, len(out.Probabilities))
		for i, c := range inst.predictor.Classes() {
			probs[c] = out.Probabilities[i]
		}
		resp.Probabilities = probs
	}
	return resp, nil
}

// featureVector orders the request measurements to match the artifact's
// declared feature schema.
func featureVector(features []string, req types.PredictRequest) ([]float64, error) {
	byName := map[string]*float64{
		"sepal_length": req.SepalLength,
		"sepal_width":  req.SepalWidth,
		"petal_length": req.PetalLength,
		"petal_width":  req.PetalWidth,
	}
	x := make([]float64, len(features))
	for i, name := range features {
		v, ok := byName[name]
		if !ok {
			return nil, ErrArtifactUnavailable("artifact requires unknown feature " + name)
		}
		if v == nil {
			return nil, ErrInvalidInput(name + " is required")
		}
		x[i] = *v
	}
	return x, nil
}
