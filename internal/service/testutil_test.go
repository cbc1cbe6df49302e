package service

import (
	"time"

	"irisd/internal/model"
	"irisd/pkg/types"
)

// fakePredictor returns a fixed prediction and can block on a gate channel to
// hold an in-flight slot open.
type fakePredictor struct {
	classes  []string
	features []string
	out      model.Prediction
	err      error
	gate     chan struct{}
}

func (f *fakePredictor) Classes() []string  { return f.classes }
func (f *fakePredictor) Features() []string { return f.features }
func (f *fakePredictor) Kind() string       { return model.KindLogisticRegression }

func (f *fakePredictor) Predict(x []float64) (model.Prediction, error) {
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return model.Prediction{}, f.err
	}
	return f.out, nil
}

func irisPredictor() *fakePredictor {
	return &fakePredictor{
		classes:  []string{"setosa", "versicolor", "virginica"},
		features: []string{"sepal_length", "sepal_width", "petal_length", "petal_width"},
		out: model.Prediction{
			ClassIndex:    0,
			Class:         "setosa",
			Probabilities: []float64{0.9, 0.07, 0.03},
		},
	}
}

// newTestService wires a Service over an in-memory registry with loaders
// keyed by artifact path.
func newTestService(cfg ServiceConfig, loaders map[string]func() (model.Predictor, error)) *Service {
	cfg.Loader = func(path string) (model.Predictor, error) {
		if fn, ok := loaders[path]; ok {
			return fn()
		}
		return irisPredictor(), nil
	}
	if cfg.MaxWait == 0 {
		cfg.MaxWait = 50 * time.Millisecond
	}
	return NewWithConfig(cfg)
}

func reg(ids ...string) []types.Model {
	out := make([]types.Model, 0, len(ids))
	for _, id := range ids {
		out = append(out, types.Model{ID: id, Name: id, Path: "/models/" + id + ".json"})
	}
	return out
}

func f(v float64) *float64 { return &v }

func irisRequest(modelID string) types.PredictRequest {
	return types.PredictRequest{
		Model:       modelID,
		SepalLength: f(5.1),
		SepalWidth:  f(3.5),
		PetalLength: f(1.4),
		PetalWidth:  f(0.2),
	}
}
