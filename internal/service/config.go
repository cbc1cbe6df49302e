package service

import (
	"time"

	"irisd/internal/model"
	"irisd/pkg/types"
)

// Defaults applied when corresponding ServiceConfig fields are unset.
const (
	defaultMaxQueueDepth = 64
	defaultMaxInflight   = 4
	defaultMaxWait       = 10 * time.Second
)

// ServiceConfig encapsulates all tunables for Service construction.
type ServiceConfig struct {
	Registry      []types.Model
	DefaultModel  string
	MaxQueueDepth int
	MaxInflight   int
	MaxWait       time.Duration
	// Loader overrides artifact loading; tests inject fakes here.
	Loader func(path string) (model.Predictor, error)
}

// NewWithConfig constructs a Service from ServiceConfig.
func NewWithConfig(cfg ServiceConfig) *Service {
	s := &Service{
		state:        StateLoading,
		registry:     cfg.Registry,
		defaultModel: cfg.DefaultModel,
		instances:    make(map[string]*Instance),
		loader:       cfg.Loader,
	}
	// Apply defaults if unset
	if cfg.MaxQueueDepth <= 0 {
		s.maxQueueDepth = defaultMaxQueueDepth
	} else {
		s.maxQueueDepth = cfg.MaxQueueDepth
	}
	if cfg.MaxInflight <= 0 {
		s.maxInflight = defaultMaxInflight
	} else {
		s.maxInflight = cfg.MaxInflight
	}
	if cfg.MaxWait <= 0 {
		s.maxWait = defaultMaxWait
	} else {
		s.maxWait = cfg.MaxWait
	}
	if s.loader == nil {
		s.loader = model.Load
	}
	s.startTime = time.Now()
	return s
}
