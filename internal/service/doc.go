// Package service provides lifecycle, admission, and prediction coordination
// for classifier model instances. It is structured into small files by concern:
//
//   - service.go: core Service type, constructor, simple getters.
//   - config.go: ServiceConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: internal state types (State, Instance).
//   - errors.go: error types and helpers (IsTooBusy, IsModelNotFound, ...).
//   - admission.go: per-instance queueing and prediction admission.
//   - ensure.go: instance lifecycle and artifact loading.
//   - predict.go: prediction API entry point and feature assembly.
//   - status.go: Status reporting helpers.
//   - metrics.go: Prometheus collectors for loads and predictions.
//
// External packages should treat this package as the orchestration layer and
// use public methods only (New/NewWithConfig, Warmup, Ready, ListModels,
// Status, Predict, Close). Internal types are subject to change.
package service
