package service

// tooBusyError signals queue timeout/overflow for 429 mapping.
type tooBusyError struct{ modelID string }

func (e tooBusyError) Error() string { return "too busy: " + e.modelID }

// ErrTooBusy constructs a tooBusyError.
func ErrTooBusy(modelID string) error { return tooBusyError{modelID: modelID} }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	_, ok := err.(tooBusyError)
	return ok
}

// modelNotFoundError indicates a requested model id is not in the registry.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

// ErrModelNotFound constructs a modelNotFoundError.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model id.
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}

// artifactUnavailableError signals that a registered artifact failed to load,
// so the HTTP layer can return 503 Service Unavailable instead of 500.
type artifactUnavailableError struct{ msg string }

func (e artifactUnavailableError) Error() string { return e.msg }

// ErrArtifactUnavailable constructs an artifactUnavailableError.
func ErrArtifactUnavailable(msg string) error { return artifactUnavailableError{msg: msg} }

// IsArtifactUnavailable reports whether err indicates a failed artifact load.
func IsArtifactUnavailable(err error) bool {
	_, ok := err.(artifactUnavailableError)
	return ok
}

// invalidInputError signals a request whose features cannot be evaluated by
// the model (422 mapping).
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// ErrInvalidInput constructs an invalidInputError.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err indicates unusable request features.
func IsInvalidInput(err error) bool {
	_, ok := err.(invalidInputError)
	return ok
}
