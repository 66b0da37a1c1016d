package llm

import (
	"errors"
	"fmt"
)

// ErrModelNotLoaded is reported when generation is requested without an engine.
var ErrModelNotLoaded = errors.New("model not loaded")

// modelMissingError signals that no model file exists at the configured path.
type modelMissingError struct{ path string }

func (e modelMissingError) Error() string { return fmt.Sprintf("model file not found at %s", e.path) }

// IsModelMissing reports whether err indicates a missing model file.
func IsModelMissing(err error) bool {
	var e modelMissingError
	return errors.As(err, &e)
}

// loadError wraps a failure raised by the runtime while initializing a model.
type loadError struct {
	path string
	err  error
}

func (e loadError) Error() string { return "failed to load model: " + e.err.Error() }

func (e loadError) Unwrap() error { return e.err }

// IsLoadError reports whether err came from engine initialization.
func IsLoadError(err error) bool {
	var e loadError
	return errors.As(err, &e)
}

// dependencyUnavailableError signals a runtime that is not compiled in or not installed.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing runtime dependency.
func IsDependencyUnavailable(err error) bool {
	var e dependencyUnavailableError
	return errors.As(err, &e)
}

// generationError carries the reason a completion failed.
type generationError struct{ reason string }

func (e generationError) Error() string { return "Error generating response: " + e.reason }

// isGenerationFailed reports whether err is a failed completion.
func isGenerationFailed(err error) bool {
	var e generationError
	return errors.As(err, &e)
}
