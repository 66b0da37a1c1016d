package manager

import "errors"

// modelUnavailableError reports that no model handle could be obtained.
// The cause is kept for logs; callers show a generic notice.
type modelUnavailableError struct{ cause error }

func (e modelUnavailableError) Error() string {
	if e.cause == nil {
		return "model unavailable"
	}
	return "model unavailable: " + e.cause.Error()
}

func (e modelUnavailableError) Unwrap() error { return e.cause }

// ErrModelUnavailable wraps a load failure.
func ErrModelUnavailable(cause error) error { return modelUnavailableError{cause: cause} }

// isModelUnavailable reports whether err indicates a missing model handle.
func isModelUnavailable(err error) bool {
	var e modelUnavailableError
	return errors.As(err, &e)
}
