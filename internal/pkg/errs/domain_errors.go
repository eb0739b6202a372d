package errs

import "errors"

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these so handlers can classify them with errors.Is.
var (
	// resolved locally, never reaches an upstream
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication error")

	// upstream failures
	ErrUpstream = errors.New("upstream error")
	ErrTimeout  = errors.New("upstream timed out")
	ErrNetwork  = errors.New("upstream unreachable")

	ErrInternal = errors.New("internal error")
)
