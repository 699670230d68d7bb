package neuromotor

import (
	"errors"
	"fmt"
)

// Kind classifies an error raised by the kinematics core, mirroring the
// ErrorCode pattern in the teacher's internal/agent/errors.go — a closed set
// of constants a caller can branch on with errors.Is, rather than matching
// on error strings.
type Kind string

const (
	// KindInvalidGeometry: negative distance, non-positive target size, or
	// non-finite coordinates (spec.md §4.2, §7).
	KindInvalidGeometry Kind = "INVALID_GEOMETRY"
	// KindInvalidConfig: a configuration parameter outside its admissible
	// range, surfaced at construction time (spec.md §7).
	KindInvalidConfig Kind = "INVALID_CONFIG"
	// KindDriverStalled: the composer's watchdog (2x the planned duration)
	// expired waiting on the driver (spec.md §5, §7).
	KindDriverStalled Kind = "DRIVER_STALLED"
	// KindDriverError: the underlying Driver reported failure (spec.md §7).
	KindDriverError Kind = "DRIVER_ERROR"
	// KindCancelled: cooperative cancellation observed at a suspension point
	// (spec.md §5, §7).
	KindCancelled Kind = "CANCELLED"
)

// Error is the error type returned by every exported operation in this
// package. Wrap with fmt.Errorf's %w to attach context without losing the
// Kind for errors.Is / errors.As classification.
type Error struct {
	Kind Kind
	Op   string // the operation that failed, e.g. "Session.Move"
	Err  error  // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("neuromotor: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("neuromotor: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write errors.Is(err, neuromotor.ErrCancelled) against the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors for errors.Is comparisons against a bare Kind, e.g.
// errors.Is(err, neuromotor.ErrCancelled).
var (
	ErrInvalidGeometry = &Error{Kind: KindInvalidGeometry}
	ErrInvalidConfig   = &Error{Kind: KindInvalidConfig}
	ErrDriverStalled   = &Error{Kind: KindDriverStalled}
	ErrDriverError     = &Error{Kind: KindDriverError}
	ErrCancelled       = &Error{Kind: KindCancelled}
)

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
