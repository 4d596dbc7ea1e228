// Package errors provides structured error handling for the spatial UI core.
//
// Structural and programmer errors (bad construction arguments, invalid
// elements) are fatal: they are returned to the caller and never swallowed.
// Runtime lookup misses (an unresolved layout id, an unrecognized mode) are
// non-fatal: the operation logs a warning and no-ops without mutating state.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConstruction indicates missing or invalid required configuration,
	// such as non-positive panel dimensions or a missing page template.
	KindConstruction
	// KindInvalidElement indicates an argument that does not satisfy the
	// node or container capability required by the call.
	KindInvalidElement
	// KindTargetNotFound indicates a layout id that did not resolve within
	// the searched page.
	KindTargetNotFound
	// KindUnrecognizedMode indicates a controller mode the dispatcher does
	// not know.
	KindUnrecognizedMode
)

func (k Kind) String() string {
	switch k {
	case KindConstruction:
		return "construction"
	case KindInvalidElement:
		return "invalid_element"
	case KindTargetNotFound:
		return "target_not_found"
	case KindUnrecognizedMode:
		return "unrecognized_mode"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this kind must propagate to the caller.
// Non-fatal kinds degrade gracefully with a diagnostic.
func (k Kind) Fatal() bool {
	return k == KindConstruction || k == KindInvalidElement
}

// Error represents a structured error in the spatial UI core.
type Error struct {
	// Op is the operation that failed (e.g., "ui.NewController").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with an operation and kind.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf builds an Error from a format string.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	for e := err; e != nil; {
		if ue, ok := e.(*Error); ok && ue.Kind == k {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}
