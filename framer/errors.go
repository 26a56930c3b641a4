package framer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a framing failure by the pipeline stage that produced it.
type Kind int

const (
	// KindDecode covers missing, unreadable, corrupt, or unsupported input
	// files.
	KindDecode Kind = iota
	// KindResize covers invalid resize targets such as zero dimensions.
	KindResize
	// KindGeometry marks a violated placement invariant. It indicates a
	// defect in layout resolution, never bad input, and callers should treat
	// it as fatal.
	KindGeometry
	// KindEncode covers unrecognized output extensions, unwritable output
	// paths, and encoder failures.
	KindEncode
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindResize:
		return "resize"
	case KindGeometry:
		return "geometry"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error is a classified framing failure tied to the file that caused it.
// A single Error is surfaced per Frame call; the pipeline never retries.
type Error struct {
	// Kind is the pipeline stage that failed.
	Kind Kind
	// Path is the input or output file involved in the failure.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is, or wraps, a framing Error of the given kind.
//
// Arguments:
// - err: The error to classify.
// - kind: The kind to test for.
//
// Returns:
// - true if err carries a framing Error of that kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}
