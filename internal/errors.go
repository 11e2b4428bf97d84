package internal

import "github.com/pkg/errors"

// Error kinds reported by the kernel. Functions that validate caller
// input return (or panic with) an error wrapping one of these
// sentinels, so callers can classify failures with errors.Is.
var (
	// ErrValue indicates a structurally valid argument with an
	// unacceptable value, such as a polygon with fewer than three
	// vertices.
	ErrValue = errors.New("invalid value")

	// ErrType indicates a value that cannot be decomposed into two
	// numeric components where a point was expected.
	ErrType = errors.New("not a point-like value")

	// ErrArithmetic indicates division by a zero divisor or null
	// vector. The kernel raises this rather than silently producing
	// Inf or NaN.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrIndex indicates a vertex index outside [0, Len).
	ErrIndex = errors.New("index out of range")
)

// Threading errors out of the recursive and iterative geometry
// routines would add a lot of complexity for conditions that indicate
// a broken invariant rather than bad input. Those paths panic instead,
// with an error built here so the payload is still a proper error
// value.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
