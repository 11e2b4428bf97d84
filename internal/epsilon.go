package internal

// Every predicate in the kernel compares floating point quantities
// against a single process-wide tolerance. The value is read at call
// time, so changing it between constructing a polygon and querying it
// can change results. Callers that share geometry across goroutines
// must not change the tolerance concurrently with queries; the kernel
// performs no synchronization of its own.
var (
	Epsilon  = 1e-5
	Epsilon2 = 1e-5 * 1e-5
)

// SetEpsilon sets the comparison tolerance for all subsequent
// predicate evaluations, process-wide.
func SetEpsilon(epsilon float64) {
	Epsilon = epsilon
	Epsilon2 = epsilon * epsilon
}
