// A 2D planar geometry kernel for Go.
//
// This package provides an immutable vector type and a polygon type
// that lazily classifies itself. Construct a polygon once and query
// it freely: convexity, simplicity, degeneracy, centroid, point
// containment and tangent lines are all computed on demand and
// cached, and repeated queries get cheaper as the polygon learns
// about itself.
package planar

import "github.com/softpolygon/planar/internal"

type Vec2 = internal.Vec2
type Polygon = internal.Polygon

// XYer is any value with a 2D position. Implementing it makes a type
// acceptable anywhere a point is expected.
type XYer = internal.XYer

// Error kinds, for classifying failures with errors.Is.
var (
	ErrValue      = internal.ErrValue
	ErrType       = internal.ErrType
	ErrArithmetic = internal.ErrArithmetic
	ErrIndex      = internal.ErrIndex
)

// V constructs a vector from its components.
func V(x, y float64) Vec2 {
	return internal.V(x, y)
}

// Polar constructs a vector from an angle in degrees and a length.
func Polar(angle, length float64) Vec2 {
	return internal.Polar(angle, length)
}

// Unit constructs a unit vector at an angle in degrees.
func Unit(angle float64) Vec2 {
	return internal.Unit(angle)
}

// ParsePoint converts a point-like value (Vec2, *Vec2, [2]float64, a
// []float64 of length 2, or any XYer) into a Vec2.
func ParsePoint(value interface{}) (Vec2, error) {
	return internal.ParsePoint(value)
}

// SetEpsilon adjusts the global comparison tolerance. It applies to
// all subsequent tolerance-based operations everywhere in the
// process, so set it once at startup rather than toggling it around
// individual calls, and never while other goroutines are doing
// geometry.
func SetEpsilon(epsilon float64) {
	internal.SetEpsilon(epsilon)
}

// NewPolygon creates a polygon from a slice of at least three
// vertices.
func NewPolygon(verts []Vec2) (*Polygon, error) {
	return internal.NewPolygon(verts)
}

// NewConvexPolygon creates a polygon the caller promises is convex,
// skipping classification. The promise is not checked.
func NewConvexPolygon(verts []Vec2) (*Polygon, error) {
	return internal.NewConvexPolygon(verts)
}

// NewSimplePolygon creates a polygon the caller promises has no
// self-intersections, skipping the simplicity sweep. The promise is
// not checked.
func NewSimplePolygon(verts []Vec2) (*Polygon, error) {
	return internal.NewSimplePolygon(verts)
}

// FromPoints creates a polygon from point-like values, each resolved
// through ParsePoint.
func FromPoints(points ...interface{}) (*Polygon, error) {
	return internal.FromPoints(points...)
}

// RegularPolygon creates a convex polygon with vertexCount vertices
// evenly spaced on a circle. Generated polygons come fully
// pre-classified, and containment queries against them get a
// constant-time fast path.
func RegularPolygon(vertexCount int, radius float64, center Vec2, angle float64) (*Polygon, error) {
	return internal.RegularPolygon(vertexCount, radius, center, angle)
}

// StarPolygon creates a circular pointed star with peakCount peaks
// alternating between two radii. Stars with both radii on the same
// side of zero come pre-classified like regular polygons.
func StarPolygon(peakCount int, radius1, radius2 float64, center Vec2, angle float64) (*Polygon, error) {
	return internal.StarPolygon(peakCount, radius1, radius2, center, angle)
}
