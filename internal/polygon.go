package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// Polygon is an ordered sequence of three or more vertices. Individual
// vertices are mutable through SetVertex, but the number of vertices
// is fixed at construction.
//
// Classification state (convexity, simplicity, degeneracy, the
// centroid and the acceleration structures) is computed lazily and
// cached. Any vertex mutation throws the entire cache away; there is
// deliberately no finer-grained invalidation, because every cached
// fact depends on every vertex.
//
// A Polygon is not safe for concurrent use while being mutated, and
// even read-only queries mutate the cache. Callers sharing an instance
// across goroutines must serialize access externally.
type Polygon struct {
	verts []Vec2
	cache polyCache
}

// Each cached fact carries its own known flag. The only way a fact
// goes from known to unknown is invalidate wiping the whole struct.
type polyCache struct {
	convex     boolCache
	simple     boolCache
	degenerate boolCache
	dupVerts   boolCache

	centroid      Vec2
	centroidOK    bool // centroid exists (simple, nonzero area)
	centroidKnown bool

	// Squared distances from the centroid to the nearest edge
	// midpoint and farthest vertex. Only the generators can seed
	// these; they allow constant-time accept/reject in containment
	// queries.
	minR2, maxR2 float64
	radiusKnown  bool

	winding      int // +1 counterclockwise, -1 clockwise, 0 zero area
	windingKnown bool

	chains *yChains // containment acceleration, built on demand
}

type boolCache struct {
	value, known bool
}

func (c *boolCache) set(v bool) {
	c.value = v
	c.known = true
}

func (c *polyCache) invalidate() {
	*c = polyCache{}
}

// NewPolygon constructs a polygon from a vertex slice, which is
// copied. Fewer than three vertices fails with an error wrapping
// ErrValue. A triangle can never be non-convex or self-intersecting,
// so those facts are recorded immediately.
func NewPolygon(verts []Vec2) (*Polygon, error) {
	if len(verts) < 3 {
		return nil, errors.Wrapf(ErrValue, "Polygon: minimum of 3 vertices required, got %d", len(verts))
	}
	p := &Polygon{verts: append([]Vec2(nil), verts...)}
	if len(p.verts) == 3 {
		p.cache.convex.set(true)
		p.cache.simple.set(true)
	}
	return p, nil
}

// NewConvexPolygon constructs a polygon the caller asserts is convex.
// The assertion is trusted without verification: convexity and
// simplicity are seeded into the cache, and an incorrect hint silently
// corrupts later query results. That is the caller's responsibility.
func NewConvexPolygon(verts []Vec2) (*Polygon, error) {
	p, err := NewPolygon(verts)
	if err != nil {
		return nil, err
	}
	p.cache.convex.set(true)
	p.cache.simple.set(true)
	return p, nil
}

// NewSimplePolygon constructs a polygon the caller asserts has no
// self-intersections. Like NewConvexPolygon, the hint is trusted
// without verification.
func NewSimplePolygon(verts []Vec2) (*Polygon, error) {
	p, err := NewPolygon(verts)
	if err != nil {
		return nil, err
	}
	p.cache.simple.set(true)
	return p, nil
}

// FromPoints constructs a polygon from point-like values, resolved
// through ParsePoint.
func FromPoints(points ...interface{}) (*Polygon, error) {
	verts := make([]Vec2, len(points))
	for i, pt := range points {
		v, err := ParsePoint(pt)
		if err != nil {
			return nil, errors.Wrapf(err, "Polygon: point %d", i)
		}
		verts[i] = v
	}
	return NewPolygon(verts)
}

// RegularPolygon creates a polygon with vertexCount vertices evenly
// spaced on a circle of the given radius around center, the first
// vertex at the given angle in degrees. Regular polygons are always
// convex, so the whole classification cache can be filled in up
// front.
func RegularPolygon(vertexCount int, radius float64, center Vec2, angle float64) (*Polygon, error) {
	if vertexCount < 3 {
		return nil, errors.Wrapf(ErrValue, "Polygon: minimum of 3 vertices required, got %d", vertexCount)
	}
	verts := make([]Vec2, vertexCount)
	step := 360.0 / float64(vertexCount)
	a := angle
	for i := range verts {
		c, s := cosSinDeg(a)
		verts[i] = Vec2{c*radius + center.X, s*radius + center.Y}
		a += step
	}
	p := &Polygon{verts: verts}
	p.cache.convex.set(true)
	p.cache.simple.set(true)
	p.cache.degenerate.set(radius == 0)
	p.cache.dupVerts.set(radius == 0)
	p.cache.centroid = center
	p.cache.centroidOK = radius != 0
	p.cache.centroidKnown = true
	mid := verts[0].Add(verts[1]).Mul(0.5).Sub(center)
	p.cache.minR2 = mid.Length2()
	p.cache.maxR2 = radius * radius
	p.cache.radiusKnown = true
	return p, nil
}

// StarPolygon creates a circular pointed star with peakCount peaks
// (and twice that many vertices), alternating between radius1 and
// radius2 around center, starting at the given angle in degrees.
//
// How much can be pre-classified depends on the radii. Equal radii
// give a regular, convex polygon. Different radii with the same sign
// give a non-convex but simple star. A zero radius collapses every
// other vertex onto the center, leaving a zero-area fan of spikes.
// Radii of opposite sign make the boundary fold through the center,
// so nothing beyond non-convexity can be asserted and the usual lazy
// analysis applies.
func StarPolygon(peakCount int, radius1, radius2 float64, center Vec2, angle float64) (*Polygon, error) {
	if peakCount < 2 {
		return nil, errors.Wrap(ErrValue, "star polygon must have a minimum of 2 peaks")
	}
	verts := make([]Vec2, 0, peakCount*2)
	step := 180.0 / float64(peakCount)
	a := angle
	for i := 0; i < peakCount; i++ {
		c, s := cosSinDeg(a)
		verts = append(verts, Vec2{c*radius1 + center.X, s*radius1 + center.Y})
		a += step
		c, s = cosSinDeg(a)
		verts = append(verts, Vec2{c*radius2 + center.X, s*radius2 + center.Y})
		a += step
	}
	p := &Polygon{verts: verts}
	mid2 := verts[0].Add(verts[1]).Mul(0.5).Sub(center).Length2()
	if radius1 == radius2 {
		p.cache.convex.set(true)
		p.cache.simple.set(true)
		p.cache.degenerate.set(radius1 == 0)
		p.cache.dupVerts.set(radius1 == 0)
		p.cache.centroid = center
		p.cache.centroidOK = radius1 != 0
		p.cache.centroidKnown = true
		p.cache.minR2 = mid2
		p.cache.maxR2 = radius1 * radius1
		p.cache.radiusKnown = true
		return p, nil
	}
	p.cache.convex.set(false)
	if radius1 == 0 || radius2 == 0 {
		// All the spike edges pass through the center, so the signed
		// area is zero and the collapsed vertices coincide no matter
		// what the other radius is.
		p.cache.degenerate.set(true)
		p.cache.dupVerts.set(true)
	} else if (radius1 > 0) == (radius2 > 0) {
		p.cache.simple.set(true)
		p.cache.degenerate.set(false)
		p.cache.centroid = center
		p.cache.centroidOK = true
		p.cache.centroidKnown = true
		r1sq := radius1 * radius1
		r2sq := radius2 * radius2
		inner := r1sq
		if r2sq < inner {
			inner = r2sq
		}
		if mid2 < inner {
			inner = mid2
		}
		p.cache.minR2 = inner
		if r1sq > r2sq {
			p.cache.maxR2 = r1sq
		} else {
			p.cache.maxR2 = r2sq
		}
		p.cache.radiusKnown = true
	}
	return p, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.verts)
}

// Vertex returns the vertex at index i. An index outside [0, Len)
// panics with an error wrapping ErrIndex.
func (p *Polygon) Vertex(i int) Vec2 {
	if i < 0 || i >= len(p.verts) {
		panic(errors.Wrapf(ErrIndex, "Polygon: index %d out of range", i))
	}
	return p.verts[i]
}

// SetVertex replaces the vertex at index i and invalidates every
// cached classification fact. An index outside [0, Len) panics with
// an error wrapping ErrIndex.
func (p *Polygon) SetVertex(i int, v Vec2) {
	if i < 0 || i >= len(p.verts) {
		panic(errors.Wrapf(ErrIndex, "Polygon: assignment index %d out of range", i))
	}
	p.verts[i] = v
	p.cache.invalidate()
	if len(p.verts) == 3 {
		p.cache.convex.set(true)
		p.cache.simple.set(true)
	}
}

// Vertices returns a copy of the vertex sequence.
func (p *Polygon) Vertices() []Vec2 {
	return append([]Vec2(nil), p.verts...)
}

// IsConvexKnown reports whether convexity is already cached, i.e.
// IsConvex will not need to do any work.
func (p *Polygon) IsConvexKnown() bool {
	return p.cache.convex.known
}

// IsConvex reports whether the polygon is convex, classifying and
// caching on first use. Runtime O(n) the first time, O(1) after.
func (p *Polygon) IsConvex() bool {
	if !p.cache.convex.known {
		p.classify()
	}
	return p.cache.convex.value
}

// IsSimpleKnown reports whether simplicity is already cached.
func (p *Polygon) IsSimpleKnown() bool {
	return p.cache.simple.known
}

// IsSimple reports whether the polygon has no self-intersections.
// Convex polygons get this for free from classification; everything
// else falls through to the sweep in checkIsSimple.
func (p *Polygon) IsSimple() bool {
	if !p.cache.simple.known {
		if !p.cache.convex.known {
			p.classify()
		}
		if !p.cache.simple.known {
			p.checkIsSimple()
		}
	}
	return p.cache.simple.value
}

// IsDegenerateKnown reports whether degeneracy is already cached.
func (p *Polygon) IsDegenerateKnown() bool {
	return p.cache.degenerate.known
}

// IsDegenerate reports whether the polygon has zero signed area: all
// of its nonzero edges are collinear, or it has no nonzero edges at
// all.
func (p *Polygon) IsDegenerate() bool {
	if !p.cache.degenerate.known {
		p.classify()
	}
	return p.cache.degenerate.value
}

// HasDuplicateVertsKnown reports whether the duplicate-vertex flag is
// already cached.
func (p *Polygon) HasDuplicateVertsKnown() bool {
	return p.cache.dupVerts.known
}

// HasDuplicateVerts reports whether the polygon has coincident
// vertices: consecutive duplicates found by a lazy scan, or vertices
// a generator collapsed onto a shared point.
func (p *Polygon) HasDuplicateVerts() bool {
	if !p.cache.dupVerts.known {
		n := len(p.verts)
		dup := false
		for i := 0; i < n; i++ {
			if p.verts[i] == p.verts[CircularIndex(i-1, n)] {
				dup = true
				break
			}
		}
		p.cache.dupVerts.set(dup)
	}
	return p.cache.dupVerts.value
}

// orientation returns the winding sign of the vertex order: +1 for
// counterclockwise, -1 for clockwise, 0 for zero signed area. Cached.
func (p *Polygon) orientation() int {
	if !p.cache.windingKnown {
		area := 0.0
		j := len(p.verts) - 1
		for i, v := range p.verts {
			area += p.verts[j].X*v.Y - v.X*p.verts[j].Y
			j = i
		}
		switch {
		case area > 0:
			p.cache.winding = 1
		case area < 0:
			p.cache.winding = -1
		default:
			p.cache.winding = 0
		}
		p.cache.windingKnown = true
	}
	return p.cache.winding
}

// Equals reports whether two polygons describe the same closed
// boundary. The vertex sequences may start anywhere and wind in
// either direction; what must match is the cyclic sequence of edges.
// Comparison is exact, not tolerance based.
func (p *Polygon) Equals(o *Polygon) bool {
	if p == o {
		return true
	}
	if len(p.verts) != len(o.verts) {
		return false
	}
	same := true
	for i, v := range p.verts {
		if v != o.verts[i] {
			same = false
			break
		}
	}
	if same {
		return true
	}
	// Compare the multiset of vertex triples. Two cyclic sequences
	// are equal up to rotation exactly when their sorted triples
	// match, and reversing the triple orientation handles opposite
	// windings.
	a := sortedTriples(p.verts, false)
	b := sortedTriples(o.verts, false)
	if triplesEqual(a, b) {
		return true
	}
	return triplesEqual(a, sortedTriples(o.verts, true))
}

type vertTriple [3]Vec2

func sortedTriples(verts []Vec2, reversed bool) []vertTriple {
	n := len(verts)
	triples := make([]vertTriple, n)
	for i := range verts {
		prev := verts[CircularIndex(i-1, n)]
		next := verts[CircularIndex(i+1, n)]
		if reversed {
			prev, next = next, prev
		}
		triples[i] = vertTriple{prev, verts[i], next}
	}
	sort.Slice(triples, func(i, j int) bool {
		return tripleLess(triples[i], triples[j])
	})
	return triples
}

func tripleLess(a, b vertTriple) bool {
	for k := 0; k < 3; k++ {
		if a[k] != b[k] {
			return lexiLess(a[k], b[k])
		}
	}
	return false
}

func triplesEqual(a, b []vertTriple) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
