package internal

import "sort"

// Below this many vertices the chain setup costs more than it saves
// and the plain winding walk wins.
const convexAccelThreshold = 5

// ContainsPoint reports whether the point is inside the polygon.
//
// Containment follows the nonzero winding rule, which gives sensible
// answers for every polygon, including self-intersecting ones: a
// point is inside when the boundary winds around it a net nonzero
// number of times. Boundary points are counted on the left and bottom
// edges and excluded on the right and top, so tiling a plane with
// polygons counts every point exactly once.
//
// Two accelerations kick in when the cache allows. Generated polygons
// carry inner and outer radii, giving a constant-time accept or
// reject for most query points. Polygons already known convex with
// enough vertices get a pair of y-monotone chains built on first
// query, dropping each test to O(log n). Neither path triggers
// classification; an unclassified polygon just takes the O(n) walk.
func (p *Polygon) ContainsPoint(pt Vec2) bool {
	if p.cache.radiusKnown && p.cache.centroidKnown {
		d2 := pt.Sub(p.cache.centroid).Length2()
		if d2 < p.cache.minR2 {
			return true
		}
		if d2 > p.cache.maxR2 {
			return false
		}
	}
	if p.cache.convex.known && p.cache.convex.value &&
		len(p.verts) > convexAccelThreshold {
		if p.cache.chains == nil && p.orientation() != 0 {
			p.cache.chains = p.buildChains()
		}
		if p.cache.chains != nil {
			return p.cache.chains.contains(pt)
		}
	}
	return p.windingContains(pt)
}

// windingContains computes the nonzero winding number of the boundary
// around pt by counting signed crossings of the upward ray from pt.
// An upward edge crossing with pt strictly left of it winds once
// counterclockwise, a downward crossing with pt strictly right winds
// once clockwise. The asymmetric Y comparisons give the left/bottom
// inclusive boundary rule.
func (p *Polygon) windingContains(pt Vec2) bool {
	winding := 0
	n := len(p.verts)
	a := p.verts[n-1]
	for i := 0; i < n; i++ {
		b := p.verts[i]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && side(a, b, pt) > 0 {
				winding++
			}
		} else {
			if b.Y <= pt.Y && side(a, b, pt) < 0 {
				winding--
			}
		}
		a = b
	}
	return winding != 0
}

// yChains is the containment acceleration structure for a convex
// polygon: the boundary split at its lowest and highest vertices into
// its ascending and descending runs, both stored bottom to top. At
// any query height exactly one edge of each run spans it, so those
// two edges carry the entire winding number.
type yChains struct {
	up, down   []Vec2
	minY, maxY float64
}

// buildChains splits the boundary at the yLexiLess extremes. The y
// tiebreak by x makes the extremes unique even with horizontal edges,
// so both walks between them are monotone in y. The up chain follows
// the boundary order; the down chain is collected in boundary order
// and then flipped so both can be binary searched bottom to top.
func (p *Polygon) buildChains() *yChains {
	n := len(p.verts)
	lo, hi := 0, 0
	for i, v := range p.verts {
		if yLexiLess(v, p.verts[lo]) {
			lo = i
		}
		if yLexiLess(p.verts[hi], v) {
			hi = i
		}
	}
	var up, down []Vec2
	for i := lo; ; i = CircularIndex(i+1, n) {
		up = append(up, p.verts[i])
		if i == hi {
			break
		}
	}
	for i := hi; ; i = CircularIndex(i+1, n) {
		down = append(down, p.verts[i])
		if i == lo {
			break
		}
	}
	for i, j := 0, len(down)-1; i < j; i, j = i+1, j-1 {
		down[i], down[j] = down[j], down[i]
	}
	return &yChains{
		up:   up,
		down: down,
		minY: p.verts[lo].Y,
		maxY: p.verts[hi].Y,
	}
}

// contains evaluates the winding number from just the two edges that
// span the query height: the upward edge contributes +1 when the
// point is strictly left of it, the downward edge -1 when strictly
// right. Each side test runs with the edge endpoints in boundary
// order (the down chain is stored flipped, so its edges are read
// top-first), computing bit for bit what the winding walk computes
// for the same edge. The two paths therefore agree on every point,
// including points within float dust of the boundary.
func (c *yChains) contains(pt Vec2) bool {
	if pt.Y < c.minY || pt.Y >= c.maxY {
		return false
	}
	ua, ub := chainEdge(c.up, pt.Y)
	da, db := chainEdge(c.down, pt.Y)
	return (side(ua, ub, pt) > 0) != (side(db, da, pt) < 0)
}

// chainEdge binary-searches a bottom-to-top chain for the edge
// spanning the query y: the first edge whose upper endpoint is
// strictly above it. Horizontal edges at the query y are skipped
// over, which is what keeps the boundary rule consistent with the
// winding walk. The caller guarantees minY <= y < maxY, so the edge
// always exists.
func chainEdge(chain []Vec2, y float64) (Vec2, Vec2) {
	i := sort.Search(len(chain)-1, func(i int) bool {
		return chain[i+1].Y > y
	})
	if i >= len(chain)-1 {
		fatalf("no chain edge spans y=%g", y)
	}
	return chain[i], chain[i+1]
}
