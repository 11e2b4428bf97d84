package internal

// TangentsToPoint finds the two vertices where lines through an
// exterior point graze the polygon. The left tangent vertex L has the
// whole polygon on or clockwise of the ray pt->L, the right tangent
// vertex R has it on or counterclockwise of pt->R. The result is
// meaningless for a point inside the polygon.
//
// Any polygon, even a self-intersecting one, yields tangents from its
// convex hull in a single O(n) scan. Polygons already known convex
// with enough vertices use an O(log n) binary search instead, falling
// back to the scan for the inputs the search can't handle.
func (p *Polygon) TangentsToPoint(pt Vec2) (left, right Vec2) {
	if p.cache.convex.known && p.cache.convex.value &&
		len(p.verts) > convexAccelThreshold && p.orientation() != 0 {
		if left, right, ok := p.convexTangents(pt); ok {
			return left, right
		}
	}
	return p.tangentScan(pt)
}

// tangentScan walks the boundary watching the turn direction of each
// vertex relative to pt. A vertex where the boundary switches from
// turning away to turning toward pt (or vice versa) is on the hull
// and a tangent candidate; among the candidates on each side the
// extreme one wins.
func (p *Polygon) tangentScan(pt Vec2) (left, right Vec2) {
	n := len(p.verts)
	leftTan := p.verts[0]
	rightTan := p.verts[0]
	v0 := p.verts[n-1]
	prevTurn := side(p.verts[n-2], v0, pt)
	for i := 0; i < n; i++ {
		v1 := p.verts[i]
		nextTurn := side(v0, v1, pt)
		if prevTurn <= 0 && nextTurn > 0 {
			if side(pt, v0, rightTan) >= 0 {
				rightTan = v0
			}
		} else if prevTurn > 0 && nextTurn <= 0 {
			if side(pt, v0, leftTan) <= 0 {
				leftTan = v0
			}
		}
		v0 = v1
		prevTurn = nextTurn
	}
	return leftTan, rightTan
}

// convexTangents binary-searches the boundary for the two tangent
// vertices. The search needs a counterclockwise vertex order, so a
// clockwise polygon is presented through a reversed accessor rather
// than copied. The two searches find the extreme vertices in the
// angular order around pt; which one is the left tangent falls out of
// a single side test at the end.
//
// Convexity permits collinear vertex runs and coincident vertices,
// and when the query point lines up with one of those both side tests
// go to zero and the bisection can stop making progress. That case
// reports !ok and the caller runs the scan instead.
func (p *Polygon) convexTangents(pt Vec2) (left, right Vec2, ok bool) {
	n := len(p.verts)
	var at func(i int) Vec2
	if p.orientation() > 0 {
		at = func(i int) Vec2 { return p.verts[CircularIndex(i, n)] }
	} else {
		at = func(i int) Vec2 { return p.verts[CircularIndex(-i, n)] }
	}
	i1, ok1 := maxTangentIndex(pt, n, at)
	i2, ok2 := minTangentIndex(pt, n, at)
	if !ok1 || !ok2 {
		return Vec2{}, Vec2{}, false
	}
	t1, t2 := at(i1), at(i2)
	if side(pt, t1, t2) >= 0 {
		return t2, t1, true
	}
	return t1, t2, true
}

func above(pt, q, r Vec2) bool { return side(pt, q, r) > 0 }
func below(pt, q, r Vec2) bool { return side(pt, q, r) < 0 }

// maxTangentIndex finds the vertex maximal in the angular ordering
// around pt: the tangent vertex where the boundary stops ascending
// and starts descending. Classic convex polygon tangent search; each
// step halves the chain [a, b] by comparing the edge directions at
// its ends against the midpoint. The search assumes strict convexity;
// when the interval stops shrinking without settling on a vertex it
// reports failure instead of spinning.
func maxTangentIndex(pt Vec2, n int, at func(int) Vec2) (int, bool) {
	if below(pt, at(1), at(0)) && !above(pt, at(n-1), at(0)) {
		return 0, true
	}
	for a, b := 0, n; ; {
		c := (a + b) / 2
		downC := below(pt, at(c+1), at(c))
		if downC && !above(pt, at(c-1), at(c)) {
			return c, true
		}
		if b-a <= 1 {
			return 0, false
		}
		if above(pt, at(a+1), at(a)) {
			if downC || above(pt, at(a), at(c)) {
				b = c
			} else {
				a = c
			}
		} else {
			if downC && below(pt, at(a), at(c)) {
				b = c
			} else {
				a = c
			}
		}
	}
}

// minTangentIndex is the mirror image of maxTangentIndex, finding the
// vertex minimal in the angular ordering around pt.
func minTangentIndex(pt Vec2, n int, at func(int) Vec2) (int, bool) {
	if above(pt, at(n-1), at(0)) && !below(pt, at(1), at(0)) {
		return 0, true
	}
	for a, b := 0, n; ; {
		c := (a + b) / 2
		upC := above(pt, at(c+1), at(c))
		if upC && !below(pt, at(c-1), at(c)) {
			return c, true
		}
		if b-a <= 1 {
			return 0, false
		}
		if below(pt, at(a+1), at(a)) {
			if upC || below(pt, at(a), at(c)) {
				b = c
			} else {
				a = c
			}
		} else {
			if upC && above(pt, at(a), at(c)) {
				b = c
			} else {
				a = c
			}
		}
	}
}
