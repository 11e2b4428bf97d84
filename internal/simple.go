package internal

import "sort"

// segmentsIntersect reports whether segment a->b touches segment
// c->d. Pure sign arithmetic, no tolerance: each segment must have
// the other's endpoints on strictly opposite sides, or straddle with
// exactly one collinear endpoint. Shared endpoints of adjacent edges
// are never fed in here, so they need no special case.
func segmentsIntersect(a, b, c, d Vec2) bool {
	d1 := side(a, b, c)
	d2 := side(a, b, d)
	if (d1 > 0) != (d2 > 0) || (d1 == 0) != (d2 == 0) {
		d1 = side(c, d, a)
		d2 = side(c, d, b)
		return (d1 > 0) != (d2 > 0) || (d1 == 0) != (d2 == 0)
	}
	return false
}

// A sweepEvent is one endpoint of an edge. Every edge produces two
// events, one from each end, so each edge both opens and closes no
// matter which of its endpoints the sweep reaches first.
type sweepEvent struct {
	from, to Vec2
	index    int
}

// checkIsSimple decides self-intersection with a simplified plane
// sweep and caches the verdict. Events are the edge endpoints in
// left-to-right order; an edge is held open between its two events
// and each newly opened edge is tested against the currently open
// set. Worst case this is still O(n²) like brute force, but for
// typical simple polygons few edges overlap any vertical line and it
// behaves like O(n log n).
func (p *Polygon) checkIsSimple() {
	n := len(p.verts)
	events := make([]sweepEvent, 0, n*2)
	for i := 0; i < n; i++ {
		a := p.verts[CircularIndex(i-1, n)]
		b := p.verts[i]
		events = append(events,
			sweepEvent{a, b, i},
			sweepEvent{b, a, i})
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.from != b.from {
			return lexiLess(a.from, b.from)
		}
		if a.to != b.to {
			return lexiLess(a.to, b.to)
		}
		return a.index < b.index
	})

	open := make(map[int]sweepEvent, n)
	for _, ev := range events {
		if _, ok := open[ev.index]; ok {
			delete(open, ev.index)
			continue
		}
		for _, o := range open {
			gap := ev.index - o.index
			if gap < 0 {
				gap = -gap
			}
			// Adjacent edges share a vertex and cannot properly
			// intersect, so they are excluded, including the
			// first/last pair which are adjacent mod n.
			if gap > 1 && gap < n-1 &&
				segmentsIntersect(ev.from, ev.to, o.from, o.to) {
				p.cache.simple.set(false)
				return
			}
		}
		open[ev.index] = ev
	}
	p.cache.simple.set(true)
}
