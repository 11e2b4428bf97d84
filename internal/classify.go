package internal

// edgeDir buckets an edge vector into one of two half planes by x
// sign, falling back to y sign for vertical edges. A zero vector maps
// to 0 and must be filtered out before calling.
func edgeDir(d Vec2) int {
	if d.X != 0 {
		if d.X < 0 {
			return 1
		}
		return -1
	}
	if d.Y < 0 {
		return 1
	}
	if d.Y > 0 {
		return -1
	}
	return 0
}

// classify determines convexity in a single pass over the edges,
// settling degeneracy along the way. A convex result settles
// simplicity and the duplicate-vertex flag for free; a non-convex
// result settles neither, leaving simplicity for the sweep and the
// duplicate flag for a lazy scan.
//
// Adapted from Graphics Gems IV. The walk watches two things: the
// sign of the turn at each vertex and how many times the edge
// direction reverses between half planes. A convex boundary turns the
// same way at every vertex and its direction reverses at most twice.
// Zero-length edges carry no direction and are skipped; collinear
// runs produce zero turns, which are also skipped, so a convex
// polygon may legally contain both.
func (p *Polygon) classify() {
	n := len(p.verts)
	at := func(i int) Vec2 {
		if i >= n {
			return p.verts[i-n]
		}
		return p.verts[i]
	}

	last := p.verts[0].Sub(p.verts[n-1])
	i := 1
	for ; i <= n && last.X == 0 && last.Y == 0; i++ {
		last = at(i).Sub(at(i - 1))
	}
	lastDir := edgeDir(last)

	dirChanges := 0
	sameTurns := true
	lastSide := 0.0
	turn := 0.0
	count := 0

	for ; i <= n && sameTurns && dirChanges <= 2; i++ {
		d := at(i).Sub(at(i - 1))
		if d.X == 0 && d.Y == 0 {
			continue
		}
		dir := edgeDir(d)
		if dir == -lastDir {
			dirChanges++
		}
		lastDir = dir
		turn = last.Cross(d)
		if turn != 0 {
			sameTurns = (turn > 0) == (lastSide > 0) || lastSide == 0
			lastSide = turn
		}
		last = d
		count++
	}

	if sameTurns && dirChanges <= 2 {
		p.cache.convex.set(true)
		p.cache.simple.set(true)
		p.cache.dupVerts.set(count < n)
	} else {
		p.cache.convex.set(false)
	}
	p.cache.degenerate.set(count == 0 || turn == 0)
}
