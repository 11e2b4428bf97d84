package internal

// Centroid computes the center of mass of the polygon's interior.
// Only simple polygons have a well defined centroid; for a non-simple
// or zero-area polygon ok is false and the vector is meaningless.
// Computing the centroid may trigger the simplicity check, so the
// first call on an unclassified polygon can cost a sweep.
//
// The interior is decomposed into a fan of triangles from the first
// vertex, and the centroid is the area-weighted mean of the triangle
// centroids. Signed areas make the fan decomposition valid for any
// simple polygon, convex or not.
func (p *Polygon) Centroid() (Vec2, bool) {
	if !p.cache.centroidKnown || !p.cache.simple.known {
		if !p.cache.convex.known {
			p.classify()
		}
		if !p.cache.simple.known {
			p.checkIsSimple()
		}
		if p.cache.simple.value {
			totalArea := 0.0
			var cx, cy float64
			a := p.verts[0]
			b := p.verts[1]
			for i := 2; i < len(p.verts); i++ {
				c := p.verts[i]
				area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
				cx += (a.X + b.X + c.X) * area
				cy += (a.Y + b.Y + c.Y) * area
				totalArea += area
				b = c
			}
			p.cache.centroidOK = totalArea != 0
			if p.cache.centroidOK {
				p.cache.centroid = Vec2{cx / (3 * totalArea), cy / (3 * totalArea)}
			} else {
				p.cache.centroid = Vec2{}
			}
		} else {
			p.cache.centroidOK = false
			p.cache.centroid = Vec2{}
		}
		p.cache.centroidKnown = true
	}
	return p.cache.centroid, p.cache.centroidOK
}

// IsCentroidKnown reports whether the centroid is already cached.
func (p *Polygon) IsCentroidKnown() bool {
	return p.cache.centroidKnown
}
