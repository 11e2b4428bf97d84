package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoly(t *testing.T, verts []Vec2) *Polygon {
	poly, err := NewPolygon(verts)
	require.NoError(t, err)
	return poly
}

func TestIsConvex(t *testing.T) {
	poly := mustPoly(t, []Vec2{{-1, -1}, {1, -1}, {0.5, 0}, {0, 0}})
	assert.False(t, poly.IsConvexKnown())
	assert.True(t, poly.IsConvex())
	assert.True(t, poly.IsConvexKnown())
	assert.True(t, poly.IsConvex()) // cached value
}

func TestNotIsConvex(t *testing.T) {
	poly := mustPoly(t, []Vec2{{-1, -1}, {1, -1}, {1, 0}, {0, -0.9}})
	assert.False(t, poly.IsConvexKnown())
	assert.False(t, poly.IsConvex())
	assert.True(t, poly.IsConvexKnown())
	assert.False(t, poly.IsConvex()) // cached value
}

func TestConvexDegenerateCases(t *testing.T) {
	// Pentagram
	poly := mustPoly(t, []Vec2{{-1, -1}, {0, 1}, {1, -1}, {-1, 0}, {1, 0}})
	assert.False(t, poly.IsConvex())

	// Rect with backtracking vert along an edge
	poly = mustPoly(t, []Vec2{{0, 0}, {2, 0}, {1, 0}, {4, 0}, {4, -1}, {0, -1}})
	assert.False(t, poly.IsConvex())

	// Rect with coincident edges
	poly = mustPoly(t, []Vec2{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
		{0, 0}, {0, 1}, {1, 1}, {1, 0}})
	assert.False(t, poly.IsConvex())

	// Triangle with coincident intruding edges
	poly = mustPoly(t, []Vec2{{-2, 0}, {0, 2}, {-0.5, 1}, {0, 2}, {2, 0}})
	assert.False(t, poly.IsConvex())
}

func TestConvexImpliesSimple(t *testing.T) {
	poly := mustPoly(t, []Vec2{{-1, -1}, {1, -1}, {0.5, 0}, {0, 0}})
	assert.False(t, poly.IsSimpleKnown())
	assert.True(t, poly.IsConvex())
	assert.True(t, poly.IsSimpleKnown())
	assert.True(t, poly.IsSimple())
}

func TestNonConvexLeavesSimpleUnknown(t *testing.T) {
	poly := mustPoly(t, []Vec2{{-1, -1}, {1, -1}, {1, 0}, {0, -0.9}})
	assert.False(t, poly.IsSimpleKnown())
	assert.False(t, poly.IsConvex())
	assert.False(t, poly.IsSimpleKnown())
}

func TestConvexWithCollinearVerts(t *testing.T) {
	// A square with a redundant vertex in the middle of an edge. Zero
	// turns don't break convexity.
	poly := mustPoly(t, []Vec2{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}})
	assert.True(t, poly.IsConvex())
	assert.False(t, poly.IsDegenerate())
}

func TestConvexWithDuplicateVerts(t *testing.T) {
	poly := mustPoly(t, []Vec2{{0, 0}, {2, 0}, {2, 0}, {2, 2}, {0, 2}})
	assert.True(t, poly.IsConvex())
	assert.True(t, poly.HasDuplicateVertsKnown())
	assert.True(t, poly.HasDuplicateVerts())
	assert.False(t, poly.IsDegenerate())
}

func TestDegenerateCollinear(t *testing.T) {
	poly := mustPoly(t, []Vec2{{0, 0}, {1, 0}, {2, 0}})
	assert.False(t, poly.IsDegenerateKnown())
	assert.True(t, poly.IsDegenerate())
	assert.True(t, poly.IsDegenerateKnown())
}

func TestDegenerateAllCoincident(t *testing.T) {
	poly := mustPoly(t, []Vec2{{1, 1}, {1, 1}, {1, 1}})
	assert.True(t, poly.IsDegenerate())
	assert.True(t, poly.HasDuplicateVerts())
}

func TestNotDegenerate(t *testing.T) {
	poly := mustPoly(t, []Vec2{{0, 0}, {1, 0}, {0, 1}})
	assert.False(t, poly.IsDegenerate())
}
