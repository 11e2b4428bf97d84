package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroidConvex(t *testing.T) {
	poly := mustPoly(t, []Vec2{{1, -2}, {0, 0}, {1, 0}, {3, 0}, {4, -2}})
	assert.True(t, poly.IsConvex())
	assert.False(t, poly.IsCentroidKnown())
	centroid, ok := poly.Centroid()
	require.True(t, ok)
	assert.True(t, V(2, -1).AlmostEquals(centroid))
	assert.True(t, poly.IsCentroidKnown())
	centroid, ok = poly.Centroid() // cached value
	require.True(t, ok)
	assert.True(t, V(2, -1).AlmostEquals(centroid))
}

func TestCentroidConcave(t *testing.T) {
	poly := mustPoly(t, []Vec2{{3, 3}, {1, -1}, {-1, -1}, {-3, 3}, {-1, -2}, {1, -2}})
	assert.False(t, poly.IsConvex())
	assert.True(t, poly.IsSimple())
	assert.False(t, poly.IsCentroidKnown())
	centroid, ok := poly.Centroid()
	require.True(t, ok)
	assert.True(t, V(0, -0.75).AlmostEquals(centroid))
}

func TestCentroidSquare(t *testing.T) {
	poly := mustPoly(t, []Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	centroid, ok := poly.Centroid()
	require.True(t, ok)
	assert.Equal(t, V(1, 1), centroid)
}

func TestCentroidWindingIndependent(t *testing.T) {
	ccw := mustPoly(t, []Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	cw := mustPoly(t, []Vec2{{0, 2}, {2, 2}, {2, 0}, {0, 0}})
	a, ok := ccw.Centroid()
	require.True(t, ok)
	b, ok := cw.Centroid()
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestCentroidNonSimple(t *testing.T) {
	poly := mustPoly(t, []Vec2{{-1, 1}, {0, 0}, {1, 1}, {0, 1}, {0, -2}})
	assert.False(t, poly.IsCentroidKnown())
	assert.False(t, poly.IsSimpleKnown())
	_, ok := poly.Centroid()
	assert.False(t, ok)
	assert.True(t, poly.IsCentroidKnown())
	_, ok = poly.Centroid() // cached value
	assert.False(t, ok)
	assert.False(t, poly.IsSimple())
}

// The centroid of a convex polygon lies inside it.
func TestCentroidInsideConvexRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 25; trial++ {
		poly := mustPoly(t, randomConvexVerts(rng, 6+rng.Intn(10)))
		require.True(t, poly.IsConvex())
		centroid, ok := poly.Centroid()
		require.True(t, ok)
		assert.True(t, poly.ContainsPoint(centroid), "trial %d, centroid %v", trial, centroid)
	}
}

func TestCentroidZeroArea(t *testing.T) {
	// Collinear triangle: simple per the sweep, but there is no
	// interior to have a center of mass. No NaNs allowed.
	poly := mustPoly(t, []Vec2{{0, 0}, {1, 0}, {2, 0}})
	_, ok := poly.Centroid()
	assert.False(t, ok)
}
