package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestPolygonQueries(t *testing.T) {
	poly, err := NewPolygon([]Vec2{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	})
	assert.NoError(t, err)
	assert.True(t, poly.IsConvex())
	assert.True(t, poly.IsSimple())
	assert.True(t, poly.ContainsPoint(V(0, 0)))
	assert.False(t, poly.ContainsPoint(V(2, 0)))

	centroid, ok := poly.Centroid()
	assert.True(t, ok)
	assert.Equal(t, V(0, 0), centroid)

	left, right := poly.TangentsToPoint(V(3, 0))
	assert.Equal(t, V(1, -1), left)
	assert.Equal(t, V(1, 1), right)
}

func TestErrorKinds(t *testing.T) {
	_, err := NewPolygon([]Vec2{{X: 0, Y: 0}})
	assert.ErrorIs(t, err, ErrValue)

	_, err = ParsePoint("nope")
	assert.ErrorIs(t, err, ErrType)
}
