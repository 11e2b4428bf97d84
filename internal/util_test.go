package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+Epsilon))
	assert.False(t, Equal(1, 2))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestCosSinDegCardinals(t *testing.T) {
	// The whole point of cosSinDeg is that the cardinal angles are
	// exact, with no 6e-17 dust
	for _, c := range []struct {
		deg, cos, sin float64
	}{
		{0, 1, 0}, {90, 0, 1}, {180, -1, 0}, {270, 0, -1},
		{360, 1, 0}, {-90, 0, -1}, {450, 0, 1}, {-270, 0, 1},
	} {
		cos, sin := cosSinDeg(c.deg)
		assert.Equal(t, c.cos, cos, "cos(%g)", c.deg)
		assert.Equal(t, c.sin, sin, "sin(%g)", c.deg)
	}
}

func TestSide(t *testing.T) {
	a, b := V(0, 0), V(2, 0)
	assert.Greater(t, side(a, b, V(1, 1)), 0.0)
	assert.Less(t, side(a, b, V(1, -1)), 0.0)
	assert.Equal(t, 0.0, side(a, b, V(5, 0)))
}

func TestLexiLess(t *testing.T) {
	assert.True(t, lexiLess(V(0, 0), V(1, 0)))
	assert.True(t, lexiLess(V(0, 0), V(0, 1)))
	assert.False(t, lexiLess(V(0, 1), V(0, 0)))
	assert.False(t, lexiLess(V(0, 0), V(0, 0)))

	assert.True(t, yLexiLess(V(5, 0), V(0, 1)))
	assert.True(t, yLexiLess(V(0, 1), V(5, 1)))
	assert.False(t, yLexiLess(V(0, 1), V(5, 0)))
}

func TestSetEpsilon(t *testing.T) {
	defer SetEpsilon(1e-5)

	assert.False(t, Equal(1, 1.001))
	SetEpsilon(0.01)
	assert.True(t, Equal(1, 1.001))
	assert.True(t, V(0.001, 0).IsNull())
	SetEpsilon(1e-8)
	assert.False(t, Equal(1, 1.001))
	assert.False(t, V(0.001, 0).IsNull())
}
