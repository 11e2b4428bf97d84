package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testXYer struct{ x, y float64 }

func (p testXYer) XY() (float64, float64) { return p.x, p.y }

func TestParsePoint(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
	}{
		{"Vec2", V(1.5, -2)},
		{"*Vec2", &Vec2{1.5, -2}},
		{"array", [2]float64{1.5, -2}},
		{"slice", []float64{1.5, -2}},
		{"XYer", testXYer{1.5, -2}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			pt, err := ParsePoint(c.value)
			assert.NoError(t, err)
			assert.Equal(t, V(1.5, -2), pt)
		})
	}
}

func TestParsePointRejects(t *testing.T) {
	for _, value := range []interface{}{
		nil,
		"1.5,-2",
		42,
		[]float64{1.5},
		[]float64{1, 2, 3},
		(*Vec2)(nil),
	} {
		_, err := ParsePoint(value)
		assert.Error(t, err, "value %#v", value)
		assert.True(t, errors.Is(err, ErrType), "value %#v", value)
	}
}
