package internal

import "github.com/pkg/errors"

// XYer is anything that can report a 2D position. Implementing it is
// enough to be accepted anywhere the kernel expects a point.
type XYer interface {
	XY() (x, y float64)
}

// ParsePoint decomposes a point-like value into a Vec2. Accepted
// forms: Vec2, *Vec2, [2]float64, a []float64 of length 2, and any
// XYer. Anything else fails with an error wrapping ErrType.
func ParsePoint(value interface{}) (Vec2, error) {
	switch pt := value.(type) {
	case Vec2:
		return pt, nil
	case *Vec2:
		if pt == nil {
			return Vec2{}, errors.Wrap(ErrType, "nil *Vec2")
		}
		return *pt, nil
	case [2]float64:
		return Vec2{pt[0], pt[1]}, nil
	case []float64:
		if len(pt) != 2 {
			return Vec2{}, errors.Wrapf(ErrType, "expected 2 components, got %d", len(pt))
		}
		return Vec2{pt[0], pt[1]}, nil
	case XYer:
		x, y := pt.XY()
		return Vec2{x, y}, nil
	}
	return Vec2{}, errors.Wrapf(ErrType, "cannot parse %T as a point", value)
}
