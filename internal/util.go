package internal

import "math"

// To compensate for imprecision in floats, equality is tolerance
// based. The tolerance is read at call time, not captured.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the
// modular index given length n, but unlike the raw modulo operator, it
// only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// cosSinDeg returns the cosine and sine of an angle in degrees,
// matching the four cardinal directions exactly. Plain trig gives
// values like 6.12e-17 for cos(90°), which would knock generated
// polygon vertices off their axes.
func cosSinDeg(deg float64) (cos, sin float64) {
	if deg >= 360 || deg < 0 {
		deg = math.Mod(deg, 360)
		if deg < 0 {
			deg += 360
		}
	}
	switch deg {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	rad := radians(deg)
	return math.Cos(rad), math.Sin(rad)
}

// side returns the sign of the turn a->b->p: positive when p is left
// of the directed line through a and b, negative when right, zero when
// collinear. This is the one exact-sign predicate everything else is
// built on.
func side(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// lexiLess orders points by x, then y, giving the left-to-right order
// used by the self-intersection sweep.
func lexiLess(a, b Vec2) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// yLexiLess orders points by y, then x. Breaking y ties by x simulates
// a slightly rotated coordinate system so a polygon always has a
// unique lowest and highest vertex.
func yLexiLess(a, b Vec2) bool {
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}
