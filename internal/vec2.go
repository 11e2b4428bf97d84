package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Vec2 is an immutable two dimensional vector. Operations never
// modify the receiver; they return a new value. Vec2 is a comparable
// struct, so == is exact component equality and vectors can be used
// as map keys; use AlmostEquals for tolerance-based comparison. Note
// the deliberate asymmetry: == compares components exactly, while the
// relational comparisons (Less and friends) compare raw squared
// magnitude. Unifying them would break hash consistency.
type Vec2 struct {
	X, Y float64
}

// V constructs a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Polar constructs a vector from an angle in degrees from the
// positive x axis and a length.
func Polar(angle, length float64) Vec2 {
	c, s := cosSinDeg(angle)
	return Vec2{c * length, s * length}
}

// Unit constructs a unit vector at an angle in degrees.
func Unit(angle float64) Vec2 {
	return Polar(angle, 1)
}

// Length is the scalar magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Length2 is the squared magnitude. Prefer it when comparing lengths;
// it avoids the square root.
func (v Vec2) Length2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle is the angle the vector makes to the positive x axis, in
// degrees in the range (-180, 180].
func (v Vec2) Angle() float64 {
	return degrees(math.Atan2(v.Y, v.X))
}

// IsNull reports whether the vector is effectively zero length, i.e.
// its squared length is under the current tolerance.
func (v Vec2) IsNull() bool {
	return v.Length2() < Epsilon2
}

// AlmostEquals reports whether the distance between the vectors is
// under the current tolerance.
func (v Vec2) AlmostEquals(o Vec2) bool {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx+dy*dy < Epsilon2
}

// Less compares squared magnitude: shorter vectors sort before longer
// ones regardless of direction.
func (v Vec2) Less(o Vec2) bool { return v.Length2() < o.Length2() }

// LessEq compares squared magnitude.
func (v Vec2) LessEq(o Vec2) bool { return v.Length2() <= o.Length2() }

// Greater compares squared magnitude.
func (v Vec2) Greater(o Vec2) bool { return v.Length2() > o.Length2() }

// GreaterEq compares squared magnitude.
func (v Vec2) GreaterEq(o Vec2) bool { return v.Length2() >= o.Length2() }

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Neg returns the unary negation.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Mul scales the vector by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// MulVec multiplies componentwise with another vector.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides the vector by a scalar. A zero divisor panics with an
// error wrapping ErrArithmetic rather than producing Inf components.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		panic(errors.Wrap(ErrArithmetic, "Vec2.Div: division by zero"))
	}
	return Vec2{v.X / s, v.Y / s}
}

// DivVec divides componentwise by another vector. A zero component in
// the divisor panics with an error wrapping ErrArithmetic.
func (v Vec2) DivVec(o Vec2) Vec2 {
	if o.X == 0 || o.Y == 0 {
		panic(errors.Wrap(ErrArithmetic, "Vec2.DivVec: division by zero component"))
	}
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// Dot computes the dot product with another vector.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross computes the z component of the cross product with another
// vector.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// AngleTo computes the signed angle from this vector to another, in
// degrees.
func (v Vec2) AngleTo(o Vec2) float64 {
	return degrees(math.Atan2(o.Y, o.X) - math.Atan2(v.Y, v.X))
}

// DistanceTo computes the distance to another point vector.
func (v Vec2) DistanceTo(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotated computes the vector rotated by an angle in degrees.
func (v Vec2) Rotated(angle float64) Vec2 {
	rad := radians(angle)
	ca, sa := math.Cos(rad), math.Sin(rad)
	return Vec2{v.X*ca - v.Y*sa, v.X*sa + v.Y*ca}
}

// ScaledTo computes the vector scaled to the given length. A null
// vector has no direction to scale along, so it stays null.
func (v Vec2) ScaledTo(length float64) Vec2 {
	l2 := v.Length2()
	if l2 < Epsilon2 {
		return Vec2{}
	}
	s := length / math.Sqrt(l2)
	return Vec2{v.X * s, v.Y * s}
}

// Normalized returns the vector scaled to unit length. If the vector
// is null, the null vector is returned.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l > Epsilon {
		return Vec2{v.X / l, v.Y / l}
	}
	return Vec2{}
}

// Perpendicular computes the vector rotated +90°.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Project computes the projection of another vector onto this one.
// Projecting onto a null vector yields the null vector.
func (v Vec2) Project(o Vec2) Vec2 {
	l2 := v.Length2()
	if l2 < Epsilon2 {
		return Vec2{}
	}
	s := v.Dot(o) / l2
	return Vec2{v.X * s, v.Y * s}
}

// Reflect computes the reflection of this vector against another.
// Reflecting against a null vector yields the null vector.
func (v Vec2) Reflect(o Vec2) Vec2 {
	l2 := o.Length2()
	if l2 < Epsilon2 {
		return Vec2{}
	}
	s := 2 * v.Dot(o) / l2
	return Vec2{o.X*s - v.X, o.Y*s - v.Y}
}

// Clamped returns the vector with its length clamped into
// [minLength, maxLength]. minLength > maxLength panics with an error
// wrapping ErrValue. A null vector stays null; it has no direction to
// grow along.
func (v Vec2) Clamped(minLength, maxLength float64) Vec2 {
	if minLength > maxLength {
		panic(errors.Wrap(ErrValue, "Vec2.Clamped: expected minLength <= maxLength"))
	}
	l := v.Length()
	if l <= Epsilon {
		return Vec2{}
	}
	cl := l
	if cl < minLength {
		cl = minLength
	}
	if cl > maxLength {
		cl = maxLength
	}
	return Vec2{v.X * (cl / l), v.Y * (cl / l)}
}

// Lerp interpolates linearly between this vector and another. t=0
// yields the receiver, t=1 the other vector; t outside [0,1]
// extrapolates.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X*(1-t) + o.X*t, v.Y*(1-t) + o.Y*t}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}
