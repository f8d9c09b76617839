package geom

import "math"

// Angle is an angular measurement in radians. Angles are not tagged with
// a space: rotating by an angle means the same thing in every space.
type Angle float64

// Radians returns the angle of r radians.
func Radians(r float64) Angle { return Angle(r) }

// Degrees returns the angle of d degrees.
func Degrees(d float64) Angle { return Angle(d * (math.Pi / 180)) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * (180 / math.Pi) }

// Length is a scalar distance measured in the unit of space S. It is
// used for coordinates, radii, arc lengths, and approximation
// tolerances. Lengths from different spaces cannot be mixed.
type Length[S any] float64

// Mul returns the length scaled by f.
func (l Length[S]) Mul(f float64) Length[S] { return Length[S](float64(l) * f) }

// Abs returns the absolute value of the length.
func (l Length[S]) Abs() Length[S] { return Length[S](math.Abs(float64(l))) }

// Rate is a unit conversion factor expressed as To-units per one
// From-unit. Its To methods multiply by the rate and its From methods
// divide by it, undoing the To methods up to one rounding step.
type Rate[To, From any] float64

// Inverse returns the reciprocal rate. Note that converting with the
// reciprocal multiplies by 1/r, which incurs more rounding than the
// From methods, which divide by r itself.
func (r Rate[To, From]) Inverse() Rate[From, To] { return Rate[From, To](1 / float64(r)) }

// ToLength converts a length at this rate.
func (r Rate[To, From]) ToLength(l Length[From]) Length[To] {
	return Length[To](float64(l) * float64(r))
}

// FromLength converts back, dividing by the rate.
func (r Rate[To, From]) FromLength(l Length[To]) Length[From] {
	return Length[From](float64(l) / float64(r))
}
