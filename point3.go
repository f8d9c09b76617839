package geom

import (
	"fmt"
	"math"
)

// Point3 is a position in the 3D space S.
type Point3[S any] struct {
	X, Y, Z Length[S]
}

// Pt3 returns the point (x, y, z) in space S.
func Pt3[S any](x, y, z float64) Point3[S] {
	return Point3[S]{X: Length[S](x), Y: Length[S](y), Z: Length[S](z)}
}

func (p Point3[S]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", float64(p.X), float64(p.Y), float64(p.Z))
}

func (p Point3[S]) Translate(v Vector3[S]) Point3[S] {
	return Point3[S]{
		X: p.X + v.X,
		Y: p.Y + v.Y,
		Z: p.Z + v.Z,
	}
}

// Sub computes p−o.
func (p Point3[S]) Sub(o Point3[S]) Vector3[S] {
	return Vector3[S]{
		X: p.X - o.X,
		Y: p.Y - o.Y,
		Z: p.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (p Point3[S]) Lerp(o Point3[S], t float64) Point3[S] {
	return p.Translate(o.Sub(p).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (p Point3[S]) Midpoint(o Point3[S]) Point3[S] {
	return Point3[S]{
		X: 0.5 * (p.X + o.X),
		Y: 0.5 * (p.Y + o.Y),
		Z: 0.5 * (p.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (p Point3[S]) Distance(o Point3[S]) Length[S] {
	d := p.Sub(o)
	return Length[S](math.Sqrt(d.Dot(d)))
}

// RotateAround rotates p by the given angle around the axis,
// counterclockwise when viewed from the tip of the axis direction.
func (p Point3[S]) RotateAround(axis Axis3[S], a Angle) Point3[S] {
	return axis.Origin.Translate(p.Sub(axis.Origin).RotateAbout(axis.Direction, a))
}

// MirrorAcross mirrors p across the plane.
func (p Point3[S]) MirrorAcross(plane Plane3[S]) Point3[S] {
	return plane.Origin.Translate(p.Sub(plane.Origin).mirrorIn(plane.Normal))
}

// ScaleAbout scales the position of p about center by factor f.
// Negative factors reflect through the center.
func (p Point3[S]) ScaleAbout(center Point3[S], f float64) Point3[S] {
	return center.Translate(p.Sub(center).Mul(f))
}
