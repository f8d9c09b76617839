package geom

import (
	"fmt"
	"math"
)

// Point2 is a position in the 2D space S.
type Point2[S any] struct {
	X, Y Length[S]
}

// Pt2 returns the point (x, y) in space S.
func Pt2[S any](x, y float64) Point2[S] {
	return Point2[S]{X: Length[S](x), Y: Length[S](y)}
}

func (p Point2[S]) String() string {
	return fmt.Sprintf("(%g, %g)", float64(p.X), float64(p.Y))
}

func (p Point2[S]) Translate(v Vector2[S]) Point2[S] {
	return Point2[S]{
		X: p.X + v.X,
		Y: p.Y + v.Y,
	}
}

// Sub computes p−o.
func (p Point2[S]) Sub(o Point2[S]) Vector2[S] {
	return Vector2[S]{
		X: p.X - o.X,
		Y: p.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (p Point2[S]) Lerp(o Point2[S], t float64) Point2[S] {
	return p.Translate(o.Sub(p).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (p Point2[S]) Midpoint(o Point2[S]) Point2[S] {
	return Point2[S]{
		X: 0.5 * (p.X + o.X),
		Y: 0.5 * (p.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (p Point2[S]) Distance(o Point2[S]) Length[S] {
	return Length[S](math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y)))
}

// RotateAround rotates p by the given angle around center,
// counterclockwise for positive angles.
func (p Point2[S]) RotateAround(center Point2[S], a Angle) Point2[S] {
	return center.Translate(p.Sub(center).Rotate(a))
}

// MirrorAcross mirrors p across the axis.
func (p Point2[S]) MirrorAcross(axis Axis2[S]) Point2[S] {
	return axis.Origin.Translate(p.Sub(axis.Origin).mirrorAlong(axis.Direction))
}

// ScaleAbout scales the position of p about center by factor f.
// Negative factors reflect through the center.
func (p Point2[S]) ScaleAbout(center Point2[S], f float64) Point2[S] {
	return center.Translate(p.Sub(center).Mul(f))
}
