package geom

import "math"

// Arc2 is a circular arc in the 2D space S.
//
// The arc stores its own orthonormal axes alongside the center, and its
// start and end angles are measured in those axes. Rigid transforms
// therefore touch only the center and axes; mirroring flips handedness
// by mirroring the axes; reversal swaps the stored angles, so reversing
// twice reproduces the original arc exactly.
type Arc2[S any] struct {
	center     Point2[S]
	xDir, yDir Direction2[S]
	radius     Length[S]
	start, end Angle
}

// NewArc2 returns the arc centered at center with the given radius,
// starting at startAngle (measured counterclockwise from the positive x
// axis) and sweeping by sweptAngle, counterclockwise for positive
// angles. A zero radius or zero sweep is legal and yields a degenerate
// arc.
func NewArc2[S any](center Point2[S], radius Length[S], startAngle, sweptAngle Angle) Arc2[S] {
	return Arc2[S]{
		center: center,
		xDir:   Direction2[S]{X: 1, Y: 0},
		yDir:   Direction2[S]{X: 0, Y: 1},
		radius: radius,
		start:  startAngle,
		end:    startAngle + sweptAngle,
	}
}

func (a Arc2[S]) Center() Point2[S] { return a.center }
func (a Arc2[S]) Radius() Length[S] { return a.radius }
func (a Arc2[S]) StartAngle() Angle { return a.start }
func (a Arc2[S]) EndAngle() Angle   { return a.end }

// SweptAngle returns the signed angle swept from start to end.
func (a Arc2[S]) SweptAngle() Angle { return a.end - a.start }

// Eval evaluates the arc at parameter t in [0, 1], spaced uniformly in
// arc angle.
func (a Arc2[S]) Eval(t float64) Point2[S] {
	theta := float64(a.start) + t*float64(a.end-a.start)
	s, c := math.Sincos(theta)
	return a.center.
		Translate(a.xDir.Scale(a.radius.Mul(c))).
		Translate(a.yDir.Scale(a.radius.Mul(s)))
}

func (a Arc2[S]) StartPoint() Point2[S] { return a.Eval(0) }
func (a Arc2[S]) EndPoint() Point2[S]   { return a.Eval(1) }

// Reverse swaps the arc's start and end angles, running the
// parameterization backward.
func (a Arc2[S]) Reverse() Arc2[S] {
	a.start, a.end = a.end, a.start
	return a
}

func (a Arc2[S]) Translate(v Vector2[S]) Arc2[S] {
	a.center = a.center.Translate(v)
	return a
}

func (a Arc2[S]) RotateAround(center Point2[S], angle Angle) Arc2[S] {
	a.center = a.center.RotateAround(center, angle)
	a.xDir = a.xDir.Rotate(angle)
	a.yDir = a.yDir.Rotate(angle)
	return a
}

func (a Arc2[S]) MirrorAcross(axis Axis2[S]) Arc2[S] {
	a.center = a.center.MirrorAcross(axis)
	a.xDir = a.xDir.mirrorAlong(axis.Direction)
	a.yDir = a.yDir.mirrorAlong(axis.Direction)
	return a
}

func (a Arc2[S]) ScaleAbout(center Point2[S], f float64) Arc2[S] {
	a.center = a.center.ScaleAbout(center, f)
	a.radius = a.radius.Mul(math.Abs(f))
	if f < 0 {
		a.xDir = a.xDir.Neg()
		a.yDir = a.yDir.Neg()
	}
	return a
}

func (a Arc2[S]) BoundingBox() BoundingBox2[S] {
	return sweepBoundingBox2(a.center, a.xDir.Scale(a.radius), a.yDir.Scale(a.radius), a.start, a.end)
}

// Segments samples the arc into a polyline of n segments, spaced
// uniformly in arc angle.
func (a Arc2[S]) Segments(n int) (Polyline2[S], error) {
	return sample2(a.Eval, n)
}

// NumApproximationSegments returns the smallest segment count that
// keeps the sampled polyline within maxError of the arc, from the
// sagitta relation between chord deviation and angle step.
func (a Arc2[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return arcApproximationSegments(a.radius, a.SweptAngle(), maxError)
}

func (a Arc2[S]) Approximate(maxError Length[S]) (Polyline2[S], error) {
	n, err := a.NumApproximationSegments(maxError)
	if err != nil {
		return nil, err
	}
	return a.Segments(n)
}

// Curve wraps the arc in a [Curve2].
func (a Arc2[S]) Curve() Curve2[S] {
	return Curve2[S]{kind: ArcKind, arc: a}
}

// sweepBoundingBox2 bounds center + cosθ·xv + sinθ·yv for θ in the
// swept interval. Per component the extremum angles satisfy
// −sinθ·xvᵢ + cosθ·yvᵢ = 0, i.e. θ = atan2(yvᵢ, xvᵢ) up to a half turn.
func sweepBoundingBox2[S any](center Point2[S], xv, yv Vector2[S], start, end Angle) BoundingBox2[S] {
	lo, hi := float64(start), float64(end)
	if lo > hi {
		lo, hi = hi, lo
	}
	eval := func(theta float64) Point2[S] {
		s, c := math.Sincos(theta)
		return center.Translate(xv.Mul(c)).Translate(yv.Mul(s))
	}
	box := NewBoundingBox2(eval(lo), eval(hi))
	for _, comp := range [2][2]float64{
		{float64(xv.X), float64(yv.X)},
		{float64(xv.Y), float64(yv.Y)},
	} {
		root := math.Atan2(comp[1], comp[0])
		for _, offset := range [2]float64{root, root + math.Pi} {
			if containsAngle(lo, hi, offset, 2*math.Pi) {
				k := math.Ceil((lo - offset) / (2 * math.Pi))
				box = box.UnionPoint(eval(offset + k*(2*math.Pi)))
			}
		}
	}
	return box
}

// Circle2 is a circle in the 2D space S.
type Circle2[S any] struct {
	Center Point2[S]
	Radius Length[S]
}

// ToArc converts the circle to a full-turn counterclockwise arc
// starting on the positive x axis. The conversion is one-way; there is
// no way back from the general arc to the circle.
func (c Circle2[S]) ToArc() Arc2[S] {
	return NewArc2(c.Center, c.Radius, 0, 2*math.Pi)
}
