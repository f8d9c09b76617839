package geom

import "math"

// Arc3 is a circular arc in the 3D space S, lying in the plane spanned
// by its own in-plane axes.
//
// As in 2D, the arc stores its axes alongside the center and measures
// its start and end angles in those axes, so rigid transforms touch
// only the center and axes and reversal swaps the stored angles.
type Arc3[S any] struct {
	center     Point3[S]
	xDir, yDir Direction3[S]
	radius     Length[S]
	start, end Angle
}

// NewArc3 returns the arc centered at center in the plane spanned by
// the perpendicular directions xDirection and yDirection, starting at
// startAngle (measured from xDirection toward yDirection) and sweeping
// by sweptAngle.
func NewArc3[S any](center Point3[S], xDirection, yDirection Direction3[S], radius Length[S], startAngle, sweptAngle Angle) Arc3[S] {
	return Arc3[S]{
		center: center,
		xDir:   xDirection,
		yDir:   yDirection,
		radius: radius,
		start:  startAngle,
		end:    startAngle + sweptAngle,
	}
}

func (a Arc3[S]) Center() Point3[S]         { return a.center }
func (a Arc3[S]) XDirection() Direction3[S] { return a.xDir }
func (a Arc3[S]) YDirection() Direction3[S] { return a.yDir }
func (a Arc3[S]) Radius() Length[S]         { return a.radius }
func (a Arc3[S]) StartAngle() Angle         { return a.start }
func (a Arc3[S]) EndAngle() Angle           { return a.end }

// SweptAngle returns the signed angle swept from start to end.
func (a Arc3[S]) SweptAngle() Angle { return a.end - a.start }

// Eval evaluates the arc at parameter t in [0, 1], spaced uniformly in
// arc angle.
func (a Arc3[S]) Eval(t float64) Point3[S] {
	theta := float64(a.start) + t*float64(a.end-a.start)
	s, c := math.Sincos(theta)
	return a.center.
		Translate(a.xDir.Scale(a.radius.Mul(c))).
		Translate(a.yDir.Scale(a.radius.Mul(s)))
}

func (a Arc3[S]) StartPoint() Point3[S] { return a.Eval(0) }
func (a Arc3[S]) EndPoint() Point3[S]   { return a.Eval(1) }

// Reverse swaps the arc's start and end angles, running the
// parameterization backward.
func (a Arc3[S]) Reverse() Arc3[S] {
	a.start, a.end = a.end, a.start
	return a
}

func (a Arc3[S]) Translate(v Vector3[S]) Arc3[S] {
	a.center = a.center.Translate(v)
	return a
}

func (a Arc3[S]) RotateAround(axis Axis3[S], angle Angle) Arc3[S] {
	a.center = a.center.RotateAround(axis, angle)
	a.xDir = a.xDir.RotateAbout(axis.Direction, angle)
	a.yDir = a.yDir.RotateAbout(axis.Direction, angle)
	return a
}

func (a Arc3[S]) MirrorAcross(plane Plane3[S]) Arc3[S] {
	a.center = a.center.MirrorAcross(plane)
	a.xDir = a.xDir.mirrorIn(plane.Normal)
	a.yDir = a.yDir.mirrorIn(plane.Normal)
	return a
}

func (a Arc3[S]) ScaleAbout(center Point3[S], f float64) Arc3[S] {
	a.center = a.center.ScaleAbout(center, f)
	a.radius = a.radius.Mul(math.Abs(f))
	if f < 0 {
		a.xDir = a.xDir.Neg()
		a.yDir = a.yDir.Neg()
	}
	return a
}

func (a Arc3[S]) BoundingBox() BoundingBox3[S] {
	return sweepBoundingBox3(a.center, a.xDir.Scale(a.radius), a.yDir.Scale(a.radius), a.start, a.end)
}

// Segments samples the arc into a polyline of n segments, spaced
// uniformly in arc angle.
func (a Arc3[S]) Segments(n int) (Polyline3[S], error) {
	return sample3(a.Eval, n)
}

// NumApproximationSegments returns the smallest segment count that
// keeps the sampled polyline within maxError of the arc, from the
// sagitta relation between chord deviation and angle step.
func (a Arc3[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return arcApproximationSegments(a.radius, a.SweptAngle(), maxError)
}

func (a Arc3[S]) Approximate(maxError Length[S]) (Polyline3[S], error) {
	n, err := a.NumApproximationSegments(maxError)
	if err != nil {
		return nil, err
	}
	return a.Segments(n)
}

// Curve wraps the arc in a [Curve3].
func (a Arc3[S]) Curve() Curve3[S] {
	return Curve3[S]{kind: ArcKind, arc: a}
}

// sweepBoundingBox3 bounds center + cosθ·xv + sinθ·yv for θ in the
// swept interval, per component as in the 2D case.
func sweepBoundingBox3[S any](center Point3[S], xv, yv Vector3[S], start, end Angle) BoundingBox3[S] {
	lo, hi := float64(start), float64(end)
	if lo > hi {
		lo, hi = hi, lo
	}
	eval := func(theta float64) Point3[S] {
		s, c := math.Sincos(theta)
		return center.Translate(xv.Mul(c)).Translate(yv.Mul(s))
	}
	box := NewBoundingBox3(eval(lo), eval(hi))
	for _, comp := range [3][2]float64{
		{float64(xv.X), float64(yv.X)},
		{float64(xv.Y), float64(yv.Y)},
		{float64(xv.Z), float64(yv.Z)},
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

// Circle3 is a circle in the 3D space S, lying in the plane through its
// center with the given normal.
type Circle3[S any] struct {
	Center Point3[S]
	Normal Direction3[S]
	Radius Length[S]
}

// ToArc converts the circle to a full-turn arc, counterclockwise when
// viewed from the tip of the normal. The in-plane x axis is chosen
// perpendicular to the normal; the conversion is one-way.
func (c Circle3[S]) ToArc() Arc3[S] {
	xDir := perpendicularTo(c.Normal)
	yDir := c.Normal.Cross(xDir)
	return NewArc3(c.Center, xDir, yDir, c.Radius, 0, 2*math.Pi)
}
