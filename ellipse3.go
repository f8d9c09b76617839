package geom

import "math"

// EllipticalArc3 is an arc of an ellipse in the 3D space S, lying in
// the plane spanned by its own axes.
//
// The start and end angles are elliptical parameter angles measured in
// those axes, not geometric angles from the center.
type EllipticalArc3[S any] struct {
	center     Point3[S]
	xDir, yDir Direction3[S]
	rx, ry     Length[S]
	start, end Angle
}

// NewEllipticalArc3 returns the elliptical arc with the given center,
// perpendicular axis directions and radii, starting at parameter angle
// startAngle and sweeping by sweptAngle.
func NewEllipticalArc3[S any](center Point3[S], xDirection, yDirection Direction3[S], xRadius, yRadius Length[S], startAngle, sweptAngle Angle) EllipticalArc3[S] {
	return EllipticalArc3[S]{
		center: center,
		xDir:   xDirection,
		yDir:   yDirection,
		rx:     xRadius,
		ry:     yRadius,
		start:  startAngle,
		end:    startAngle + sweptAngle,
	}
}

func (e EllipticalArc3[S]) Center() Point3[S]         { return e.center }
func (e EllipticalArc3[S]) XDirection() Direction3[S] { return e.xDir }
func (e EllipticalArc3[S]) YDirection() Direction3[S] { return e.yDir }
func (e EllipticalArc3[S]) XRadius() Length[S]        { return e.rx }
func (e EllipticalArc3[S]) YRadius() Length[S]        { return e.ry }
func (e EllipticalArc3[S]) StartAngle() Angle         { return e.start }
func (e EllipticalArc3[S]) EndAngle() Angle           { return e.end }
func (e EllipticalArc3[S]) SweptAngle() Angle         { return e.end - e.start }

// Eval evaluates the arc at parameter t in [0, 1], spaced uniformly in
// the elliptical parameter angle.
func (e EllipticalArc3[S]) Eval(t float64) Point3[S] {
	theta := float64(e.start) + t*float64(e.end-e.start)
	s, c := math.Sincos(theta)
	return e.center.
		Translate(e.xDir.Scale(e.rx.Mul(c))).
		Translate(e.yDir.Scale(e.ry.Mul(s)))
}

func (e EllipticalArc3[S]) StartPoint() Point3[S] { return e.Eval(0) }
func (e EllipticalArc3[S]) EndPoint() Point3[S]   { return e.Eval(1) }

// Reverse swaps the arc's start and end angles, running the
// parameterization backward.
func (e EllipticalArc3[S]) Reverse() EllipticalArc3[S] {
	e.start, e.end = e.end, e.start
	return e
}

func (e EllipticalArc3[S]) Translate(v Vector3[S]) EllipticalArc3[S] {
	e.center = e.center.Translate(v)
	return e
}

func (e EllipticalArc3[S]) RotateAround(axis Axis3[S], angle Angle) EllipticalArc3[S] {
	e.center = e.center.RotateAround(axis, angle)
	e.xDir = e.xDir.RotateAbout(axis.Direction, angle)
	e.yDir = e.yDir.RotateAbout(axis.Direction, angle)
	return e
}

func (e EllipticalArc3[S]) MirrorAcross(plane Plane3[S]) EllipticalArc3[S] {
	e.center = e.center.MirrorAcross(plane)
	e.xDir = e.xDir.mirrorIn(plane.Normal)
	e.yDir = e.yDir.mirrorIn(plane.Normal)
	return e
}

func (e EllipticalArc3[S]) ScaleAbout(center Point3[S], f float64) EllipticalArc3[S] {
	e.center = e.center.ScaleAbout(center, f)
	e.rx = e.rx.Mul(math.Abs(f))
	e.ry = e.ry.Mul(math.Abs(f))
	if f < 0 {
		e.xDir = e.xDir.Neg()
		e.yDir = e.yDir.Neg()
	}
	return e
}

func (e EllipticalArc3[S]) BoundingBox() BoundingBox3[S] {
	return sweepBoundingBox3(e.center, e.xDir.Scale(e.rx), e.yDir.Scale(e.ry), e.start, e.end)
}

// Segments samples the arc into a polyline of n segments, spaced
// uniformly in the elliptical parameter angle.
func (e EllipticalArc3[S]) Segments(n int) (Polyline3[S], error) {
	return sample3(e.Eval, n)
}

// maxSecondDerivativeMagnitude bounds |d²p/dt²| over the arc, the same
// bound as in the 2D case: the parameterization lives in the arc's own
// plane.
func (e EllipticalArc3[S]) maxSecondDerivativeMagnitude() Length[S] {
	sweep := float64(e.end - e.start)
	loCos2, hiCos2 := cosSquaredExtremes(float64(e.start), float64(e.end))
	rx2 := float64(e.rx) * float64(e.rx)
	ry2 := float64(e.ry) * float64(e.ry)
	cos2 := hiCos2
	if rx2 < ry2 {
		cos2 = loCos2
	}
	return Length[S](sweep * sweep * math.Sqrt(ry2+(rx2-ry2)*cos2))
}

// NumApproximationSegments returns the smallest segment count that
// keeps the sampled polyline within maxError of the arc, from a bound
// on the parameterization's second derivative.
func (e EllipticalArc3[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return curvatureBoundSegments(e.maxSecondDerivativeMagnitude(), maxError)
}

func (e EllipticalArc3[S]) Approximate(maxError Length[S]) (Polyline3[S], error) {
	n, err := e.NumApproximationSegments(maxError)
	if err != nil {
		return nil, err
	}
	return e.Segments(n)
}

// Curve wraps the arc in a [Curve3].
func (e EllipticalArc3[S]) Curve() Curve3[S] {
	return Curve3[S]{kind: EllipticalArcKind, ellipticalArc: e}
}

// Ellipse3 is an ellipse in the 3D space S, lying in the plane spanned
// by its axes.
type Ellipse3[S any] struct {
	center     Point3[S]
	xDir, yDir Direction3[S]
	rx, ry     Length[S]
}

// NewEllipse3 returns the ellipse with the given center, perpendicular
// axis directions, and radii.
func NewEllipse3[S any](center Point3[S], xDirection, yDirection Direction3[S], xRadius, yRadius Length[S]) Ellipse3[S] {
	return Ellipse3[S]{
		center: center,
		xDir:   xDirection,
		yDir:   yDirection,
		rx:     xRadius,
		ry:     yRadius,
	}
}

func (e Ellipse3[S]) Center() Point3[S]         { return e.center }
func (e Ellipse3[S]) XDirection() Direction3[S] { return e.xDir }
func (e Ellipse3[S]) YDirection() Direction3[S] { return e.yDir }
func (e Ellipse3[S]) XRadius() Length[S]        { return e.rx }
func (e Ellipse3[S]) YRadius() Length[S]        { return e.ry }

// ToEllipticalArc converts the ellipse to a full-turn elliptical arc
// starting on its x axis. The conversion is one-way.
func (e Ellipse3[S]) ToEllipticalArc() EllipticalArc3[S] {
	return EllipticalArc3[S]{
		center: e.center,
		xDir:   e.xDir,
		yDir:   e.yDir,
		rx:     e.rx,
		ry:     e.ry,
		start:  0,
		end:    2 * math.Pi,
	}
}
