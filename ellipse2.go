package geom

import "math"

// EllipticalArc2 is an arc of an ellipse in the 2D space S.
//
// Like [Arc2], the elliptical arc stores its own axes; the start and
// end angles are elliptical parameter angles measured in those axes,
// not geometric angles from the center.
type EllipticalArc2[S any] struct {
	center     Point2[S]
	xDir, yDir Direction2[S]
	rx, ry     Length[S]
	start, end Angle
}

// NewEllipticalArc2 returns the elliptical arc with the given center,
// x-axis direction and radii, starting at parameter angle startAngle
// and sweeping by sweptAngle. The y axis is the x axis rotated a
// quarter turn counterclockwise.
func NewEllipticalArc2[S any](center Point2[S], xDirection Direction2[S], xRadius, yRadius Length[S], startAngle, sweptAngle Angle) EllipticalArc2[S] {
	return EllipticalArc2[S]{
		center: center,
		xDir:   xDirection,
		yDir:   xDirection.Perpendicular(),
		rx:     xRadius,
		ry:     yRadius,
		start:  startAngle,
		end:    startAngle + sweptAngle,
	}
}

func (e EllipticalArc2[S]) Center() Point2[S]          { return e.center }
func (e EllipticalArc2[S]) XDirection() Direction2[S]  { return e.xDir }
func (e EllipticalArc2[S]) YDirection() Direction2[S]  { return e.yDir }
func (e EllipticalArc2[S]) XRadius() Length[S]         { return e.rx }
func (e EllipticalArc2[S]) YRadius() Length[S]         { return e.ry }
func (e EllipticalArc2[S]) StartAngle() Angle          { return e.start }
func (e EllipticalArc2[S]) EndAngle() Angle            { return e.end }
func (e EllipticalArc2[S]) SweptAngle() Angle          { return e.end - e.start }

// Eval evaluates the arc at parameter t in [0, 1], spaced uniformly in
// the elliptical parameter angle.
func (e EllipticalArc2[S]) Eval(t float64) Point2[S] {
	theta := float64(e.start) + t*float64(e.end-e.start)
	s, c := math.Sincos(theta)
	return e.center.
		Translate(e.xDir.Scale(e.rx.Mul(c))).
		Translate(e.yDir.Scale(e.ry.Mul(s)))
}

func (e EllipticalArc2[S]) StartPoint() Point2[S] { return e.Eval(0) }
func (e EllipticalArc2[S]) EndPoint() Point2[S]   { return e.Eval(1) }

// Reverse swaps the arc's start and end angles, running the
// parameterization backward.
func (e EllipticalArc2[S]) Reverse() EllipticalArc2[S] {
	e.start, e.end = e.end, e.start
	return e
}

func (e EllipticalArc2[S]) Translate(v Vector2[S]) EllipticalArc2[S] {
	e.center = e.center.Translate(v)
	return e
}

func (e EllipticalArc2[S]) RotateAround(center Point2[S], angle Angle) EllipticalArc2[S] {
	e.center = e.center.RotateAround(center, angle)
	e.xDir = e.xDir.Rotate(angle)
	e.yDir = e.yDir.Rotate(angle)
	return e
}

func (e EllipticalArc2[S]) MirrorAcross(axis Axis2[S]) EllipticalArc2[S] {
	e.center = e.center.MirrorAcross(axis)
	e.xDir = e.xDir.mirrorAlong(axis.Direction)
	e.yDir = e.yDir.mirrorAlong(axis.Direction)
	return e
}

func (e EllipticalArc2[S]) ScaleAbout(center Point2[S], f float64) EllipticalArc2[S] {
	e.center = e.center.ScaleAbout(center, f)
	e.rx = e.rx.Mul(math.Abs(f))
	e.ry = e.ry.Mul(math.Abs(f))
	if f < 0 {
		e.xDir = e.xDir.Neg()
		e.yDir = e.yDir.Neg()
	}
	return e
}

func (e EllipticalArc2[S]) BoundingBox() BoundingBox2[S] {
	return sweepBoundingBox2(e.center, e.xDir.Scale(e.rx), e.yDir.Scale(e.ry), e.start, e.end)
}

// Segments samples the arc into a polyline of n segments, spaced
// uniformly in the elliptical parameter angle.
func (e EllipticalArc2[S]) Segments(n int) (Polyline2[S], error) {
	return sample2(e.Eval, n)
}

// maxSecondDerivativeMagnitude bounds |d²p/dt²| over the arc. With
// θ(t) = θ₀ + t·Δθ the second derivative is −Δθ²·(rx·cosθ·x̂ + ry·sinθ·ŷ),
// whose magnitude is Δθ²·√(ry² + (rx²−ry²)·cos²θ); cos²θ is taken at
// its extreme over the swept interval.
func (e EllipticalArc2[S]) maxSecondDerivativeMagnitude() Length[S] {
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
func (e EllipticalArc2[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return curvatureBoundSegments(e.maxSecondDerivativeMagnitude(), maxError)
}

func (e EllipticalArc2[S]) Approximate(maxError Length[S]) (Polyline2[S], error) {
	n, err := e.NumApproximationSegments(maxError)
	if err != nil {
		return nil, err
	}
	return e.Segments(n)
}

// Curve wraps the arc in a [Curve2].
func (e EllipticalArc2[S]) Curve() Curve2[S] {
	return Curve2[S]{kind: EllipticalArcKind, ellipticalArc: e}
}

// Ellipse2 is an ellipse in the 2D space S.
type Ellipse2[S any] struct {
	center     Point2[S]
	xDir, yDir Direction2[S]
	rx, ry     Length[S]
}

// NewEllipse2 returns the ellipse with the given center, x-axis
// direction, and radii.
func NewEllipse2[S any](center Point2[S], xDirection Direction2[S], xRadius, yRadius Length[S]) Ellipse2[S] {
	return Ellipse2[S]{
		center: center,
		xDir:   xDirection,
		yDir:   xDirection.Perpendicular(),
		rx:     xRadius,
		ry:     yRadius,
	}
}

func (e Ellipse2[S]) Center() Point2[S]         { return e.center }
func (e Ellipse2[S]) XDirection() Direction2[S] { return e.xDir }
func (e Ellipse2[S]) XRadius() Length[S]        { return e.rx }
func (e Ellipse2[S]) YRadius() Length[S]        { return e.ry }

// ToEllipticalArc converts the ellipse to a full-turn counterclockwise
// elliptical arc starting on its x axis. The conversion is one-way.
func (e Ellipse2[S]) ToEllipticalArc() EllipticalArc2[S] {
	return EllipticalArc2[S]{
		center: e.center,
		xDir:   e.xDir,
		yDir:   e.yDir,
		rx:     e.rx,
		ry:     e.ry,
		start:  0,
		end:    2 * math.Pi,
	}
}
