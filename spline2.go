package geom

// QuadraticSpline2 is a quadratic Bézier spline in the 2D space S,
// defined by its start point P0, control point P1, and end point P2.
type QuadraticSpline2[S any] struct {
	P0, P1, P2 Point2[S]
}

func (q QuadraticSpline2[S]) StartPoint() Point2[S] { return q.P0 }
func (q QuadraticSpline2[S]) EndPoint() Point2[S]   { return q.P2 }

// Eval evaluates the spline at parameter t in [0, 1].
func (q QuadraticSpline2[S]) Eval(t float64) Point2[S] {
	mt := 1 - t
	return Point2[S]{
		X: q.P0.X.Mul(mt*mt) + q.P1.X.Mul(2*mt*t) + q.P2.X.Mul(t*t),
		Y: q.P0.Y.Mul(mt*mt) + q.P1.Y.Mul(2*mt*t) + q.P2.Y.Mul(t*t),
	}
}

// Reverse returns the spline with its control points in reverse order.
// Reversing twice reproduces the original spline exactly.
func (q QuadraticSpline2[S]) Reverse() QuadraticSpline2[S] {
	return QuadraticSpline2[S]{P0: q.P2, P1: q.P1, P2: q.P0}
}

func (q QuadraticSpline2[S]) Translate(v Vector2[S]) QuadraticSpline2[S] {
	return QuadraticSpline2[S]{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadraticSpline2[S]) RotateAround(center Point2[S], a Angle) QuadraticSpline2[S] {
	return QuadraticSpline2[S]{
		P0: q.P0.RotateAround(center, a),
		P1: q.P1.RotateAround(center, a),
		P2: q.P2.RotateAround(center, a),
	}
}

func (q QuadraticSpline2[S]) MirrorAcross(axis Axis2[S]) QuadraticSpline2[S] {
	return QuadraticSpline2[S]{
		P0: q.P0.MirrorAcross(axis),
		P1: q.P1.MirrorAcross(axis),
		P2: q.P2.MirrorAcross(axis),
	}
}

func (q QuadraticSpline2[S]) ScaleAbout(center Point2[S], f float64) QuadraticSpline2[S] {
	return QuadraticSpline2[S]{
		P0: q.P0.ScaleAbout(center, f),
		P1: q.P1.ScaleAbout(center, f),
		P2: q.P2.ScaleAbout(center, f),
	}
}

// BoundingBox bounds the spline by its endpoints and the interior
// extrema of each coordinate. The derivative is linear per axis, so
// each axis contributes at most one extremum.
func (q QuadraticSpline2[S]) BoundingBox() BoundingBox2[S] {
	box := NewBoundingBox2(q.P0, q.P2)
	for _, c := range [2][3]float64{
		{float64(q.P0.X), float64(q.P1.X), float64(q.P2.X)},
		{float64(q.P0.Y), float64(q.P1.Y), float64(q.P2.Y)},
	} {
		denom := c[0] - 2*c[1] + c[2]
		if denom == 0 {
			continue
		}
		if t := (c[0] - c[1]) / denom; t > 0 && t < 1 {
			box = box.UnionPoint(q.Eval(t))
		}
	}
	return box
}

// Segments samples the spline into a polyline of n segments, spaced
// uniformly in the Bézier parameter.
func (q QuadraticSpline2[S]) Segments(n int) (Polyline2[S], error) {
	return sample2(q.Eval, n)
}

// secondDerivativeMagnitude returns |d²p/dt²|, which is constant for a
// quadratic: 2·(P0 − 2·P1 + P2).
func (q QuadraticSpline2[S]) secondDerivativeMagnitude() Length[S] {
	d := Vector2[S]{
		X: (q.P0.X - 2*q.P1.X + q.P2.X).Mul(2),
		Y: (q.P0.Y - 2*q.P1.Y + q.P2.Y).Mul(2),
	}
	return d.Length()
}

// NumApproximationSegments returns the smallest segment count that
// keeps the sampled polyline within maxError of the spline, from the
// spline's constant second derivative.
func (q QuadraticSpline2[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return curvatureBoundSegments(q.secondDerivativeMagnitude(), maxError)
}

func (q QuadraticSpline2[S]) Approximate(maxError Length[S]) (Polyline2[S], error) {
	n, err := q.NumApproximationSegments(maxError)
	if err != nil {
		return nil, err
	}
	return q.Segments(n)
}

// Curve wraps the spline in a [Curve2].
func (q QuadraticSpline2[S]) Curve() Curve2[S] {
	return Curve2[S]{kind: QuadraticSplineKind, quadratic: q}
}

// CubicSpline2 is a cubic Bézier spline in the 2D space S, defined by
// its start point P0, control points P1 and P2, and end point P3.
type CubicSpline2[S any] struct {
	P0, P1, P2, P3 Point2[S]
}

func (c CubicSpline2[S]) StartPoint() Point2[S] { return c.P0 }
func (c CubicSpline2[S]) EndPoint() Point2[S]   { return c.P3 }

// Eval evaluates the spline at parameter t in [0, 1].
func (c CubicSpline2[S]) Eval(t float64) Point2[S] {
	mt := 1 - t
	return Point2[S]{
		X: c.P0.X.Mul(mt*mt*mt) + c.P1.X.Mul(3*mt*mt*t) + c.P2.X.Mul(3*mt*t*t) + c.P3.X.Mul(t*t*t),
		Y: c.P0.Y.Mul(mt*mt*mt) + c.P1.Y.Mul(3*mt*mt*t) + c.P2.Y.Mul(3*mt*t*t) + c.P3.Y.Mul(t*t*t),
	}
}

// Reverse returns the spline with its control points in reverse order.
// Reversing twice reproduces the original spline exactly.
func (c CubicSpline2[S]) Reverse() CubicSpline2[S] {
	return CubicSpline2[S]{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

func (c CubicSpline2[S]) Translate(v Vector2[S]) CubicSpline2[S] {
	return CubicSpline2[S]{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicSpline2[S]) RotateAround(center Point2[S], a Angle) CubicSpline2[S] {
	return CubicSpline2[S]{
		P0: c.P0.RotateAround(center, a),
		P1: c.P1.RotateAround(center, a),
		P2: c.P2.RotateAround(center, a),
		P3: c.P3.RotateAround(center, a),
	}
}

func (c CubicSpline2[S]) MirrorAcross(axis Axis2[S]) CubicSpline2[S] {
	return CubicSpline2[S]{
		P0: c.P0.MirrorAcross(axis),
		P1: c.P1.MirrorAcross(axis),
		P2: c.P2.MirrorAcross(axis),
		P3: c.P3.MirrorAcross(axis),
	}
}

func (c CubicSpline2[S]) ScaleAbout(center Point2[S], f float64) CubicSpline2[S] {
	return CubicSpline2[S]{
		P0: c.P0.ScaleAbout(center, f),
		P1: c.P1.ScaleAbout(center, f),
		P2: c.P2.ScaleAbout(center, f),
		P3: c.P3.ScaleAbout(center, f),
	}
}

// BoundingBox bounds the spline by its endpoints and the interior
// extrema of each coordinate, found as the roots of the per-axis
// quadratic derivative.
func (c CubicSpline2[S]) BoundingBox() BoundingBox2[S] {
	box := NewBoundingBox2(c.P0, c.P3)
	for _, p := range [2][4]float64{
		{float64(c.P0.X), float64(c.P1.X), float64(c.P2.X), float64(c.P3.X)},
		{float64(c.P0.Y), float64(c.P1.Y), float64(c.P2.Y), float64(c.P3.Y)},
	} {
		// p'(t)/3 = a·(1−t)² + 2b·t·(1−t) + c·t²
		a := p[1] - p[0]
		b := p[2] - p[1]
		d := p[3] - p[2]
		roots, n := solveQuadratic(a, 2*(b-a), a-2*b+d)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				box = box.UnionPoint(c.Eval(t))
			}
		}
	}
	return box
}

// Segments samples the spline into a polyline of n segments, spaced
// uniformly in the Bézier parameter.
func (c CubicSpline2[S]) Segments(n int) (Polyline2[S], error) {
	return sample2(c.Eval, n)
}

// maxSecondDerivativeMagnitude bounds |d²p/dt²|. The second derivative
// is linear in t, so its magnitude peaks at one of the ends:
// 6·(P0 − 2·P1 + P2) at t=0 and 6·(P1 − 2·P2 + P3) at t=1.
func (c CubicSpline2[S]) maxSecondDerivativeMagnitude() Length[S] {
	u := Vector2[S]{
		X: c.P0.X - 2*c.P1.X + c.P2.X,
		Y: c.P0.Y - 2*c.P1.Y + c.P2.Y,
	}
	v := Vector2[S]{
		X: c.P1.X - 2*c.P2.X + c.P3.X,
		Y: c.P1.Y - 2*c.P2.Y + c.P3.Y,
	}
	return max(u.Length(), v.Length()).Mul(6)
}

// NumApproximationSegments returns the smallest segment count that
// keeps the sampled polyline within maxError of the spline, from a
// bound on the spline's second derivative.
func (c CubicSpline2[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return curvatureBoundSegments(c.maxSecondDerivativeMagnitude(), maxError)
}

func (c CubicSpline2[S]) Approximate(maxError Length[S]) (Polyline2[S], error) {
	n, err := c.NumApproximationSegments(maxError)
	if err != nil {
		return nil, err
	}
	return c.Segments(n)
}

// Curve wraps the spline in a [Curve2].
func (c CubicSpline2[S]) Curve() Curve2[S] {
	return Curve2[S]{kind: CubicSplineKind, cubic: c}
}
