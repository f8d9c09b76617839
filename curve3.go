package geom

// Curve3 is the 3D counterpart of [Curve2]: a closed tagged union over
// the five curve kinds. Wrap a primitive with its Curve method; the
// zero value is a degenerate line segment at the origin.
type Curve3[S any] struct {
	kind          CurveKind
	line          LineSegment3[S]
	arc           Arc3[S]
	ellipticalArc EllipticalArc3[S]
	quadratic     QuadraticSpline3[S]
	cubic         CubicSpline3[S]
}

// Kind returns the active variant's kind.
func (c Curve3[S]) Kind() CurveKind { return c.kind }

// LineSegment returns the wrapped segment and whether the curve's kind
// is LineSegmentKind.
func (c Curve3[S]) LineSegment() (LineSegment3[S], bool) {
	return c.line, c.kind == LineSegmentKind
}

// Arc returns the wrapped arc and whether the curve's kind is ArcKind.
func (c Curve3[S]) Arc() (Arc3[S], bool) {
	return c.arc, c.kind == ArcKind
}

// EllipticalArc returns the wrapped arc and whether the curve's kind is
// EllipticalArcKind.
func (c Curve3[S]) EllipticalArc() (EllipticalArc3[S], bool) {
	return c.ellipticalArc, c.kind == EllipticalArcKind
}

// QuadraticSpline returns the wrapped spline and whether the curve's
// kind is QuadraticSplineKind.
func (c Curve3[S]) QuadraticSpline() (QuadraticSpline3[S], bool) {
	return c.quadratic, c.kind == QuadraticSplineKind
}

// CubicSpline returns the wrapped spline and whether the curve's kind
// is CubicSplineKind.
func (c Curve3[S]) CubicSpline() (CubicSpline3[S], bool) {
	return c.cubic, c.kind == CubicSplineKind
}

func (c Curve3[S]) StartPoint() Point3[S] {
	switch c.kind {
	case LineSegmentKind:
		return c.line.StartPoint()
	case ArcKind:
		return c.arc.StartPoint()
	case EllipticalArcKind:
		return c.ellipticalArc.StartPoint()
	case QuadraticSplineKind:
		return c.quadratic.StartPoint()
	case CubicSplineKind:
		return c.cubic.StartPoint()
	default:
		panic("unreachable")
	}
}

func (c Curve3[S]) EndPoint() Point3[S] {
	switch c.kind {
	case LineSegmentKind:
		return c.line.EndPoint()
	case ArcKind:
		return c.arc.EndPoint()
	case EllipticalArcKind:
		return c.ellipticalArc.EndPoint()
	case QuadraticSplineKind:
		return c.quadratic.EndPoint()
	case CubicSplineKind:
		return c.cubic.EndPoint()
	default:
		panic("unreachable")
	}
}

// Eval evaluates the curve at parameter t in [0, 1], using the active
// kind's own parameter spacing.
func (c Curve3[S]) Eval(t float64) Point3[S] {
	switch c.kind {
	case LineSegmentKind:
		return c.line.Eval(t)
	case ArcKind:
		return c.arc.Eval(t)
	case EllipticalArcKind:
		return c.ellipticalArc.Eval(t)
	case QuadraticSplineKind:
		return c.quadratic.Eval(t)
	case CubicSplineKind:
		return c.cubic.Eval(t)
	default:
		panic("unreachable")
	}
}

// Reverse returns a curve of the same kind with start and end swapped
// and the parameterization running backward.
func (c Curve3[S]) Reverse() Curve3[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.Reverse()
	case ArcKind:
		c.arc = c.arc.Reverse()
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.Reverse()
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.Reverse()
	case CubicSplineKind:
		c.cubic = c.cubic.Reverse()
	default:
		panic("unreachable")
	}
	return c
}

func (c Curve3[S]) Translate(v Vector3[S]) Curve3[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.Translate(v)
	case ArcKind:
		c.arc = c.arc.Translate(v)
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.Translate(v)
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.Translate(v)
	case CubicSplineKind:
		c.cubic = c.cubic.Translate(v)
	default:
		panic("unreachable")
	}
	return c
}

func (c Curve3[S]) RotateAround(axis Axis3[S], a Angle) Curve3[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.RotateAround(axis, a)
	case ArcKind:
		c.arc = c.arc.RotateAround(axis, a)
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.RotateAround(axis, a)
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.RotateAround(axis, a)
	case CubicSplineKind:
		c.cubic = c.cubic.RotateAround(axis, a)
	default:
		panic("unreachable")
	}
	return c
}

func (c Curve3[S]) MirrorAcross(plane Plane3[S]) Curve3[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.MirrorAcross(plane)
	case ArcKind:
		c.arc = c.arc.MirrorAcross(plane)
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.MirrorAcross(plane)
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.MirrorAcross(plane)
	case CubicSplineKind:
		c.cubic = c.cubic.MirrorAcross(plane)
	default:
		panic("unreachable")
	}
	return c
}

func (c Curve3[S]) ScaleAbout(center Point3[S], f float64) Curve3[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.ScaleAbout(center, f)
	case ArcKind:
		c.arc = c.arc.ScaleAbout(center, f)
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.ScaleAbout(center, f)
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.ScaleAbout(center, f)
	case CubicSplineKind:
		c.cubic = c.cubic.ScaleAbout(center, f)
	default:
		panic("unreachable")
	}
	return c
}

// BoundingBox returns an axis-aligned bound containing every point the
// curve can produce over its parameter domain.
func (c Curve3[S]) BoundingBox() BoundingBox3[S] {
	switch c.kind {
	case LineSegmentKind:
		return c.line.BoundingBox()
	case ArcKind:
		return c.arc.BoundingBox()
	case EllipticalArcKind:
		return c.ellipticalArc.BoundingBox()
	case QuadraticSplineKind:
		return c.quadratic.BoundingBox()
	case CubicSplineKind:
		return c.cubic.BoundingBox()
	default:
		panic("unreachable")
	}
}

// Segments samples the curve into a polyline of n segments at the
// active kind's own uniform parameter spacing.
func (c Curve3[S]) Segments(n int) (Polyline3[S], error) {
	switch c.kind {
	case LineSegmentKind:
		return c.line.Segments(n)
	case ArcKind:
		return c.arc.Segments(n)
	case EllipticalArcKind:
		return c.ellipticalArc.Segments(n)
	case QuadraticSplineKind:
		return c.quadratic.Segments(n)
	case CubicSplineKind:
		return c.cubic.Segments(n)
	default:
		panic("unreachable")
	}
}

// NumApproximationSegments returns the smallest segment count whose
// sampled polyline deviates from the curve by at most maxError.
func (c Curve3[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	switch c.kind {
	case LineSegmentKind:
		return c.line.NumApproximationSegments(maxError)
	case ArcKind:
		return c.arc.NumApproximationSegments(maxError)
	case EllipticalArcKind:
		return c.ellipticalArc.NumApproximationSegments(maxError)
	case QuadraticSplineKind:
		return c.quadratic.NumApproximationSegments(maxError)
	case CubicSplineKind:
		return c.cubic.NumApproximationSegments(maxError)
	default:
		panic("unreachable")
	}
}

// Approximate samples the curve with NumApproximationSegments(maxError)
// segments.
func (c Curve3[S]) Approximate(maxError Length[S]) (Polyline3[S], error) {
	switch c.kind {
	case LineSegmentKind:
		return c.line.Approximate(maxError)
	case ArcKind:
		return c.arc.Approximate(maxError)
	case EllipticalArcKind:
		return c.ellipticalArc.Approximate(maxError)
	case QuadraticSplineKind:
		return c.quadratic.Approximate(maxError)
	case CubicSplineKind:
		return c.cubic.Approximate(maxError)
	default:
		panic("unreachable")
	}
}
