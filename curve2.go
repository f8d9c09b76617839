package geom

// Curve2 is a closed tagged union over the five 2D curve kinds: line
// segment, circular arc, elliptical arc, quadratic spline, and cubic
// spline. Wrap a primitive with its Curve method; the zero value is a
// degenerate line segment at the origin.
//
// Every operation dispatches to the active kind and re-wraps the
// result in the same kind; the tag never changes except through the
// one-way degree conversions on [Circle2] and [Ellipse2].
type Curve2[S any] struct {
	kind          CurveKind
	line          LineSegment2[S]
	arc           Arc2[S]
	ellipticalArc EllipticalArc2[S]
	quadratic     QuadraticSpline2[S]
	cubic         CubicSpline2[S]
}

// Kind returns the active variant's kind.
func (c Curve2[S]) Kind() CurveKind { return c.kind }

// LineSegment returns the wrapped segment and whether the curve's kind
// is LineSegmentKind.
func (c Curve2[S]) LineSegment() (LineSegment2[S], bool) {
	return c.line, c.kind == LineSegmentKind
}

// Arc returns the wrapped arc and whether the curve's kind is ArcKind.
func (c Curve2[S]) Arc() (Arc2[S], bool) {
	return c.arc, c.kind == ArcKind
}

// EllipticalArc returns the wrapped arc and whether the curve's kind is
// EllipticalArcKind.
func (c Curve2[S]) EllipticalArc() (EllipticalArc2[S], bool) {
	return c.ellipticalArc, c.kind == EllipticalArcKind
}

// QuadraticSpline returns the wrapped spline and whether the curve's
// kind is QuadraticSplineKind.
func (c Curve2[S]) QuadraticSpline() (QuadraticSpline2[S], bool) {
	return c.quadratic, c.kind == QuadraticSplineKind
}

// CubicSpline returns the wrapped spline and whether the curve's kind
// is CubicSplineKind.
func (c Curve2[S]) CubicSpline() (CubicSpline2[S], bool) {
	return c.cubic, c.kind == CubicSplineKind
}

func (c Curve2[S]) StartPoint() Point2[S] {
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

func (c Curve2[S]) EndPoint() Point2[S] {
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
func (c Curve2[S]) Eval(t float64) Point2[S] {
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
func (c Curve2[S]) Reverse() Curve2[S] {
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

func (c Curve2[S]) Translate(v Vector2[S]) Curve2[S] {
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

func (c Curve2[S]) RotateAround(center Point2[S], a Angle) Curve2[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.RotateAround(center, a)
	case ArcKind:
		c.arc = c.arc.RotateAround(center, a)
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.RotateAround(center, a)
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.RotateAround(center, a)
	case CubicSplineKind:
		c.cubic = c.cubic.RotateAround(center, a)
	default:
		panic("unreachable")
	}
	return c
}

func (c Curve2[S]) MirrorAcross(axis Axis2[S]) Curve2[S] {
	switch c.kind {
	case LineSegmentKind:
		c.line = c.line.MirrorAcross(axis)
	case ArcKind:
		c.arc = c.arc.MirrorAcross(axis)
	case EllipticalArcKind:
		c.ellipticalArc = c.ellipticalArc.MirrorAcross(axis)
	case QuadraticSplineKind:
		c.quadratic = c.quadratic.MirrorAcross(axis)
	case CubicSplineKind:
		c.cubic = c.cubic.MirrorAcross(axis)
	default:
		panic("unreachable")
	}
	return c
}

func (c Curve2[S]) ScaleAbout(center Point2[S], f float64) Curve2[S] {
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
func (c Curve2[S]) BoundingBox() BoundingBox2[S] {
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
func (c Curve2[S]) Segments(n int) (Polyline2[S], error) {
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
func (c Curve2[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
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
func (c Curve2[S]) Approximate(maxError Length[S]) (Polyline2[S], error) {
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
