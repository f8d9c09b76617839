package geom

// Axis2 is a directed line in the 2D space S, used as the mirror axis
// of 2D reflections.
type Axis2[S any] struct {
	Origin    Point2[S]
	Direction Direction2[S]
}

// Frame2 is a coordinate frame defined in the global space G that
// establishes the local space L. The origin and basis directions are
// expressed in G. ToGlobal methods place local geometry in the global
// space; ToLocal methods express global geometry in frame coordinates.
//
// The basis directions must be perpendicular unit vectors. Frames
// produced by [NewFrame2] are right-handed; a left-handed frame can be
// built directly from its fields.
type Frame2[G, L any] struct {
	Origin     Point2[G]
	XDirection Direction2[G]
	YDirection Direction2[G]
}

// NewFrame2 returns the right-handed frame with the given origin and x
// direction.
func NewFrame2[G, L any](origin Point2[G], xDirection Direction2[G]) Frame2[G, L] {
	return Frame2[G, L]{
		Origin:     origin,
		XDirection: xDirection,
		YDirection: xDirection.Perpendicular(),
	}
}

func (f Frame2[G, L]) ToGlobalVector(v Vector2[L]) Vector2[G] {
	x, y := float64(v.X), float64(v.Y)
	return Vector2[G]{
		X: Length[G](x*f.XDirection.X + y*f.YDirection.X),
		Y: Length[G](x*f.XDirection.Y + y*f.YDirection.Y),
	}
}

func (f Frame2[G, L]) ToLocalVector(v Vector2[G]) Vector2[L] {
	x, y := float64(v.X), float64(v.Y)
	return Vector2[L]{
		X: Length[L](x*f.XDirection.X + y*f.XDirection.Y),
		Y: Length[L](x*f.YDirection.X + y*f.YDirection.Y),
	}
}

func (f Frame2[G, L]) ToGlobalPoint(p Point2[L]) Point2[G] {
	return f.Origin.Translate(f.ToGlobalVector(Vector2[L](p)))
}

func (f Frame2[G, L]) ToLocalPoint(p Point2[G]) Point2[L] {
	return Point2[L](f.ToLocalVector(p.Sub(f.Origin)))
}

func (f Frame2[G, L]) ToGlobalDirection(d Direction2[L]) Direction2[G] {
	return Direction2[G]{
		X: d.X*f.XDirection.X + d.Y*f.YDirection.X,
		Y: d.X*f.XDirection.Y + d.Y*f.YDirection.Y,
	}
}

func (f Frame2[G, L]) ToLocalDirection(d Direction2[G]) Direction2[L] {
	return Direction2[L]{
		X: d.X*f.XDirection.X + d.Y*f.XDirection.Y,
		Y: d.X*f.YDirection.X + d.Y*f.YDirection.Y,
	}
}

func (f Frame2[G, L]) ToGlobalLineSegment(l LineSegment2[L]) LineSegment2[G] {
	return LineSegment2[G]{
		P0: f.ToGlobalPoint(l.P0),
		P1: f.ToGlobalPoint(l.P1),
	}
}

func (f Frame2[G, L]) ToLocalLineSegment(l LineSegment2[G]) LineSegment2[L] {
	return LineSegment2[L]{
		P0: f.ToLocalPoint(l.P0),
		P1: f.ToLocalPoint(l.P1),
	}
}

func (f Frame2[G, L]) ToGlobalArc(a Arc2[L]) Arc2[G] {
	return Arc2[G]{
		center: f.ToGlobalPoint(a.center),
		xDir:   f.ToGlobalDirection(a.xDir),
		yDir:   f.ToGlobalDirection(a.yDir),
		radius: Length[G](a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (f Frame2[G, L]) ToLocalArc(a Arc2[G]) Arc2[L] {
	return Arc2[L]{
		center: f.ToLocalPoint(a.center),
		xDir:   f.ToLocalDirection(a.xDir),
		yDir:   f.ToLocalDirection(a.yDir),
		radius: Length[L](a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (f Frame2[G, L]) ToGlobalEllipticalArc(e EllipticalArc2[L]) EllipticalArc2[G] {
	return EllipticalArc2[G]{
		center: f.ToGlobalPoint(e.center),
		xDir:   f.ToGlobalDirection(e.xDir),
		yDir:   f.ToGlobalDirection(e.yDir),
		rx:     Length[G](e.rx),
		ry:     Length[G](e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (f Frame2[G, L]) ToLocalEllipticalArc(e EllipticalArc2[G]) EllipticalArc2[L] {
	return EllipticalArc2[L]{
		center: f.ToLocalPoint(e.center),
		xDir:   f.ToLocalDirection(e.xDir),
		yDir:   f.ToLocalDirection(e.yDir),
		rx:     Length[L](e.rx),
		ry:     Length[L](e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (f Frame2[G, L]) ToGlobalQuadraticSpline(q QuadraticSpline2[L]) QuadraticSpline2[G] {
	return QuadraticSpline2[G]{
		P0: f.ToGlobalPoint(q.P0),
		P1: f.ToGlobalPoint(q.P1),
		P2: f.ToGlobalPoint(q.P2),
	}
}

func (f Frame2[G, L]) ToLocalQuadraticSpline(q QuadraticSpline2[G]) QuadraticSpline2[L] {
	return QuadraticSpline2[L]{
		P0: f.ToLocalPoint(q.P0),
		P1: f.ToLocalPoint(q.P1),
		P2: f.ToLocalPoint(q.P2),
	}
}

func (f Frame2[G, L]) ToGlobalCubicSpline(c CubicSpline2[L]) CubicSpline2[G] {
	return CubicSpline2[G]{
		P0: f.ToGlobalPoint(c.P0),
		P1: f.ToGlobalPoint(c.P1),
		P2: f.ToGlobalPoint(c.P2),
		P3: f.ToGlobalPoint(c.P3),
	}
}

func (f Frame2[G, L]) ToLocalCubicSpline(c CubicSpline2[G]) CubicSpline2[L] {
	return CubicSpline2[L]{
		P0: f.ToLocalPoint(c.P0),
		P1: f.ToLocalPoint(c.P1),
		P2: f.ToLocalPoint(c.P2),
		P3: f.ToLocalPoint(c.P3),
	}
}

// ToGlobalCurve places a local curve in the global space, preserving
// the curve's kind.
func (f Frame2[G, L]) ToGlobalCurve(c Curve2[L]) Curve2[G] {
	switch c.kind {
	case LineSegmentKind:
		return f.ToGlobalLineSegment(c.line).Curve()
	case ArcKind:
		return f.ToGlobalArc(c.arc).Curve()
	case EllipticalArcKind:
		return f.ToGlobalEllipticalArc(c.ellipticalArc).Curve()
	case QuadraticSplineKind:
		return f.ToGlobalQuadraticSpline(c.quadratic).Curve()
	case CubicSplineKind:
		return f.ToGlobalCubicSpline(c.cubic).Curve()
	default:
		panic("unreachable")
	}
}

// ToLocalCurve expresses a global curve in frame coordinates,
// preserving the curve's kind.
func (f Frame2[G, L]) ToLocalCurve(c Curve2[G]) Curve2[L] {
	switch c.kind {
	case LineSegmentKind:
		return f.ToLocalLineSegment(c.line).Curve()
	case ArcKind:
		return f.ToLocalArc(c.arc).Curve()
	case EllipticalArcKind:
		return f.ToLocalEllipticalArc(c.ellipticalArc).Curve()
	case QuadraticSplineKind:
		return f.ToLocalQuadraticSpline(c.quadratic).Curve()
	case CubicSplineKind:
		return f.ToLocalCubicSpline(c.cubic).Curve()
	default:
		panic("unreachable")
	}
}

func (f Frame2[G, L]) ToGlobalPolyline(p Polyline2[L]) Polyline2[G] {
	out := make(Polyline2[G], len(p))
	for i, pt := range p {
		out[i] = f.ToGlobalPoint(pt)
	}
	return out
}

func (f Frame2[G, L]) ToLocalPolyline(p Polyline2[G]) Polyline2[L] {
	out := make(Polyline2[L], len(p))
	for i, pt := range p {
		out[i] = f.ToLocalPoint(pt)
	}
	return out
}
