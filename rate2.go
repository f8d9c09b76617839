package geom

// To methods multiply every coordinate by the rate; From methods divide
// by it. Angles and directions carry no unit and convert by re-tagging
// alone.

func (r Rate[To, From]) ToPoint2(p Point2[From]) Point2[To] {
	return Point2[To]{X: r.ToLength(p.X), Y: r.ToLength(p.Y)}
}

func (r Rate[To, From]) FromPoint2(p Point2[To]) Point2[From] {
	return Point2[From]{X: r.FromLength(p.X), Y: r.FromLength(p.Y)}
}

func (r Rate[To, From]) ToVector2(v Vector2[From]) Vector2[To] {
	return Vector2[To]{X: r.ToLength(v.X), Y: r.ToLength(v.Y)}
}

func (r Rate[To, From]) FromVector2(v Vector2[To]) Vector2[From] {
	return Vector2[From]{X: r.FromLength(v.X), Y: r.FromLength(v.Y)}
}

func (r Rate[To, From]) ToDirection2(d Direction2[From]) Direction2[To] {
	return Direction2[To](d)
}

func (r Rate[To, From]) FromDirection2(d Direction2[To]) Direction2[From] {
	return Direction2[From](d)
}

func (r Rate[To, From]) ToBoundingBox2(b BoundingBox2[From]) BoundingBox2[To] {
	return BoundingBox2[To]{
		MinX: r.ToLength(b.MinX), MinY: r.ToLength(b.MinY),
		MaxX: r.ToLength(b.MaxX), MaxY: r.ToLength(b.MaxY),
	}
}

func (r Rate[To, From]) FromBoundingBox2(b BoundingBox2[To]) BoundingBox2[From] {
	return BoundingBox2[From]{
		MinX: r.FromLength(b.MinX), MinY: r.FromLength(b.MinY),
		MaxX: r.FromLength(b.MaxX), MaxY: r.FromLength(b.MaxY),
	}
}

func (r Rate[To, From]) ToLineSegment2(l LineSegment2[From]) LineSegment2[To] {
	return LineSegment2[To]{P0: r.ToPoint2(l.P0), P1: r.ToPoint2(l.P1)}
}

func (r Rate[To, From]) FromLineSegment2(l LineSegment2[To]) LineSegment2[From] {
	return LineSegment2[From]{P0: r.FromPoint2(l.P0), P1: r.FromPoint2(l.P1)}
}

func (r Rate[To, From]) ToArc2(a Arc2[From]) Arc2[To] {
	return Arc2[To]{
		center: r.ToPoint2(a.center),
		xDir:   Direction2[To](a.xDir),
		yDir:   Direction2[To](a.yDir),
		radius: r.ToLength(a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (r Rate[To, From]) FromArc2(a Arc2[To]) Arc2[From] {
	return Arc2[From]{
		center: r.FromPoint2(a.center),
		xDir:   Direction2[From](a.xDir),
		yDir:   Direction2[From](a.yDir),
		radius: r.FromLength(a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (r Rate[To, From]) ToEllipticalArc2(e EllipticalArc2[From]) EllipticalArc2[To] {
	return EllipticalArc2[To]{
		center: r.ToPoint2(e.center),
		xDir:   Direction2[To](e.xDir),
		yDir:   Direction2[To](e.yDir),
		rx:     r.ToLength(e.rx),
		ry:     r.ToLength(e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (r Rate[To, From]) FromEllipticalArc2(e EllipticalArc2[To]) EllipticalArc2[From] {
	return EllipticalArc2[From]{
		center: r.FromPoint2(e.center),
		xDir:   Direction2[From](e.xDir),
		yDir:   Direction2[From](e.yDir),
		rx:     r.FromLength(e.rx),
		ry:     r.FromLength(e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (r Rate[To, From]) ToQuadraticSpline2(q QuadraticSpline2[From]) QuadraticSpline2[To] {
	return QuadraticSpline2[To]{
		P0: r.ToPoint2(q.P0),
		P1: r.ToPoint2(q.P1),
		P2: r.ToPoint2(q.P2),
	}
}

func (r Rate[To, From]) FromQuadraticSpline2(q QuadraticSpline2[To]) QuadraticSpline2[From] {
	return QuadraticSpline2[From]{
		P0: r.FromPoint2(q.P0),
		P1: r.FromPoint2(q.P1),
		P2: r.FromPoint2(q.P2),
	}
}

func (r Rate[To, From]) ToCubicSpline2(c CubicSpline2[From]) CubicSpline2[To] {
	return CubicSpline2[To]{
		P0: r.ToPoint2(c.P0),
		P1: r.ToPoint2(c.P1),
		P2: r.ToPoint2(c.P2),
		P3: r.ToPoint2(c.P3),
	}
}

func (r Rate[To, From]) FromCubicSpline2(c CubicSpline2[To]) CubicSpline2[From] {
	return CubicSpline2[From]{
		P0: r.FromPoint2(c.P0),
		P1: r.FromPoint2(c.P1),
		P2: r.FromPoint2(c.P2),
		P3: r.FromPoint2(c.P3),
	}
}

// ToCurve2 converts a curve between unit systems, preserving its kind.
func (r Rate[To, From]) ToCurve2(c Curve2[From]) Curve2[To] {
	switch c.kind {
	case LineSegmentKind:
		return r.ToLineSegment2(c.line).Curve()
	case ArcKind:
		return r.ToArc2(c.arc).Curve()
	case EllipticalArcKind:
		return r.ToEllipticalArc2(c.ellipticalArc).Curve()
	case QuadraticSplineKind:
		return r.ToQuadraticSpline2(c.quadratic).Curve()
	case CubicSplineKind:
		return r.ToCubicSpline2(c.cubic).Curve()
	default:
		panic("unreachable")
	}
}

// FromCurve2 undoes ToCurve2, preserving the curve's kind.
func (r Rate[To, From]) FromCurve2(c Curve2[To]) Curve2[From] {
	switch c.kind {
	case LineSegmentKind:
		return r.FromLineSegment2(c.line).Curve()
	case ArcKind:
		return r.FromArc2(c.arc).Curve()
	case EllipticalArcKind:
		return r.FromEllipticalArc2(c.ellipticalArc).Curve()
	case QuadraticSplineKind:
		return r.FromQuadraticSpline2(c.quadratic).Curve()
	case CubicSplineKind:
		return r.FromCubicSpline2(c.cubic).Curve()
	default:
		panic("unreachable")
	}
}

func (r Rate[To, From]) ToPolyline2(p Polyline2[From]) Polyline2[To] {
	out := make(Polyline2[To], len(p))
	for i, pt := range p {
		out[i] = r.ToPoint2(pt)
	}
	return out
}

func (r Rate[To, From]) FromPolyline2(p Polyline2[To]) Polyline2[From] {
	out := make(Polyline2[From], len(p))
	for i, pt := range p {
		out[i] = r.FromPoint2(pt)
	}
	return out
}
