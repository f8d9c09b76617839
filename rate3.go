package geom

func (r Rate[To, From]) ToPoint3(p Point3[From]) Point3[To] {
	return Point3[To]{X: r.ToLength(p.X), Y: r.ToLength(p.Y), Z: r.ToLength(p.Z)}
}

func (r Rate[To, From]) FromPoint3(p Point3[To]) Point3[From] {
	return Point3[From]{X: r.FromLength(p.X), Y: r.FromLength(p.Y), Z: r.FromLength(p.Z)}
}

func (r Rate[To, From]) ToVector3(v Vector3[From]) Vector3[To] {
	return Vector3[To]{X: r.ToLength(v.X), Y: r.ToLength(v.Y), Z: r.ToLength(v.Z)}
}

func (r Rate[To, From]) FromVector3(v Vector3[To]) Vector3[From] {
	return Vector3[From]{X: r.FromLength(v.X), Y: r.FromLength(v.Y), Z: r.FromLength(v.Z)}
}

func (r Rate[To, From]) ToDirection3(d Direction3[From]) Direction3[To] {
	return Direction3[To](d)
}

func (r Rate[To, From]) FromDirection3(d Direction3[To]) Direction3[From] {
	return Direction3[From](d)
}

func (r Rate[To, From]) ToBoundingBox3(b BoundingBox3[From]) BoundingBox3[To] {
	return BoundingBox3[To]{
		MinX: r.ToLength(b.MinX), MinY: r.ToLength(b.MinY), MinZ: r.ToLength(b.MinZ),
		MaxX: r.ToLength(b.MaxX), MaxY: r.ToLength(b.MaxY), MaxZ: r.ToLength(b.MaxZ),
	}
}

func (r Rate[To, From]) FromBoundingBox3(b BoundingBox3[To]) BoundingBox3[From] {
	return BoundingBox3[From]{
		MinX: r.FromLength(b.MinX), MinY: r.FromLength(b.MinY), MinZ: r.FromLength(b.MinZ),
		MaxX: r.FromLength(b.MaxX), MaxY: r.FromLength(b.MaxY), MaxZ: r.FromLength(b.MaxZ),
	}
}

func (r Rate[To, From]) ToLineSegment3(l LineSegment3[From]) LineSegment3[To] {
	return LineSegment3[To]{P0: r.ToPoint3(l.P0), P1: r.ToPoint3(l.P1)}
}

func (r Rate[To, From]) FromLineSegment3(l LineSegment3[To]) LineSegment3[From] {
	return LineSegment3[From]{P0: r.FromPoint3(l.P0), P1: r.FromPoint3(l.P1)}
}

func (r Rate[To, From]) ToArc3(a Arc3[From]) Arc3[To] {
	return Arc3[To]{
		center: r.ToPoint3(a.center),
		xDir:   Direction3[To](a.xDir),
		yDir:   Direction3[To](a.yDir),
		radius: r.ToLength(a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (r Rate[To, From]) FromArc3(a Arc3[To]) Arc3[From] {
	return Arc3[From]{
		center: r.FromPoint3(a.center),
		xDir:   Direction3[From](a.xDir),
		yDir:   Direction3[From](a.yDir),
		radius: r.FromLength(a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (r Rate[To, From]) ToEllipticalArc3(e EllipticalArc3[From]) EllipticalArc3[To] {
	return EllipticalArc3[To]{
		center: r.ToPoint3(e.center),
		xDir:   Direction3[To](e.xDir),
		yDir:   Direction3[To](e.yDir),
		rx:     r.ToLength(e.rx),
		ry:     r.ToLength(e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (r Rate[To, From]) FromEllipticalArc3(e EllipticalArc3[To]) EllipticalArc3[From] {
	return EllipticalArc3[From]{
		center: r.FromPoint3(e.center),
		xDir:   Direction3[From](e.xDir),
		yDir:   Direction3[From](e.yDir),
		rx:     r.FromLength(e.rx),
		ry:     r.FromLength(e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (r Rate[To, From]) ToQuadraticSpline3(q QuadraticSpline3[From]) QuadraticSpline3[To] {
	return QuadraticSpline3[To]{
		P0: r.ToPoint3(q.P0),
		P1: r.ToPoint3(q.P1),
		P2: r.ToPoint3(q.P2),
	}
}

func (r Rate[To, From]) FromQuadraticSpline3(q QuadraticSpline3[To]) QuadraticSpline3[From] {
	return QuadraticSpline3[From]{
		P0: r.FromPoint3(q.P0),
		P1: r.FromPoint3(q.P1),
		P2: r.FromPoint3(q.P2),
	}
}

func (r Rate[To, From]) ToCubicSpline3(c CubicSpline3[From]) CubicSpline3[To] {
	return CubicSpline3[To]{
		P0: r.ToPoint3(c.P0),
		P1: r.ToPoint3(c.P1),
		P2: r.ToPoint3(c.P2),
		P3: r.ToPoint3(c.P3),
	}
}

func (r Rate[To, From]) FromCubicSpline3(c CubicSpline3[To]) CubicSpline3[From] {
	return CubicSpline3[From]{
		P0: r.FromPoint3(c.P0),
		P1: r.FromPoint3(c.P1),
		P2: r.FromPoint3(c.P2),
		P3: r.FromPoint3(c.P3),
	}
}

// ToCurve3 converts a curve between unit systems, preserving its kind.
func (r Rate[To, From]) ToCurve3(c Curve3[From]) Curve3[To] {
	switch c.kind {
	case LineSegmentKind:
		return r.ToLineSegment3(c.line).Curve()
	case ArcKind:
		return r.ToArc3(c.arc).Curve()
	case EllipticalArcKind:
		return r.ToEllipticalArc3(c.ellipticalArc).Curve()
	case QuadraticSplineKind:
		return r.ToQuadraticSpline3(c.quadratic).Curve()
	case CubicSplineKind:
		return r.ToCubicSpline3(c.cubic).Curve()
	default:
		panic("unreachable")
	}
}

// FromCurve3 undoes ToCurve3, preserving the curve's kind.
func (r Rate[To, From]) FromCurve3(c Curve3[To]) Curve3[From] {
	switch c.kind {
	case LineSegmentKind:
		return r.FromLineSegment3(c.line).Curve()
	case ArcKind:
		return r.FromArc3(c.arc).Curve()
	case EllipticalArcKind:
		return r.FromEllipticalArc3(c.ellipticalArc).Curve()
	case QuadraticSplineKind:
		return r.FromQuadraticSpline3(c.quadratic).Curve()
	case CubicSplineKind:
		return r.FromCubicSpline3(c.cubic).Curve()
	default:
		panic("unreachable")
	}
}

func (r Rate[To, From]) ToPolyline3(p Polyline3[From]) Polyline3[To] {
	out := make(Polyline3[To], len(p))
	for i, pt := range p {
		out[i] = r.ToPoint3(pt)
	}
	return out
}

func (r Rate[To, From]) FromPolyline3(p Polyline3[To]) Polyline3[From] {
	out := make(Polyline3[From], len(p))
	for i, pt := range p {
		out[i] = r.FromPoint3(pt)
	}
	return out
}
