package geom

// Axis3 is a directed line in the 3D space S, used as the rotation axis
// of 3D rotations.
type Axis3[S any] struct {
	Origin    Point3[S]
	Direction Direction3[S]
}

// Plane3 is an oriented plane in the 3D space S, used as the mirror
// plane of 3D reflections.
type Plane3[S any] struct {
	Origin Point3[S]
	Normal Direction3[S]
}

// Frame3 is a coordinate frame defined in the global space G that
// establishes the local space L. The origin and basis directions are
// expressed in G. ToGlobal methods place local geometry in the global
// space; ToLocal methods express global geometry in frame coordinates.
//
// The basis directions must be mutually perpendicular unit vectors.
// Frames produced by [NewFrame3] are right-handed; a left-handed frame
// can be built directly from its fields.
type Frame3[G, L any] struct {
	Origin     Point3[G]
	XDirection Direction3[G]
	YDirection Direction3[G]
	ZDirection Direction3[G]
}

// NewFrame3 returns the right-handed frame with the given origin and
// perpendicular x and y directions; the z direction is their cross
// product.
func NewFrame3[G, L any](origin Point3[G], xDirection, yDirection Direction3[G]) Frame3[G, L] {
	return Frame3[G, L]{
		Origin:     origin,
		XDirection: xDirection,
		YDirection: yDirection,
		ZDirection: xDirection.Cross(yDirection),
	}
}

func (f Frame3[G, L]) ToGlobalVector(v Vector3[L]) Vector3[G] {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return Vector3[G]{
		X: Length[G](x*f.XDirection.X + y*f.YDirection.X + z*f.ZDirection.X),
		Y: Length[G](x*f.XDirection.Y + y*f.YDirection.Y + z*f.ZDirection.Y),
		Z: Length[G](x*f.XDirection.Z + y*f.YDirection.Z + z*f.ZDirection.Z),
	}
}

func (f Frame3[G, L]) ToLocalVector(v Vector3[G]) Vector3[L] {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return Vector3[L]{
		X: Length[L](x*f.XDirection.X + y*f.XDirection.Y + z*f.XDirection.Z),
		Y: Length[L](x*f.YDirection.X + y*f.YDirection.Y + z*f.YDirection.Z),
		Z: Length[L](x*f.ZDirection.X + y*f.ZDirection.Y + z*f.ZDirection.Z),
	}
}

func (f Frame3[G, L]) ToGlobalPoint(p Point3[L]) Point3[G] {
	return f.Origin.Translate(f.ToGlobalVector(Vector3[L](p)))
}

func (f Frame3[G, L]) ToLocalPoint(p Point3[G]) Point3[L] {
	return Point3[L](f.ToLocalVector(p.Sub(f.Origin)))
}

func (f Frame3[G, L]) ToGlobalDirection(d Direction3[L]) Direction3[G] {
	return Direction3[G]{
		X: d.X*f.XDirection.X + d.Y*f.YDirection.X + d.Z*f.ZDirection.X,
		Y: d.X*f.XDirection.Y + d.Y*f.YDirection.Y + d.Z*f.ZDirection.Y,
		Z: d.X*f.XDirection.Z + d.Y*f.YDirection.Z + d.Z*f.ZDirection.Z,
	}
}

func (f Frame3[G, L]) ToLocalDirection(d Direction3[G]) Direction3[L] {
	return Direction3[L]{
		X: d.X*f.XDirection.X + d.Y*f.XDirection.Y + d.Z*f.XDirection.Z,
		Y: d.X*f.YDirection.X + d.Y*f.YDirection.Y + d.Z*f.YDirection.Z,
		Z: d.X*f.ZDirection.X + d.Y*f.ZDirection.Y + d.Z*f.ZDirection.Z,
	}
}

func (f Frame3[G, L]) ToGlobalLineSegment(l LineSegment3[L]) LineSegment3[G] {
	return LineSegment3[G]{
		P0: f.ToGlobalPoint(l.P0),
		P1: f.ToGlobalPoint(l.P1),
	}
}

func (f Frame3[G, L]) ToLocalLineSegment(l LineSegment3[G]) LineSegment3[L] {
	return LineSegment3[L]{
		P0: f.ToLocalPoint(l.P0),
		P1: f.ToLocalPoint(l.P1),
	}
}

func (f Frame3[G, L]) ToGlobalArc(a Arc3[L]) Arc3[G] {
	return Arc3[G]{
		center: f.ToGlobalPoint(a.center),
		xDir:   f.ToGlobalDirection(a.xDir),
		yDir:   f.ToGlobalDirection(a.yDir),
		radius: Length[G](a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (f Frame3[G, L]) ToLocalArc(a Arc3[G]) Arc3[L] {
	return Arc3[L]{
		center: f.ToLocalPoint(a.center),
		xDir:   f.ToLocalDirection(a.xDir),
		yDir:   f.ToLocalDirection(a.yDir),
		radius: Length[L](a.radius),
		start:  a.start,
		end:    a.end,
	}
}

func (f Frame3[G, L]) ToGlobalEllipticalArc(e EllipticalArc3[L]) EllipticalArc3[G] {
	return EllipticalArc3[G]{
		center: f.ToGlobalPoint(e.center),
		xDir:   f.ToGlobalDirection(e.xDir),
		yDir:   f.ToGlobalDirection(e.yDir),
		rx:     Length[G](e.rx),
		ry:     Length[G](e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (f Frame3[G, L]) ToLocalEllipticalArc(e EllipticalArc3[G]) EllipticalArc3[L] {
	return EllipticalArc3[L]{
		center: f.ToLocalPoint(e.center),
		xDir:   f.ToLocalDirection(e.xDir),
		yDir:   f.ToLocalDirection(e.yDir),
		rx:     Length[L](e.rx),
		ry:     Length[L](e.ry),
		start:  e.start,
		end:    e.end,
	}
}

func (f Frame3[G, L]) ToGlobalQuadraticSpline(q QuadraticSpline3[L]) QuadraticSpline3[G] {
	return QuadraticSpline3[G]{
		P0: f.ToGlobalPoint(q.P0),
		P1: f.ToGlobalPoint(q.P1),
		P2: f.ToGlobalPoint(q.P2),
	}
}

func (f Frame3[G, L]) ToLocalQuadraticSpline(q QuadraticSpline3[G]) QuadraticSpline3[L] {
	return QuadraticSpline3[L]{
		P0: f.ToLocalPoint(q.P0),
		P1: f.ToLocalPoint(q.P1),
		P2: f.ToLocalPoint(q.P2),
	}
}

func (f Frame3[G, L]) ToGlobalCubicSpline(c CubicSpline3[L]) CubicSpline3[G] {
	return CubicSpline3[G]{
		P0: f.ToGlobalPoint(c.P0),
		P1: f.ToGlobalPoint(c.P1),
		P2: f.ToGlobalPoint(c.P2),
		P3: f.ToGlobalPoint(c.P3),
	}
}

func (f Frame3[G, L]) ToLocalCubicSpline(c CubicSpline3[G]) CubicSpline3[L] {
	return CubicSpline3[L]{
		P0: f.ToLocalPoint(c.P0),
		P1: f.ToLocalPoint(c.P1),
		P2: f.ToLocalPoint(c.P2),
		P3: f.ToLocalPoint(c.P3),
	}
}

// ToGlobalCurve places a local curve in the global space, preserving
// the curve's kind.
func (f Frame3[G, L]) ToGlobalCurve(c Curve3[L]) Curve3[G] {
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
func (f Frame3[G, L]) ToLocalCurve(c Curve3[G]) Curve3[L] {
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

func (f Frame3[G, L]) ToGlobalPolyline(p Polyline3[L]) Polyline3[G] {
	out := make(Polyline3[G], len(p))
	for i, pt := range p {
		out[i] = f.ToGlobalPoint(pt)
	}
	return out
}

func (f Frame3[G, L]) ToLocalPolyline(p Polyline3[G]) Polyline3[L] {
	out := make(Polyline3[L], len(p))
	for i, pt := range p {
		out[i] = f.ToLocalPoint(pt)
	}
	return out
}
