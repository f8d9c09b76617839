package geom

// LineSegment3 is a directed straight line segment in the 3D space S. A
// zero-length segment, with both endpoints coincident, is legal.
type LineSegment3[S any] struct {
	P0, P1 Point3[S]
}

func (l LineSegment3[S]) StartPoint() Point3[S] { return l.P0 }
func (l LineSegment3[S]) EndPoint() Point3[S]   { return l.P1 }

// Length returns the length of the segment.
func (l LineSegment3[S]) Length() Length[S] {
	return l.P0.Distance(l.P1)
}

// Eval evaluates the segment at parameter t in [0, 1].
func (l LineSegment3[S]) Eval(t float64) Point3[S] {
	return l.P0.Lerp(l.P1, t)
}

// Reverse swaps the segment's endpoints. Reversing twice reproduces the
// original segment exactly.
func (l LineSegment3[S]) Reverse() LineSegment3[S] {
	return LineSegment3[S]{P0: l.P1, P1: l.P0}
}

func (l LineSegment3[S]) Translate(v Vector3[S]) LineSegment3[S] {
	return LineSegment3[S]{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l LineSegment3[S]) RotateAround(axis Axis3[S], a Angle) LineSegment3[S] {
	return LineSegment3[S]{
		P0: l.P0.RotateAround(axis, a),
		P1: l.P1.RotateAround(axis, a),
	}
}

func (l LineSegment3[S]) MirrorAcross(plane Plane3[S]) LineSegment3[S] {
	return LineSegment3[S]{
		P0: l.P0.MirrorAcross(plane),
		P1: l.P1.MirrorAcross(plane),
	}
}

func (l LineSegment3[S]) ScaleAbout(center Point3[S], f float64) LineSegment3[S] {
	return LineSegment3[S]{
		P0: l.P0.ScaleAbout(center, f),
		P1: l.P1.ScaleAbout(center, f),
	}
}

func (l LineSegment3[S]) BoundingBox() BoundingBox3[S] {
	return NewBoundingBox3(l.P0, l.P1)
}

// Segments samples the segment into a polyline of n equal parts.
func (l LineSegment3[S]) Segments(n int) (Polyline3[S], error) {
	return sample3(l.Eval, n)
}

// NumApproximationSegments returns 1 regardless of maxError: a straight
// segment has zero deviation from its own chord.
func (l LineSegment3[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return 1, nil
}

// Approximate returns the two endpoints. The tolerance is ignored.
func (l LineSegment3[S]) Approximate(maxError Length[S]) (Polyline3[S], error) {
	return Polyline3[S]{l.P0, l.P1}, nil
}

// Curve wraps the segment in a [Curve3].
func (l LineSegment3[S]) Curve() Curve3[S] {
	return Curve3[S]{kind: LineSegmentKind, line: l}
}
