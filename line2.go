package geom

// LineSegment2 is a directed straight line segment in the 2D space S. A
// zero-length segment, with both endpoints coincident, is legal.
type LineSegment2[S any] struct {
	P0, P1 Point2[S]
}

func (l LineSegment2[S]) StartPoint() Point2[S] { return l.P0 }
func (l LineSegment2[S]) EndPoint() Point2[S]   { return l.P1 }

// Length returns the length of the segment.
func (l LineSegment2[S]) Length() Length[S] {
	return l.P0.Distance(l.P1)
}

// Eval evaluates the segment at parameter t in [0, 1].
func (l LineSegment2[S]) Eval(t float64) Point2[S] {
	return l.P0.Lerp(l.P1, t)
}

// Reverse swaps the segment's endpoints. Reversing twice reproduces the
// original segment exactly.
func (l LineSegment2[S]) Reverse() LineSegment2[S] {
	return LineSegment2[S]{P0: l.P1, P1: l.P0}
}

func (l LineSegment2[S]) Translate(v Vector2[S]) LineSegment2[S] {
	return LineSegment2[S]{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l LineSegment2[S]) RotateAround(center Point2[S], a Angle) LineSegment2[S] {
	return LineSegment2[S]{
		P0: l.P0.RotateAround(center, a),
		P1: l.P1.RotateAround(center, a),
	}
}

func (l LineSegment2[S]) MirrorAcross(axis Axis2[S]) LineSegment2[S] {
	return LineSegment2[S]{
		P0: l.P0.MirrorAcross(axis),
		P1: l.P1.MirrorAcross(axis),
	}
}

func (l LineSegment2[S]) ScaleAbout(center Point2[S], f float64) LineSegment2[S] {
	return LineSegment2[S]{
		P0: l.P0.ScaleAbout(center, f),
		P1: l.P1.ScaleAbout(center, f),
	}
}

func (l LineSegment2[S]) BoundingBox() BoundingBox2[S] {
	return NewBoundingBox2(l.P0, l.P1)
}

// Segments samples the segment into a polyline of n equal parts.
func (l LineSegment2[S]) Segments(n int) (Polyline2[S], error) {
	return sample2(l.Eval, n)
}

// NumApproximationSegments returns 1 regardless of maxError: a straight
// segment has zero deviation from its own chord.
func (l LineSegment2[S]) NumApproximationSegments(maxError Length[S]) (int, error) {
	return 1, nil
}

// Approximate returns the two endpoints. The tolerance is ignored.
func (l LineSegment2[S]) Approximate(maxError Length[S]) (Polyline2[S], error) {
	return Polyline2[S]{l.P0, l.P1}, nil
}

// Curve wraps the segment in a [Curve2].
func (l LineSegment2[S]) Curve() Curve2[S] {
	return Curve2[S]{kind: LineSegmentKind, line: l}
}
