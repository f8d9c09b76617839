package geom

import (
	"math"
	"testing"
)

func TestQuadraticSpline2Eval(t *testing.T) {
	q := QuadraticSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](1, 2),
		P2: Pt2[world](2, 0),
	}

	diff(t, q.P0, q.StartPoint())
	diff(t, q.P2, q.EndPoint())
	diff(t, q.P0, q.Eval(0))
	diff(t, q.P2, q.Eval(1))
	diff(t, Pt2[world](1, 1), q.Eval(0.5))
}

func TestCubicSpline2Eval(t *testing.T) {
	c := CubicSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](0, 1),
		P2: Pt2[world](2, 1),
		P3: Pt2[world](2, 0),
	}

	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))
	diff(t, Pt2[world](1, 0.75), c.Eval(0.5))
}

func TestSpline2ReverseTwiceIsExact(t *testing.T) {
	q := QuadraticSpline2[world]{
		P0: Pt2[world](0.1, 0.2),
		P1: Pt2[world](-1.7, 3.9),
		P2: Pt2[world](2.2, 0.4),
	}
	diff(t, q, q.Reverse().Reverse())
	diff(t, q.P2, q.Reverse().P0)

	c := CubicSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](1, 5),
		P2: Pt2[world](-2, 3),
		P3: Pt2[world](4, 1),
	}
	diff(t, c, c.Reverse().Reverse())
	// The reversed spline traces the same points in opposite order.
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		diff(t, c.Eval(tt), c.Reverse().Eval(1-tt), approx(1e-14))
	}
}

func TestQuadraticSpline2BoundingBox(t *testing.T) {
	// The apex of this parabola is at (1, 1), above both endpoints.
	q := QuadraticSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](1, 2),
		P2: Pt2[world](2, 0),
	}
	diff(t, BoundingBox2[world]{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}, q.BoundingBox())

	// Collinear control points degenerate to a segment.
	flat := QuadraticSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](1, 1),
		P2: Pt2[world](2, 2),
	}
	diff(t, BoundingBox2[world]{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, flat.BoundingBox())
}

func TestCubicSpline2BoundingBox(t *testing.T) {
	// An S-shaped cubic whose extrema lie strictly inside the parameter
	// range on the y axis.
	c := CubicSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](1, 2),
		P2: Pt2[world](2, -2),
		P3: Pt2[world](3, 0),
	}
	box := c.BoundingBox()
	for i := 0; i < 201; i++ {
		pt := c.Eval(float64(i) / 200)
		if !box.Contains(pt) {
			t.Errorf("t=%v: %v escapes %+v", float64(i)/200, pt, box)
		}
	}
	// The interior extrema extend the box beyond the hull of the
	// endpoints.
	if box.MaxY <= 0 || box.MinY >= 0 {
		t.Errorf("expected interior extrema in y, got %+v", box)
	}
	diff(t, Length[world](0), box.MinX)
	diff(t, Length[world](3), box.MaxX)
}

func TestSpline2ApproximationWithinTolerance(t *testing.T) {
	q := QuadraticSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](5, 9),
		P2: Pt2[world](10, 0),
	}
	c := CubicSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](0, 8),
		P2: Pt2[world](10, -8),
		P3: Pt2[world](10, 0),
	}
	for _, tol := range []Length[world]{1, 1e-2, 1e-5} {
		pq, err := q.Approximate(tol)
		if err != nil {
			t.Fatal(err)
		}
		if dev := maxChordDeviation2(q.Eval, pq); dev > float64(tol) {
			t.Errorf("quadratic, tolerance %v: deviation %v", tol, dev)
		}
		pc, err := c.Approximate(tol)
		if err != nil {
			t.Fatal(err)
		}
		if dev := maxChordDeviation2(c.Eval, pc); dev > float64(tol) {
			t.Errorf("cubic, tolerance %v: deviation %v", tol, dev)
		}
	}
}

func TestSpline2TinyToleranceNeverUnderSegments(t *testing.T) {
	q := QuadraticSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](5, 9),
		P2: Pt2[world](10, 0),
	}

	// M = |2(P0 − 2P1 + P2)| = 36, so √(M/(8·tol)) asks for about
	// 2.1e15 segments here.
	n, err := q.NumApproximationSegments(1e-30)
	if err != nil {
		t.Fatal(err)
	}
	if n < 2_000_000_000_000_000 {
		t.Errorf("tolerance 1e-30: got %d segments", n)
	}

	// Beyond the int range the count saturates instead of wrapping
	// around to an under-segmented value.
	n, err = q.NumApproximationSegments(1e-300)
	if err != nil {
		t.Fatal(err)
	}
	if n != math.MaxInt {
		t.Errorf("tolerance 1e-300: got %d segments, expected saturation", n)
	}
}

func TestSpline2DegenerateToPoint(t *testing.T) {
	p := Pt2[world](2, -1)
	q := QuadraticSpline2[world]{P0: p, P1: p, P2: p}
	n, err := q.NumApproximationSegments(1e-9)
	if err != nil || n != 1 {
		t.Errorf("got (%d, %v), expected (1, nil)", n, err)
	}
	poly, err := q.Approximate(1e-9)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Polyline2[world]{p, p}, poly)
}

func TestSpline2SegmentCountMonotonic(t *testing.T) {
	c := CubicSpline2[world]{
		P0: Pt2[world](0, 0),
		P1: Pt2[world](1, 3),
		P2: Pt2[world](2, -3),
		P3: Pt2[world](3, 0),
	}
	prev := 0
	for _, tol := range []Length[world]{10, 1, 0.1, 1e-3, 1e-6} {
		n, err := c.NumApproximationSegments(tol)
		if err != nil {
			t.Fatal(err)
		}
		if n < prev {
			t.Errorf("tolerance %v: count %d dropped below %d", tol, n, prev)
		}
		prev = n
	}
}
