package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCurves2() []Curve2[world] {
	return []Curve2[world]{
		LineSegment2[world]{P0: Pt2[world](0, 0), P1: Pt2[world](3, 4)}.Curve(),
		NewArc2(Pt2[world](1, 1), 2, Radians(0.3), Radians(2.1)).Curve(),
		NewEllipticalArc2(Pt2[world](0, -1), NewDirection2[world](Radians(0.5)), 3, 1, Radians(0.2), Radians(2.7)).Curve(),
		QuadraticSpline2[world]{
			P0: Pt2[world](0, 0), P1: Pt2[world](2, 3), P2: Pt2[world](4, 0),
		}.Curve(),
		CubicSpline2[world]{
			P0: Pt2[world](0, 0), P1: Pt2[world](1, 2), P2: Pt2[world](3, -2), P3: Pt2[world](4, 0),
		}.Curve(),
	}
}

func TestCurve2KindRoundTrip(t *testing.T) {
	l := LineSegment2[world]{P0: Pt2[world](0, 0), P1: Pt2[world](1, 1)}
	c := l.Curve()
	if c.Kind() != LineSegmentKind {
		t.Fatalf("got kind %v, expected LineSegment", c.Kind())
	}
	got, ok := c.LineSegment()
	if !ok {
		t.Fatal("expected the line segment variant")
	}
	diff(t, l, got)
	if _, ok := c.Arc(); ok {
		t.Error("line segment curve answered as an arc")
	}
}

func TestCurve2OperationsPreserveKind(t *testing.T) {
	for _, c := range testCurves2() {
		kind := c.Kind()
		ops := []Curve2[world]{
			c.Reverse(),
			c.Translate(Vec2[world](1, -2)),
			c.RotateAround(Pt2[world](0, 0), Radians(1)),
			c.MirrorAcross(Axis2[world]{Origin: Pt2[world](0, 0), Direction: Direction2[world]{X: 1}}),
			c.ScaleAbout(Pt2[world](1, 1), 3),
		}
		for i, got := range ops {
			if got.Kind() != kind {
				t.Errorf("%v: operation %d changed the kind to %v", kind, i, got.Kind())
			}
		}
	}
}

func TestCurve2ReverseEndpoints(t *testing.T) {
	for _, c := range testCurves2() {
		r := c.Reverse()
		diff(t, c.StartPoint(), r.EndPoint(), approx(1e-14))
		diff(t, c.EndPoint(), r.StartPoint(), approx(1e-14))
		for _, tt := range []float64{0.25, 0.5, 0.75} {
			diff(t, c.Eval(tt), r.Eval(1-tt), approx(1e-13))
		}
	}
}

func TestCurve2TransformCommutesWithSampling(t *testing.T) {
	center := Pt2[world](1, -1)
	angle := Radians(0.8)
	for _, c := range testCurves2() {
		before, err := c.Segments(7)
		if err != nil {
			t.Fatal(err)
		}
		after, err := c.RotateAround(center, angle).Segments(7)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, before.RotateAround(center, angle), after, approx(1e-13))
	}
}

func TestCurve2ScalingScalesSampledLengths(t *testing.T) {
	origin := Pt2[world](0, 0)
	for _, c := range testCurves2() {
		p, err := c.Segments(9)
		if err != nil {
			t.Fatal(err)
		}
		scaled, err := c.ScaleAbout(origin, 2).Segments(9)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(p); i++ {
			want := 2 * float64(p[i-1].Distance(p[i]))
			got := float64(scaled[i-1].Distance(scaled[i]))
			assertNear(t, want, got, 1e-12*want+1e-15)
		}
	}
}

func TestCurve2BoundingBoxContainsSamples(t *testing.T) {
	for _, c := range testCurves2() {
		box := c.BoundingBox()
		for i := 0; i < 101; i++ {
			pt := c.Eval(float64(i) / 100)
			if !box.Contains(pt) {
				t.Errorf("%v: t=%v: %v escapes %+v", c.Kind(), float64(i)/100, pt, box)
			}
		}
	}
}

func TestCurve2InvalidArguments(t *testing.T) {
	for _, c := range testCurves2() {
		for _, n := range []int{0, -3} {
			_, err := c.Segments(n)
			require.ErrorIs(t, err, ErrInvalidSegmentCount, "%v: Segments(%d)", c.Kind(), n)
		}
		if c.Kind() == LineSegmentKind {
			// Straight segments accept any tolerance.
			continue
		}
		for _, tol := range []Length[world]{0, -1} {
			_, err := c.NumApproximationSegments(tol)
			require.ErrorIs(t, err, ErrInvalidTolerance, "%v: NumApproximationSegments(%v)", c.Kind(), tol)
			_, err = c.Approximate(tol)
			require.ErrorIs(t, err, ErrInvalidTolerance, "%v: Approximate(%v)", c.Kind(), tol)
		}
	}
}

func TestCurve2ApproximateEndpoints(t *testing.T) {
	for _, c := range testCurves2() {
		p, err := c.Approximate(1e-4)
		if err != nil {
			t.Fatal(err)
		}
		if len(p) < 2 {
			t.Fatalf("%v: got %d vertices", c.Kind(), len(p))
		}
		diff(t, c.StartPoint(), p[0], approx(1e-15))
		diff(t, c.EndPoint(), p[len(p)-1], approx(1e-15))
	}
}

func TestCurve2ZeroValue(t *testing.T) {
	var c Curve2[world]
	if c.Kind() != LineSegmentKind {
		t.Fatalf("got kind %v, expected LineSegment", c.Kind())
	}
	diff(t, Pt2[world](0, 0), c.Eval(0.5))
}
