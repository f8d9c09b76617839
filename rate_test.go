package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// meters and pixels are unit-distinct spaces for the conversion tests.
type meters struct{}
type pixels struct{}

func TestRateLengthRoundTrip(t *testing.T) {
	r := Rate[pixels, meters](96.7)
	require.Equal(t, Length[meters](0), r.FromLength(r.ToLength(0)))
	require.Equal(t, Length[meters](1), r.FromLength(r.ToLength(1)))
	for _, v := range []float64{0.1, 1e-9, 12345.678, -3.21} {
		got := r.FromLength(r.ToLength(Length[meters](v)))
		require.InEpsilon(t, v, float64(got), 1e-15)
	}
}

func TestRateInverseIsApproximate(t *testing.T) {
	r := Rate[pixels, meters](3)
	inv := r.Inverse()
	l := Length[pixels](10)
	// The reciprocal conversion agrees to within rounding, not exactly.
	require.InDelta(t, float64(r.FromLength(l)), float64(inv.ToLength(l)), 1e-12)
}

func TestRatePointAndVector(t *testing.T) {
	r := Rate[pixels, meters](100)

	p := Pt2[meters](1.5, -2)
	require.Equal(t, Pt2[pixels](150, -200), r.ToPoint2(p))
	require.Equal(t, p, r.FromPoint2(r.ToPoint2(p)))

	p3 := Pt3[meters](1, 2, 3)
	require.Equal(t, Pt3[pixels](100, 200, 300), r.ToPoint3(p3))
	require.Equal(t, p3, r.FromPoint3(r.ToPoint3(p3)))

	v := Vec2[meters](0.25, 0.5)
	require.Equal(t, Vec2[pixels](25, 50), r.ToVector2(v))
}

func TestRateCurvePreservesKindAndShape(t *testing.T) {
	r := Rate[pixels, meters](50)
	curves := []Curve2[meters]{
		LineSegment2[meters]{P0: Pt2[meters](0, 0), P1: Pt2[meters](1, 1)}.Curve(),
		NewArc2(Pt2[meters](1, 0), 2, 0, Radians(1.2)).Curve(),
		NewEllipticalArc2(Pt2[meters](0, 0), Direction2[meters]{X: 1}, 2, 1, 0, Radians(2)).Curve(),
		QuadraticSpline2[meters]{P0: Pt2[meters](0, 0), P1: Pt2[meters](1, 1), P2: Pt2[meters](2, 0)}.Curve(),
		CubicSpline2[meters]{P0: Pt2[meters](0, 0), P1: Pt2[meters](0, 1), P2: Pt2[meters](1, 1), P3: Pt2[meters](1, 0)}.Curve(),
	}
	for _, c := range curves {
		scaled := r.ToCurve2(c)
		require.Equal(t, c.Kind(), scaled.Kind())

		// Conversion commutes with evaluation.
		for _, tt := range []float64{0, 0.5, 1} {
			want := r.ToPoint2(c.Eval(tt))
			got := scaled.Eval(tt)
			require.InDelta(t, float64(want.X), float64(got.X), 1e-10)
			require.InDelta(t, float64(want.Y), float64(got.Y), 1e-10)
		}

		// The round trip restores the curve's samples exactly.
		back := r.FromCurve2(scaled)
		for _, tt := range []float64{0, 0.25, 1} {
			require.Equal(t, c.Eval(tt), back.Eval(tt))
		}
	}
}

func TestRateCurve3(t *testing.T) {
	r := Rate[pixels, meters](10)
	a := NewArc3(Pt3[meters](0, 0, 1), Direction3[meters]{X: 1}, Direction3[meters]{Y: 1}, 3, 0, Radians(1))
	scaled := r.ToArc3(a)
	require.Equal(t, Length[pixels](30), scaled.Radius())
	require.Equal(t, a, r.FromArc3(scaled))

	p := Polyline3[meters]{Pt3[meters](0, 0, 0), Pt3[meters](1, 2, 2)}
	require.Equal(t, Length[pixels](30), r.ToPolyline3(p).Length())
}

func TestRateScalesTolerance(t *testing.T) {
	// Converting geometry and tolerance together preserves the segment
	// count.
	r := Rate[pixels, meters](1000)
	a := NewArc2(Pt2[meters](0, 0), 2, 0, Radians(2.5))
	n1, err := a.NumApproximationSegments(1e-4)
	require.NoError(t, err)
	n2, err := r.ToArc2(a).NumApproximationSegments(r.ToLength(1e-4))
	require.NoError(t, err)
	require.Equal(t, n1, n2)
}

func TestAngleConversions(t *testing.T) {
	require.InDelta(t, math.Pi, Degrees(180).Radians(), 1e-15)
	assertNear(t, 90, Radians(math.Pi/2).Degrees(), 1e-13)
	assertNear(t, math.Pi/4, Degrees(45).Radians(), 1e-15)
}
