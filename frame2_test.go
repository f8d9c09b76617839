package geom

import (
	"math"
	"testing"
)

// local is the space tag for frame-local geometry in the tests.
type local struct{}

func TestFrame2PointConversion(t *testing.T) {
	f := NewFrame2[world, local](Pt2[world](1, 1), NewDirection2[world](Radians(math.Pi/2)))

	// The frame's x axis points along global +y, so local (1, 0) lands
	// one unit above the origin; local +y points along global −x.
	diff(t, Pt2[world](1, 2), f.ToGlobalPoint(Pt2[local](1, 0)), approx(1e-15))
	diff(t, Pt2[world](0, 1), f.ToGlobalPoint(Pt2[local](0, 1)), approx(1e-15))

	// Frame origin maps to the local origin.
	got := f.ToLocalPoint(Pt2[world](1, 1))
	if math.Abs(float64(got.X)) > 1e-15 || math.Abs(float64(got.Y)) > 1e-15 {
		t.Errorf("frame origin mapped to %v, expected the local origin", got)
	}
}

func TestFrame2RoundTrip(t *testing.T) {
	f := NewFrame2[world, local](Pt2[world](3, -2), NewDirection2[world](Radians(0.7)))

	pts := []Point2[local]{
		Pt2[local](0, 0),
		Pt2[local](1, 0),
		Pt2[local](-2.5, 4),
	}
	for _, p := range pts {
		got := f.ToLocalPoint(f.ToGlobalPoint(p))
		if d := p.Distance(got); float64(d) > 1e-14 {
			t.Errorf("%v round-tripped to %v", p, got)
		}
	}

	v := Vec2[local](2, -3)
	round := f.ToLocalVector(f.ToGlobalVector(v))
	assertNear(t, float64(v.Length()), float64(round.Length()), 1e-14)
}

func TestFrame2CurveConversion(t *testing.T) {
	f := NewFrame2[world, local](Pt2[world](1, 0), NewDirection2[world](Radians(0.4)))

	for _, c := range []Curve2[local]{
		LineSegment2[local]{P0: Pt2[local](0, 0), P1: Pt2[local](2, 1)}.Curve(),
		NewArc2(Pt2[local](1, 1), 2, 0, Radians(1.5)).Curve(),
		NewEllipticalArc2(Pt2[local](0, 0), Direction2[local]{X: 1}, 2, 1, 0, Radians(2)).Curve(),
		QuadraticSpline2[local]{P0: Pt2[local](0, 0), P1: Pt2[local](1, 2), P2: Pt2[local](2, 0)}.Curve(),
		CubicSpline2[local]{P0: Pt2[local](0, 0), P1: Pt2[local](0, 1), P2: Pt2[local](2, 1), P3: Pt2[local](2, 0)}.Curve(),
	} {
		placed := f.ToGlobalCurve(c)
		if placed.Kind() != c.Kind() {
			t.Errorf("placement changed the kind from %v to %v", c.Kind(), placed.Kind())
		}

		// Placement commutes with evaluation.
		for _, tt := range []float64{0, 0.3, 1} {
			want := f.ToGlobalPoint(c.Eval(tt))
			got := placed.Eval(tt)
			if d := want.Distance(got); float64(d) > 1e-13 {
				t.Errorf("%v: t=%v: placed curve evaluates to %v, expected %v", c.Kind(), tt, got, want)
			}
		}

		// ToLocal inverts ToGlobal up to rounding.
		back := f.ToLocalCurve(placed)
		for _, tt := range []float64{0, 0.5, 1} {
			if d := c.Eval(tt).Distance(back.Eval(tt)); float64(d) > 1e-13 {
				t.Errorf("%v: t=%v: round trip drifted by %v", c.Kind(), tt, d)
			}
		}
	}
}

func TestFrame2LeftHanded(t *testing.T) {
	// A left-handed frame mirrors geometry; arc sampling still commutes
	// with placement because the arc carries its own axes.
	f := Frame2[world, local]{
		Origin:     Pt2[world](0, 0),
		XDirection: Direction2[world]{X: 1},
		YDirection: Direction2[world]{Y: -1},
	}
	a := NewArc2(Pt2[local](0, 0), 1, 0, Radians(math.Pi/2))
	placed := f.ToGlobalArc(a)
	diff(t, Pt2[world](1, 0), placed.StartPoint(), approx(1e-15))
	diff(t, Pt2[world](0, -1), placed.EndPoint(), approx(1e-15))
}

func TestFrame2PolylineConversion(t *testing.T) {
	f := NewFrame2[world, local](Pt2[world](5, 5), NewDirection2[world](Radians(1.2)))
	p := Polyline2[local]{Pt2[local](0, 0), Pt2[local](1, 0), Pt2[local](1, 2)}
	placed := f.ToGlobalPolyline(p)
	assertNear(t, float64(p.Length()), float64(placed.Length()), 1e-14)
	diff(t, p, f.ToLocalPolyline(placed), approxLocal(1e-14))
}
