package geom

import (
	"math"
	"testing"
)

func TestEllipticalArc2Eval(t *testing.T) {
	e := NewEllipticalArc2(Pt2[world](0, 0), Direction2[world]{X: 1}, 3, 1, 0, Radians(math.Pi/2))

	diff(t, Pt2[world](3, 0), e.StartPoint(), approx(1e-15))
	diff(t, Pt2[world](0, 1), e.EndPoint(), approx(1e-15))
	// The parameter angle is elliptical: t=0.5 lands on (3·cos45°, sin45°).
	diff(t, Pt2[world](3*math.Sqrt2/2, math.Sqrt2/2), e.Eval(0.5), approx(1e-15))
}

func TestEllipticalArc2TiltedAxes(t *testing.T) {
	xDir := NewDirection2[world](Radians(math.Pi / 2))
	e := NewEllipticalArc2(Pt2[world](1, 1), xDir, 2, 1, 0, Radians(math.Pi))

	// The x axis points along +y, so the start point is above the center
	// and the y axis points along −x.
	diff(t, Pt2[world](1, 3), e.StartPoint(), approx(1e-15))
	diff(t, Pt2[world](0, 1), e.Eval(0.5), approx(1e-15))
	diff(t, Pt2[world](1, -1), e.EndPoint(), approx(1e-15))
}

func TestEllipticalArc2ReverseTwiceIsExact(t *testing.T) {
	e := NewEllipticalArc2(Pt2[world](0.3, 0.7), NewDirection2[world](Radians(0.9)), 2.5, 0.4, Radians(-0.2), Radians(1.9))
	diff(t, e, e.Reverse().Reverse(), approxArcs(0))
	diff(t, e.StartPoint(), e.Reverse().EndPoint(), approx(1e-14))
}

func TestEllipticalArc2BoundingBox(t *testing.T) {
	// Full axis-aligned ellipse.
	full := NewEllipse2(Pt2[world](1, -1), Direction2[world]{X: 1}, 3, 2).ToEllipticalArc()
	diff(t, BoundingBox2[world]{MinX: -2, MinY: -3, MaxX: 4, MaxY: 1}, full.BoundingBox(), approx(1e-14))

	// The box of any arc must contain dense samples of the arc.
	e := NewEllipticalArc2(Pt2[world](0, 0), NewDirection2[world](Radians(0.6)), 3, 1, Radians(0.5), Radians(2.8))
	box := e.BoundingBox()
	for i := 0; i < 101; i++ {
		pt := e.Eval(float64(i) / 100)
		if !box.Contains(pt) {
			t.Errorf("t=%v: %v escapes %+v", float64(i)/100, pt, box)
		}
	}
}

func TestEllipticalArc2ApproximationWithinTolerance(t *testing.T) {
	e := NewEllipticalArc2(Pt2[world](0, 0), NewDirection2[world](Radians(0.3)), 4, 1.5, Radians(0.1), Radians(5))
	for _, tol := range []Length[world]{0.5, 1e-2, 1e-5} {
		p, err := e.Approximate(tol)
		if err != nil {
			t.Fatal(err)
		}
		if dev := maxChordDeviation2(e.Eval, p); dev > float64(tol) {
			t.Errorf("tolerance %v: deviation %v", tol, dev)
		}
	}
}

func TestEllipticalArc2CircularMatchesArc(t *testing.T) {
	// With equal radii the elliptical arc traces a circle; its segment
	// count bound may differ from the sagitta bound, but the sampled
	// points must coincide with the circular arc's.
	a := NewArc2(Pt2[world](2, 3), 1.5, Radians(0.4), Radians(2))
	e := NewEllipticalArc2(Pt2[world](2, 3), Direction2[world]{X: 1}, 1.5, 1.5, Radians(0.4), Radians(2))
	pa, err := a.Segments(16)
	if err != nil {
		t.Fatal(err)
	}
	pe, err := e.Segments(16)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, pa, pe, approx(1e-15))
}

func TestEllipticalArc2DegenerateRadii(t *testing.T) {
	// A zero y radius flattens the arc onto its x axis.
	e := NewEllipticalArc2(Pt2[world](0, 0), Direction2[world]{X: 1}, 2, 0, 0, Radians(math.Pi))
	p, err := e.Approximate(1e-6)
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range p {
		if pt.Y != 0 {
			t.Errorf("flattened arc left its axis: %v", pt)
		}
	}
}
