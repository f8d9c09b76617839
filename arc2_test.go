package geom

import (
	"math"
	"testing"
)

func TestArc2Eval(t *testing.T) {
	a := NewArc2(Pt2[world](1, 1), 2, 0, Radians(math.Pi/2))

	diff(t, Pt2[world](3, 1), a.StartPoint(), approx(1e-15))
	diff(t, Pt2[world](1, 3), a.EndPoint(), approx(1e-15))
	diff(t, Pt2[world](1+math.Sqrt2, 1+math.Sqrt2), a.Eval(0.5), approx(1e-15))
}

func TestArc2ReverseTwiceIsExact(t *testing.T) {
	a := NewArc2(Pt2[world](0.1, -0.7), 3.21, Radians(0.3), Radians(2.5))
	diff(t, a, a.Reverse().Reverse(), approxArcs(0))

	r := a.Reverse()
	diff(t, a.StartPoint(), r.EndPoint(), approx(1e-14))
	diff(t, a.EndPoint(), r.StartPoint(), approx(1e-14))
	if got, want := r.SweptAngle(), -a.SweptAngle(); got != want {
		t.Errorf("got swept angle %v, expected %v", got, want)
	}
}

func TestArc2Transforms(t *testing.T) {
	a := NewArc2(Pt2[world](2, 0), 1, 0, Radians(math.Pi))

	rotated := a.RotateAround(Pt2[world](0, 0), Degrees(90))
	diff(t, Pt2[world](0, 2), rotated.Center(), approx(1e-15))
	diff(t, Pt2[world](0, 3), rotated.StartPoint(), approx(1e-15))

	// Mirroring flips handedness but keeps the stored angles.
	xAxis := Axis2[world]{Origin: Pt2[world](0, 0), Direction: Direction2[world]{X: 1}}
	mirrored := a.MirrorAcross(xAxis)
	if mirrored.StartAngle() != a.StartAngle() || mirrored.EndAngle() != a.EndAngle() {
		t.Error("mirroring changed the stored angles")
	}
	diff(t, Pt2[world](3, 0), mirrored.StartPoint(), approx(1e-15))
	diff(t, Pt2[world](2, -1), mirrored.Eval(0.5), approx(1e-15))

	scaled := a.ScaleAbout(Pt2[world](0, 0), -2)
	diff(t, Length[world](2), scaled.Radius())
	diff(t, Pt2[world](-4, 0), scaled.Center())
	diff(t, Pt2[world](-6, 0), scaled.StartPoint(), approx(1e-14))
}

func TestArc2BoundingBox(t *testing.T) {
	// Quarter arc from (1,0) to (0,1): the interior maximum in y is at
	// the end, the maximum in x at the start.
	a := NewArc2(Pt2[world](0, 0), 1, 0, Radians(math.Pi/2))
	diff(t, BoundingBox2[world]{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}, a.BoundingBox(), approx(1e-15))

	// Half arc through the top of the circle: the interior extremum at
	// θ = π/2 must be included.
	h := NewArc2(Pt2[world](0, 0), 1, 0, Radians(math.Pi))
	diff(t, BoundingBox2[world]{MinX: -1, MinY: 0, MaxX: 1, MaxY: 1}, h.BoundingBox(), approx(1e-15))

	// A rotated full circle still spans the whole square.
	c := Circle2[world]{Center: Pt2[world](1, 1), Radius: 2}
	full := c.ToArc().RotateAround(Pt2[world](1, 1), Radians(0.41))
	diff(t, BoundingBox2[world]{MinX: -1, MinY: -1, MaxX: 3, MaxY: 3}, full.BoundingBox(), approx(1e-14))
}

func TestArc2ApproximationWithinTolerance(t *testing.T) {
	a := NewArc2(Pt2[world](0, 0), 5, Radians(0.2), Radians(4.5))
	for _, tol := range []Length[world]{1, 0.1, 1e-3, 1e-6} {
		p, err := a.Approximate(tol)
		if err != nil {
			t.Fatal(err)
		}
		if dev := maxChordDeviation2(a.Eval, p); dev > float64(tol)*(1+1e-12) {
			t.Errorf("tolerance %v: deviation %v", tol, dev)
		}
	}
}

func TestArc2SegmentCountMonotonic(t *testing.T) {
	a := NewArc2(Pt2[world](0, 0), 3, 0, Radians(2))
	prev := 0
	for _, tol := range []Length[world]{10, 1, 0.1, 1e-2, 1e-4, 1e-6} {
		n, err := a.NumApproximationSegments(tol)
		if err != nil {
			t.Fatal(err)
		}
		if n < prev {
			t.Errorf("tolerance %v: count %d dropped below %d", tol, n, prev)
		}
		prev = n
	}
}

func TestArc2SegmentCountScaleInvariant(t *testing.T) {
	a := NewArc2(Pt2[world](0, 0), 3, 0, Radians(2))
	b := a.ScaleAbout(Pt2[world](0, 0), 1000)
	na, err := a.NumApproximationSegments(1e-3)
	if err != nil {
		t.Fatal(err)
	}
	nb, err := b.NumApproximationSegments(1)
	if err != nil {
		t.Fatal(err)
	}
	if na != nb {
		t.Errorf("got %d and %d segments, expected scaling to preserve the count", na, nb)
	}
}

func TestArc2Degenerate(t *testing.T) {
	zeroSweep := NewArc2(Pt2[world](0, 0), 2, Radians(1), 0)
	n, err := zeroSweep.NumApproximationSegments(1e-9)
	if err != nil || n != 1 {
		t.Errorf("zero sweep: got (%d, %v), expected (1, nil)", n, err)
	}

	zeroRadius := NewArc2(Pt2[world](4, 4), 0, 0, Radians(3))
	p, err := zeroRadius.Approximate(1e-9)
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range p {
		diff(t, Pt2[world](4, 4), pt)
	}
}

func TestArc2TinyToleranceNeverUnderSegments(t *testing.T) {
	// A tolerance below one ulp of the radius rounds the sagitta term to
	// zero; the count must keep growing on the order of 1/√tol rather
	// than collapse to a single chord.
	a := NewArc2(Pt2[world](0, 0), 1, 0, Radians(math.Pi))

	n, err := a.NumApproximationSegments(1e-13)
	if err != nil {
		t.Fatal(err)
	}
	if n < 3_000_000 {
		t.Errorf("tolerance 1e-13: got %d segments", n)
	}

	n, err = a.NumApproximationSegments(1e-17)
	if err != nil {
		t.Fatal(err)
	}
	if n < 300_000_000 {
		t.Errorf("tolerance 1e-17: got %d segments", n)
	}
}

func TestArc2LooseToleranceSingleChord(t *testing.T) {
	// A tolerance wider than the diameter admits a single chord.
	a := NewArc2(Pt2[world](0, 0), 1, 0, Radians(math.Pi))
	n, err := a.NumApproximationSegments(10)
	if err != nil || n != 1 {
		t.Errorf("got (%d, %v), expected (1, nil)", n, err)
	}
}
