package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// world is the space tag used throughout the tests.
type world struct{}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Errorf("got %v, expected %v (within %v)", got, want, tol)
	}
}

// approx compares lengths in the test space within tol.
func approx(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b Length[world]) bool {
		return math.Abs(float64(a-b)) <= tol
	})
}

// approxLocal is approx for the frame-local test space.
func approxLocal(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b Length[local]) bool {
		return math.Abs(float64(a-b)) <= tol
	})
}

// approxArcs compares arcs field by field, unexported fields included.
func approxArcs(tol float64) cmp.Option {
	return cmp.Options{
		cmp.AllowUnexported(
			Arc2[world]{}, EllipticalArc2[world]{}, Ellipse2[world]{},
			Arc3[world]{}, EllipticalArc3[world]{}, Ellipse3[world]{},
		),
		cmp.Comparer(func(a, b Length[world]) bool {
			return math.Abs(float64(a-b)) <= tol
		}),
		cmp.Comparer(func(a, b Angle) bool {
			return math.Abs(float64(a-b)) <= tol
		}),
		cmp.Comparer(func(a, b float64) bool {
			return math.Abs(a-b) <= tol
		}),
	}
}

// maxChordDeviation2 measures how far the curve strays from the
// polyline at the midpoint of each sampled subinterval. For uniformly
// sampled curves this is the quantity the approximation bounds control.
func maxChordDeviation2(eval func(float64) Point2[world], p Polyline2[world]) float64 {
	n := len(p) - 1
	var worst float64
	for i := 0; i < n; i++ {
		mid := p[i].Midpoint(p[i+1])
		on := eval((float64(i) + 0.5) / float64(n))
		worst = max(worst, float64(on.Distance(mid)))
	}
	return worst
}

func maxChordDeviation3(eval func(float64) Point3[world], p Polyline3[world]) float64 {
	n := len(p) - 1
	var worst float64
	for i := 0; i < n; i++ {
		mid := p[i].Midpoint(p[i+1])
		on := eval((float64(i) + 0.5) / float64(n))
		worst = max(worst, float64(on.Distance(mid)))
	}
	return worst
}
