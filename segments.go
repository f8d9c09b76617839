package geom

import "math"

// sample2 evaluates eval at n+1 uniformly spaced parameter values in
// [0, 1] and collects the results into a polyline of n segments.
func sample2[S any](eval func(float64) Point2[S], n int) (Polyline2[S], error) {
	if n < 1 {
		return nil, ErrInvalidSegmentCount
	}
	out := make(Polyline2[S], n+1)
	for i := 0; i <= n; i++ {
		out[i] = eval(float64(i) / float64(n))
	}
	return out, nil
}

func sample3[S any](eval func(float64) Point3[S], n int) (Polyline3[S], error) {
	if n < 1 {
		return nil, ErrInvalidSegmentCount
	}
	out := make(Polyline3[S], n+1)
	for i := 0; i <= n; i++ {
		out[i] = eval(float64(i) / float64(n))
	}
	return out, nil
}

// arcApproximationSegments returns the smallest number of segments n
// such that a circular arc of the given radius and swept angle, sampled
// at n+1 uniformly spaced angles, stays within maxError of the chords.
// Per segment the deviation is the sagitta r·(1−cos(sweep/(2n))), so the
// angle step must not exceed 2·acos(1−maxError/r).
func arcApproximationSegments[S any](radius Length[S], sweep Angle, maxError Length[S]) (int, error) {
	if maxError <= 0 {
		return 0, ErrInvalidTolerance
	}
	if sweep == 0 || radius == 0 {
		return 1, nil
	}
	x := 1 - float64(maxError)/float64(radius.Abs())
	if x <= -1 {
		// The tolerance admits the full diameter; one chord suffices.
		return 1, nil
	}
	// A tolerance below one ulp of the radius rounds x up to exactly 1,
	// making maxStep zero and the quotient infinite. Saturate instead of
	// converting a non-finite or out-of-range float to int.
	maxStep := 2 * math.Acos(x)
	n := math.Ceil(math.Abs(float64(sweep)) / maxStep)
	if !(n < math.MaxInt) {
		return math.MaxInt, nil
	}
	return max(int(n), 1), nil
}

// curvatureBoundSegments returns the smallest number of segments n such
// that the linear interpolation error bound M/(8n²) stays within
// maxError, where M bounds the magnitude of the curve's second
// derivative over the parameter domain.
func curvatureBoundSegments[S any](maxSecondDerivative, maxError Length[S]) (int, error) {
	if maxError <= 0 {
		return 0, ErrInvalidTolerance
	}
	if maxSecondDerivative <= 0 {
		return 1, nil
	}
	n := math.Ceil(math.Sqrt(float64(maxSecondDerivative) / (8 * float64(maxError))))
	if !(n < math.MaxInt) {
		// Extreme tolerances overflow the int conversion; saturate rather
		// than wrap around to an under-segmented count.
		return math.MaxInt, nil
	}
	return max(int(n), 1), nil
}

// containsAngle reports whether offset + k·period falls within [lo, hi]
// for some integer k.
func containsAngle(lo, hi, offset, period float64) bool {
	k := math.Ceil((lo - offset) / period)
	return offset+k*period <= hi
}

// cosSquaredExtremes returns the minimum and maximum of cos²θ for θ in
// the closed interval spanned by a and b.
func cosSquaredExtremes(a, b float64) (lo, hi float64) {
	if a > b {
		a, b = b, a
	}
	ca, cb := math.Cos(a), math.Cos(b)
	lo = min(ca*ca, cb*cb)
	hi = max(ca*ca, cb*cb)
	if containsAngle(a, b, 0, math.Pi) {
		hi = 1
	}
	if containsAngle(a, b, math.Pi/2, math.Pi) {
		lo = 0
	}
	return lo, hi
}

// solveQuadratic finds real roots of c0 + c1·x + c2·x² = 0.
//
// If the equation is nearly linear, the quadratic term is ignored and
// the single linear root returned; in the fully degenerate case where
// all coefficients are zero a single 0 is returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as a linear equation.
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0 && c1 == 0 {
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1·x + x² = 0,
		// the other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
