package geom

// Polyline3 is an ordered sequence of vertices in the 3D space S;
// consecutive vertices form the implicit segments. A polyline with
// fewer than two vertices has no segments.
type Polyline3[S any] []Point3[S]

// Length returns the sum of the segment lengths; zero for fewer than
// two vertices.
func (p Polyline3[S]) Length() Length[S] {
	var total Length[S]
	for i := 1; i < len(p); i++ {
		total += p[i-1].Distance(p[i])
	}
	return total
}

// BoundingBox returns the hull of the vertices, or false for an empty
// polyline.
func (p Polyline3[S]) BoundingBox() (BoundingBox3[S], bool) {
	return hull3(p)
}

// Centroid approximates the length-weighted centroid of the polyline,
// or returns false for an empty polyline. If all vertices coincide the
// centroid is that vertex.
//
// The estimate starts at the bounding box center and is pulled toward
// each segment's midpoint in vertex order, weighted by the segment's
// share of the total length. The traversal order is part of the
// contract: it determines the exact floating-point result.
func (p Polyline3[S]) Centroid() (Point3[S], bool) {
	if len(p) == 0 {
		return Point3[S]{}, false
	}
	if len(p) == 1 {
		return p[0], true
	}
	total := p.Length()
	if total == 0 {
		return p[0], true
	}
	box, _ := p.BoundingBox()
	estimate := box.Center()
	for i := 1; i < len(p); i++ {
		mid := p[i-1].Midpoint(p[i])
		weight := float64(p[i-1].Distance(p[i])) / float64(total)
		estimate = estimate.Translate(mid.Sub(estimate).Mul(weight))
	}
	return estimate, true
}

// Reverse returns the polyline with its vertices in reverse order.
func (p Polyline3[S]) Reverse() Polyline3[S] {
	out := make(Polyline3[S], len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func (p Polyline3[S]) Translate(v Vector3[S]) Polyline3[S] {
	out := make(Polyline3[S], len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

func (p Polyline3[S]) RotateAround(axis Axis3[S], a Angle) Polyline3[S] {
	out := make(Polyline3[S], len(p))
	for i, pt := range p {
		out[i] = pt.RotateAround(axis, a)
	}
	return out
}

func (p Polyline3[S]) MirrorAcross(plane Plane3[S]) Polyline3[S] {
	out := make(Polyline3[S], len(p))
	for i, pt := range p {
		out[i] = pt.MirrorAcross(plane)
	}
	return out
}

func (p Polyline3[S]) ScaleAbout(center Point3[S], f float64) Polyline3[S] {
	out := make(Polyline3[S], len(p))
	for i, pt := range p {
		out[i] = pt.ScaleAbout(center, f)
	}
	return out
}
