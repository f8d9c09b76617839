package geom

// Polyline2 is an ordered sequence of vertices in the 2D space S;
// consecutive vertices form the implicit segments. A polyline with
// fewer than two vertices has no segments.
type Polyline2[S any] []Point2[S]

// Length returns the sum of the segment lengths; zero for fewer than
// two vertices.
func (p Polyline2[S]) Length() Length[S] {
	var total Length[S]
	for i := 1; i < len(p); i++ {
		total += p[i-1].Distance(p[i])
	}
	return total
}

// BoundingBox returns the hull of the vertices, or false for an empty
// polyline.
func (p Polyline2[S]) BoundingBox() (BoundingBox2[S], bool) {
	return hull2(p)
}

// Centroid approximates the length-weighted centroid of the polyline,
// or returns false for an empty polyline. If all vertices coincide the
// centroid is that vertex.
//
// The estimate starts at the bounding box center and is pulled toward
// each segment's midpoint in vertex order, weighted by the segment's
// share of the total length. The traversal order is part of the
// contract: it determines the exact floating-point result.
func (p Polyline2[S]) Centroid() (Point2[S], bool) {
	if len(p) == 0 {
		return Point2[S]{}, false
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
func (p Polyline2[S]) Reverse() Polyline2[S] {
	out := make(Polyline2[S], len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func (p Polyline2[S]) Translate(v Vector2[S]) Polyline2[S] {
	out := make(Polyline2[S], len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

func (p Polyline2[S]) RotateAround(center Point2[S], a Angle) Polyline2[S] {
	out := make(Polyline2[S], len(p))
	for i, pt := range p {
		out[i] = pt.RotateAround(center, a)
	}
	return out
}

func (p Polyline2[S]) MirrorAcross(axis Axis2[S]) Polyline2[S] {
	out := make(Polyline2[S], len(p))
	for i, pt := range p {
		out[i] = pt.MirrorAcross(axis)
	}
	return out
}

func (p Polyline2[S]) ScaleAbout(center Point2[S], f float64) Polyline2[S] {
	out := make(Polyline2[S], len(p))
	for i, pt := range p {
		out[i] = pt.ScaleAbout(center, f)
	}
	return out
}
