package geom

// BoundingBox2 is the axis-aligned extent of a set of points in the 2D
// space S.
type BoundingBox2[S any] struct {
	MinX, MinY Length[S]
	MaxX, MaxY Length[S]
}

// NewBoundingBox2 returns the box spanning p0 and p1, ensuring that the
// minima do not exceed the maxima.
func NewBoundingBox2[S any](p0, p1 Point2[S]) BoundingBox2[S] {
	return BoundingBox2[S]{
		MinX: min(p0.X, p1.X),
		MinY: min(p0.Y, p1.Y),
		MaxX: max(p0.X, p1.X),
		MaxY: max(p0.Y, p1.Y),
	}
}

// UnionPoint extends the box to contain pt.
func (b BoundingBox2[S]) UnionPoint(pt Point2[S]) BoundingBox2[S] {
	return BoundingBox2[S]{
		MinX: min(b.MinX, pt.X),
		MinY: min(b.MinY, pt.Y),
		MaxX: max(b.MaxX, pt.X),
		MaxY: max(b.MaxY, pt.Y),
	}
}

// Union returns the smallest box enclosing both b and o.
func (b BoundingBox2[S]) Union(o BoundingBox2[S]) BoundingBox2[S] {
	return BoundingBox2[S]{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Center returns the geometric center of the box.
func (b BoundingBox2[S]) Center() Point2[S] {
	return Point2[S]{
		X: 0.5 * (b.MinX + b.MaxX),
		Y: 0.5 * (b.MinY + b.MaxY),
	}
}

// Contains reports whether pt lies within the box, borders included.
func (b BoundingBox2[S]) Contains(pt Point2[S]) bool {
	return pt.X >= b.MinX && pt.X <= b.MaxX &&
		pt.Y >= b.MinY && pt.Y <= b.MaxY
}

// hull2 returns the bounding box of a point set; the second return
// value is false for an empty set.
func hull2[S any](pts []Point2[S]) (BoundingBox2[S], bool) {
	if len(pts) == 0 {
		return BoundingBox2[S]{}, false
	}
	box := NewBoundingBox2(pts[0], pts[0])
	for _, pt := range pts[1:] {
		box = box.UnionPoint(pt)
	}
	return box, true
}
