package geom

// BoundingBox3 is the axis-aligned extent of a set of points in the 3D
// space S.
type BoundingBox3[S any] struct {
	MinX, MinY, MinZ Length[S]
	MaxX, MaxY, MaxZ Length[S]
}

// NewBoundingBox3 returns the box spanning p0 and p1, ensuring that the
// minima do not exceed the maxima.
func NewBoundingBox3[S any](p0, p1 Point3[S]) BoundingBox3[S] {
	return BoundingBox3[S]{
		MinX: min(p0.X, p1.X),
		MinY: min(p0.Y, p1.Y),
		MinZ: min(p0.Z, p1.Z),
		MaxX: max(p0.X, p1.X),
		MaxY: max(p0.Y, p1.Y),
		MaxZ: max(p0.Z, p1.Z),
	}
}

// UnionPoint extends the box to contain pt.
func (b BoundingBox3[S]) UnionPoint(pt Point3[S]) BoundingBox3[S] {
	return BoundingBox3[S]{
		MinX: min(b.MinX, pt.X),
		MinY: min(b.MinY, pt.Y),
		MinZ: min(b.MinZ, pt.Z),
		MaxX: max(b.MaxX, pt.X),
		MaxY: max(b.MaxY, pt.Y),
		MaxZ: max(b.MaxZ, pt.Z),
	}
}

// Union returns the smallest box enclosing both b and o.
func (b BoundingBox3[S]) Union(o BoundingBox3[S]) BoundingBox3[S] {
	return BoundingBox3[S]{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MinZ: min(b.MinZ, o.MinZ),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
		MaxZ: max(b.MaxZ, o.MaxZ),
	}
}

// Center returns the geometric center of the box.
func (b BoundingBox3[S]) Center() Point3[S] {
	return Point3[S]{
		X: 0.5 * (b.MinX + b.MaxX),
		Y: 0.5 * (b.MinY + b.MaxY),
		Z: 0.5 * (b.MinZ + b.MaxZ),
	}
}

// Contains reports whether pt lies within the box, borders included.
func (b BoundingBox3[S]) Contains(pt Point3[S]) bool {
	return pt.X >= b.MinX && pt.X <= b.MaxX &&
		pt.Y >= b.MinY && pt.Y <= b.MaxY &&
		pt.Z >= b.MinZ && pt.Z <= b.MaxZ
}

// hull3 returns the bounding box of a point set; the second return
// value is false for an empty set.
func hull3[S any](pts []Point3[S]) (BoundingBox3[S], bool) {
	if len(pts) == 0 {
		return BoundingBox3[S]{}, false
	}
	box := NewBoundingBox3(pts[0], pts[0])
	for _, pt := range pts[1:] {
		box = box.UnionPoint(pt)
	}
	return box, true
}
