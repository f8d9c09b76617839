package geom

import "math"

// Vector3 is a displacement in the 3D space S.
type Vector3[S any] struct {
	X, Y, Z Length[S]
}

// Vec3 returns the vector (x, y, z) in space S.
func Vec3[S any](x, y, z float64) Vector3[S] {
	return Vector3[S]{X: Length[S](x), Y: Length[S](y), Z: Length[S](z)}
}

func (v Vector3[S]) Add(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vector3[S]) Sub(o Vector3[S]) Vector3[S] {
	return Vector3[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vector3[S]) Mul(f float64) Vector3[S] {
	return Vector3[S]{
		X: v.X.Mul(f),
		Y: v.Y.Mul(f),
		Z: v.Z.Mul(f),
	}
}

func (v Vector3[S]) Neg() Vector3[S] {
	return Vector3[S]{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Length returns the magnitude of the vector.
func (v Vector3[S]) Length() Length[S] {
	return Length[S](math.Sqrt(v.Dot(v)))
}

// Dot returns the dot product, in squared units of S.
func (v Vector3[S]) Dot(o Vector3[S]) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y) + float64(v.Z)*float64(o.Z)
}

// RotateAbout rotates the vector by the given angle about the axis
// direction d, counterclockwise when viewed from the tip of d.
func (v Vector3[S]) RotateAbout(d Direction3[S], a Angle) Vector3[S] {
	s, c := math.Sincos(float64(a))
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	dot := (1 - c) * (x*d.X + y*d.Y + z*d.Z)
	return Vector3[S]{
		X: Length[S](x*c + (d.Y*z-d.Z*y)*s + d.X*dot),
		Y: Length[S](y*c + (d.Z*x-d.X*z)*s + d.Y*dot),
		Z: Length[S](z*c + (d.X*y-d.Y*x)*s + d.Z*dot),
	}
}

// mirrorIn reflects v across the plane through the origin with unit
// normal n.
func (v Vector3[S]) mirrorIn(n Direction3[S]) Vector3[S] {
	dot := 2 * (float64(v.X)*n.X + float64(v.Y)*n.Y + float64(v.Z)*n.Z)
	return Vector3[S]{
		X: v.X - Length[S](dot*n.X),
		Y: v.Y - Length[S](dot*n.Y),
		Z: v.Z - Length[S](dot*n.Z),
	}
}

// Direction returns the vector's direction, or false for the zero
// vector.
func (v Vector3[S]) Direction() (Direction3[S], bool) {
	n := math.Sqrt(v.Dot(v))
	if n == 0 {
		return Direction3[S]{}, false
	}
	return Direction3[S]{X: float64(v.X) / n, Y: float64(v.Y) / n, Z: float64(v.Z) / n}, true
}

// Direction3 is a unit vector in the 3D space S. Directions carry no
// unit; only the space identity. The zero value is not a valid
// direction; construct directions with [Vector3.Direction] or from the
// coordinate axes.
type Direction3[S any] struct {
	X, Y, Z float64
}

// Scale returns the vector of the given length along d.
func (d Direction3[S]) Scale(l Length[S]) Vector3[S] {
	return Vector3[S]{
		X: l.Mul(d.X),
		Y: l.Mul(d.Y),
		Z: l.Mul(d.Z),
	}
}

func (d Direction3[S]) Neg() Direction3[S] {
	return Direction3[S]{X: -d.X, Y: -d.Y, Z: -d.Z}
}

// Cross returns the cross product of two directions. The result is a
// unit direction only when d and o are perpendicular.
func (d Direction3[S]) Cross(o Direction3[S]) Direction3[S] {
	return Direction3[S]{
		X: d.Y*o.Z - d.Z*o.Y,
		Y: d.Z*o.X - d.X*o.Z,
		Z: d.X*o.Y - d.Y*o.X,
	}
}

// RotateAbout rotates d by the given angle about the axis direction,
// counterclockwise when viewed from the tip of the axis.
func (d Direction3[S]) RotateAbout(axis Direction3[S], a Angle) Direction3[S] {
	s, c := math.Sincos(float64(a))
	dot := (1 - c) * (d.X*axis.X + d.Y*axis.Y + d.Z*axis.Z)
	return Direction3[S]{
		X: d.X*c + (axis.Y*d.Z-axis.Z*d.Y)*s + axis.X*dot,
		Y: d.Y*c + (axis.Z*d.X-axis.X*d.Z)*s + axis.Y*dot,
		Z: d.Z*c + (axis.X*d.Y-axis.Y*d.X)*s + axis.Z*dot,
	}
}

// mirrorIn reflects d across the plane through the origin with unit
// normal n.
func (d Direction3[S]) mirrorIn(n Direction3[S]) Direction3[S] {
	dot := 2 * (d.X*n.X + d.Y*n.Y + d.Z*n.Z)
	return Direction3[S]{
		X: d.X - dot*n.X,
		Y: d.Y - dot*n.Y,
		Z: d.Z - dot*n.Z,
	}
}

// perpendicularTo returns an arbitrary unit direction perpendicular to
// d, built by projecting out d from the coordinate axis least aligned
// with it.
func perpendicularTo[S any](d Direction3[S]) Direction3[S] {
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)
	var e Direction3[S]
	switch {
	case ax <= ay && ax <= az:
		e = Direction3[S]{X: 1}
	case ay <= az:
		e = Direction3[S]{Y: 1}
	default:
		e = Direction3[S]{Z: 1}
	}
	dot := e.X*d.X + e.Y*d.Y + e.Z*d.Z
	vx := e.X - dot*d.X
	vy := e.Y - dot*d.Y
	vz := e.Z - dot*d.Z
	n := math.Sqrt(vx*vx + vy*vy + vz*vz)
	return Direction3[S]{X: vx / n, Y: vy / n, Z: vz / n}
}
