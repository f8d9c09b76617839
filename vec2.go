package geom

import "math"

// Vector2 is a displacement in the 2D space S.
type Vector2[S any] struct {
	X, Y Length[S]
}

// Vec2 returns the vector (x, y) in space S.
func Vec2[S any](x, y float64) Vector2[S] {
	return Vector2[S]{X: Length[S](x), Y: Length[S](y)}
}

func (v Vector2[S]) Add(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

func (v Vector2[S]) Sub(o Vector2[S]) Vector2[S] {
	return Vector2[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vector2[S]) Mul(f float64) Vector2[S] {
	return Vector2[S]{
		X: v.X.Mul(f),
		Y: v.Y.Mul(f),
	}
}

func (v Vector2[S]) Neg() Vector2[S] {
	return Vector2[S]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Length returns the magnitude of the vector.
func (v Vector2[S]) Length() Length[S] {
	return Length[S](math.Hypot(float64(v.X), float64(v.Y)))
}

// Dot returns the dot product, in squared units of S.
func (v Vector2[S]) Dot(o Vector2[S]) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y)
}

// Cross returns the 2D cross product, in squared units of S.
func (v Vector2[S]) Cross(o Vector2[S]) float64 {
	return float64(v.X)*float64(o.Y) - float64(v.Y)*float64(o.X)
}

// Rotate rotates the vector counterclockwise for positive angles.
func (v Vector2[S]) Rotate(a Angle) Vector2[S] {
	s, c := math.Sincos(float64(a))
	return Vector2[S]{
		X: v.X.Mul(c) - v.Y.Mul(s),
		Y: v.X.Mul(s) + v.Y.Mul(c),
	}
}

// mirrorAlong reflects v across the line through the origin with
// direction d.
func (v Vector2[S]) mirrorAlong(d Direction2[S]) Vector2[S] {
	dot := 2 * (float64(v.X)*d.X + float64(v.Y)*d.Y)
	return Vector2[S]{
		X: Length[S](dot*d.X) - v.X,
		Y: Length[S](dot*d.Y) - v.Y,
	}
}

// Direction returns the vector's direction, or false for the zero
// vector.
func (v Vector2[S]) Direction() (Direction2[S], bool) {
	n := math.Hypot(float64(v.X), float64(v.Y))
	if n == 0 {
		return Direction2[S]{}, false
	}
	return Direction2[S]{X: float64(v.X) / n, Y: float64(v.Y) / n}, true
}

// Direction2 is a unit vector in the 2D space S. Directions carry no
// unit; only the space identity. The zero value is not a valid
// direction; construct directions with [NewDirection2] or
// [Vector2.Direction].
type Direction2[S any] struct {
	X, Y float64
}

// NewDirection2 returns the direction at the given angle,
// counterclockwise from the positive x axis.
func NewDirection2[S any](a Angle) Direction2[S] {
	s, c := math.Sincos(float64(a))
	return Direction2[S]{X: c, Y: s}
}

// Heading returns the angle of the direction, counterclockwise from the
// positive x axis, in (−π, π].
func (d Direction2[S]) Heading() Angle {
	return Angle(math.Atan2(d.Y, d.X))
}

// Scale returns the vector of the given length along d.
func (d Direction2[S]) Scale(l Length[S]) Vector2[S] {
	return Vector2[S]{
		X: l.Mul(d.X),
		Y: l.Mul(d.Y),
	}
}

func (d Direction2[S]) Neg() Direction2[S] {
	return Direction2[S]{X: -d.X, Y: -d.Y}
}

// Perpendicular returns d rotated a quarter turn counterclockwise.
func (d Direction2[S]) Perpendicular() Direction2[S] {
	return Direction2[S]{X: -d.Y, Y: d.X}
}

func (d Direction2[S]) Rotate(a Angle) Direction2[S] {
	s, c := math.Sincos(float64(a))
	return Direction2[S]{
		X: d.X*c - d.Y*s,
		Y: d.X*s + d.Y*c,
	}
}

// mirrorAlong reflects d across the line with direction m.
func (d Direction2[S]) mirrorAlong(m Direction2[S]) Direction2[S] {
	dot := 2 * (d.X*m.X + d.Y*m.Y)
	return Direction2[S]{
		X: dot*m.X - d.X,
		Y: dot*m.Y - d.Y,
	}
}
