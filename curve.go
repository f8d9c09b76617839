package geom

import (
	"errors"
	"fmt"
)

// DefaultMaxError is a default value for methods that take a maximum
// approximation error. It is suitable for general-purpose use, such as
// 2D graphics in pixel-sized units.
const DefaultMaxError = 1e-6

var (
	// ErrInvalidSegmentCount is returned by Segments when asked for
	// fewer than one segment.
	ErrInvalidSegmentCount = errors.New("geom: segment count must be at least 1")

	// ErrInvalidTolerance is returned by NumApproximationSegments and
	// Approximate for a zero or negative maximum error: no finite
	// segment count can satisfy such a tolerance.
	ErrInvalidTolerance = errors.New("geom: approximation tolerance must be positive")
)

// CurveKind identifies the active variant of a [Curve2] or [Curve3].
type CurveKind uint8

const (
	LineSegmentKind CurveKind = iota
	ArcKind
	EllipticalArcKind
	QuadraticSplineKind
	CubicSplineKind
)

func (k CurveKind) String() string {
	switch k {
	case LineSegmentKind:
		return "LineSegment"
	case ArcKind:
		return "Arc"
	case EllipticalArcKind:
		return "EllipticalArc"
	case QuadraticSplineKind:
		return "QuadraticSpline"
	case CubicSplineKind:
		return "CubicSpline"
	default:
		return fmt.Sprintf("CurveKind(%d)", uint8(k))
	}
}
