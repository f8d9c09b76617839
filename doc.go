// Package geom provides a small algebra of parametric curves in two and
// three dimensions: line segments, circular and elliptical arcs, and
// quadratic and cubic splines, unified behind one curve value per
// dimension, plus the polylines derived from them and the measurements
// computed over those polylines.
//
// # Spaces and units
//
// Every geometric value is tagged with a phantom space marker. A space
// identifies both a coordinate system and its unit of measure; values
// from different spaces cannot be combined, and the compiler enforces
// this. The marker holds no runtime data; declare an empty struct type
// per space and use it as the type argument:
//
//	type world struct{}
//
//	p := geom.Pt2[world](3, 4)
//
// [Frame2] and [Frame3] convert geometry between a global space and a
// local space established by the frame. [Rate] converts geometry between
// two unit systems; its To methods multiply by the rate and its From
// methods divide, so the two are exact inverses of each other.
//
// # Curves
//
// [Curve2] and [Curve3] are closed tagged unions over the five curve
// kinds. Wrap a primitive with its Curve method, and every curve-level
// operation dispatches to the wrapped kind, returning a curve of the
// same kind. Degree conversions (circle to arc, ellipse to elliptical
// arc) are one-way constructors on [Circle2], [Circle3], [Ellipse2], and
// [Ellipse3].
//
// # Discretization
//
// Curves convert to polylines two ways: Segments(n) samples a fixed
// number of segments at the kind's own uniform parameter spacing, and
// Approximate(maxError) first computes the smallest segment count that
// keeps the polyline within maxError perpendicular deviation of the
// true curve. The count comes from the sagitta relation for circular
// arcs and from a second-derivative bound for elliptical arcs and
// splines. Approximation may over-segment but never under-segments.
//
// All values are immutable; operations return new values and never
// mutate in place, so independent values may be used freely from
// concurrent goroutines.
package geom
