package lattice

import (
	"fmt"
	"iter"
)

// Extent is an axis-aligned box of lattice points, defined by its minimum
// point and its shape (size per axis). The extent covers the half-open range
// [Minimum, Minimum+Shape) on every axis. An extent with any non-positive
// shape component is empty.
type Extent[P Point[P]] struct {
	Minimum P
	Shape   P
}

// Extent2i and Extent3i are the concrete extents used by most callers.
type (
	Extent2i = Extent[Point2i]
	Extent3i = Extent[Point3i]
)

// NewExtent returns the extent with the given minimum and shape.
func NewExtent[P Point[P]](minimum, shape P) Extent[P] {
	return Extent[P]{Minimum: minimum, Shape: shape}
}

// NewExtentFromMinAndMax returns the extent spanning [minimum, max], both
// inclusive.
func NewExtentFromMinAndMax[P Point[P]](minimum, max P) Extent[P] {
	var one P
	one = one.Splat(1)
	return Extent[P]{Minimum: minimum, Shape: max.Sub(minimum).Add(one)}
}

// Max returns the greatest point contained in the extent. Only meaningful
// for non-empty extents.
func (e Extent[P]) Max() P {
	var one P
	one = one.Splat(1)
	return e.Minimum.Add(e.Shape).Sub(one)
}

// IsEmpty reports whether the extent contains no points.
func (e Extent[P]) IsEmpty() bool {
	var one P
	one = one.Splat(1)
	return !one.AllLessEq(e.Shape)
}

// NumPoints returns the number of lattice points in the extent.
func (e Extent[P]) NumPoints() int64 {
	if e.IsEmpty() {
		return 0
	}
	return e.Shape.Product()
}

// Contains reports whether p lies inside the extent.
func (e Extent[P]) Contains(p P) bool {
	return !e.IsEmpty() && e.Minimum.AllLessEq(p) && p.AllLessEq(e.Max())
}

// ContainsExtent reports whether other lies entirely inside the extent.
func (e Extent[P]) ContainsExtent(other Extent[P]) bool {
	if other.IsEmpty() {
		return true
	}
	return e.Contains(other.Minimum) && e.Contains(other.Max())
}

// Intersection returns the largest extent contained in both e and other.
// The result may be empty.
func (e Extent[P]) Intersection(other Extent[P]) Extent[P] {
	minimum := e.Minimum.Max(other.Minimum)
	max := e.Max().Min(other.Max())
	var one P
	one = one.Splat(1)
	return Extent[P]{Minimum: minimum, Shape: max.Sub(minimum).Add(one)}
}

// BoundWith returns the smallest extent containing both e and other.
func (e Extent[P]) BoundWith(other Extent[P]) Extent[P] {
	if e.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return e
	}
	return NewExtentFromMinAndMax(e.Minimum.Min(other.Minimum), e.Max().Max(other.Max()))
}

// Points iterates every point in the extent in row-major order (X fastest).
func (e Extent[P]) Points() iter.Seq[P] {
	if e.IsEmpty() {
		return func(func(P) bool) {}
	}
	return e.Minimum.RangePoints(e.Max())
}

func (e Extent[P]) String() string {
	return fmt.Sprintf("Extent{min: %v, shape: %v}", e.Minimum, e.Shape)
}
