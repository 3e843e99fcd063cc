package lattice

import "iter"

// Point is the constraint satisfied by the concrete lattice point types
// (Point2i, Point3i). All arithmetic is componentwise. Methods that need a
// "constructor" (Splat, FromMortonCode) take a receiver only to pick the
// concrete type; the receiver's value is ignored.
type Point[P any] interface {
	comparable

	// Componentwise arithmetic.
	Add(P) P
	Sub(P) P
	Mul(P) P
	Div(P) P

	// Componentwise bit operations. Shl and Shr shift each axis by the
	// count held in the corresponding axis of the argument; Shr is an
	// arithmetic shift, so it rounds toward negative infinity.
	And(P) P
	Not() P
	Shl(P) P
	Shr(P) P

	// Componentwise extrema and ordering.
	Min(P) P
	Max(P) P
	AllLessEq(P) bool

	// Splat returns the point with every component set to c.
	Splat(c int32) P

	// AllPowersOfTwo reports whether every component is a (positive)
	// power of two.
	AllPowersOfTwo() bool

	// Log2 returns the base-2 logarithm of each component. Only valid
	// when AllPowersOfTwo holds.
	Log2() P

	// Flatten returns the row-major linear index of a local point inside
	// a box of the given shape. The receiver must satisfy 0 <= receiver <
	// shape on every axis.
	Flatten(shape P) int

	// Product returns the product of all components, i.e. the number of
	// points in a box of this shape.
	Product() int64

	// RangePoints iterates every point p with receiver <= p <= max in
	// row-major order. Empty if max < receiver on any axis.
	RangePoints(max P) iter.Seq[P]

	// MortonCode interleaves the (biased) component bits into a single
	// key preserving spatial locality. Components must lie within
	// [-MortonRange, MortonRange). FromMortonCode is its inverse.
	MortonCode() uint64
	FromMortonCode(code uint64) P
}

// Bounding returns the smallest extent containing every point produced by
// seq. ok is false when seq is empty.
func Bounding[P Point[P]](seq iter.Seq[P]) (e Extent[P], ok bool) {
	var lo, hi P
	for p := range seq {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	if !ok {
		return Extent[P]{}, false
	}
	return NewExtentFromMinAndMax(lo, hi), true
}

func isPowerOfTwo(c int32) bool {
	return c > 0 && c&(c-1) == 0
}

func log2OrPanic(c int32) int32 {
	if !isPowerOfTwo(c) {
		panic("lattice: Log2 of a component that is not a power of two")
	}
	var n int32
	for c > 1 {
		c >>= 1
		n++
	}
	return n
}
