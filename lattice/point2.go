package lattice

import "iter"

// Point2i is a 2-dimensional lattice point.
type Point2i struct {
	X, Y int32
}

// P2 is shorthand for constructing a Point2i.
func P2(x, y int32) Point2i { return Point2i{X: x, Y: y} }

// Splat2 returns the Point2i with every component set to c.
func Splat2(c int32) Point2i { return Point2i{X: c, Y: c} }

func (p Point2i) Add(q Point2i) Point2i { return Point2i{p.X + q.X, p.Y + q.Y} }
func (p Point2i) Sub(q Point2i) Point2i { return Point2i{p.X - q.X, p.Y - q.Y} }
func (p Point2i) Mul(q Point2i) Point2i { return Point2i{p.X * q.X, p.Y * q.Y} }
func (p Point2i) Div(q Point2i) Point2i { return Point2i{p.X / q.X, p.Y / q.Y} }

func (p Point2i) And(q Point2i) Point2i { return Point2i{p.X & q.X, p.Y & q.Y} }
func (p Point2i) Not() Point2i          { return Point2i{^p.X, ^p.Y} }
func (p Point2i) Shl(q Point2i) Point2i { return Point2i{p.X << q.X, p.Y << q.Y} }
func (p Point2i) Shr(q Point2i) Point2i { return Point2i{p.X >> q.X, p.Y >> q.Y} }

func (p Point2i) Min(q Point2i) Point2i { return Point2i{min(p.X, q.X), min(p.Y, q.Y)} }
func (p Point2i) Max(q Point2i) Point2i { return Point2i{max(p.X, q.X), max(p.Y, q.Y)} }

// AllLessEq reports whether p <= q on every axis.
func (p Point2i) AllLessEq(q Point2i) bool {
	return p.X <= q.X && p.Y <= q.Y
}

func (Point2i) Splat(c int32) Point2i { return Splat2(c) }

func (p Point2i) AllPowersOfTwo() bool {
	return isPowerOfTwo(p.X) && isPowerOfTwo(p.Y)
}

func (p Point2i) Log2() Point2i {
	return Point2i{log2OrPanic(p.X), log2OrPanic(p.Y)}
}

// Flatten returns the row-major linear index of a local point inside a box
// of the given shape: x + sx*y.
func (p Point2i) Flatten(shape Point2i) int {
	return int(p.X) + int(shape.X)*int(p.Y)
}

func (p Point2i) Product() int64 {
	return int64(p.X) * int64(p.Y)
}

// RangePoints iterates all points from p through max inclusive, X fastest.
func (p Point2i) RangePoints(max Point2i) iter.Seq[Point2i] {
	return func(yield func(Point2i) bool) {
		for y := p.Y; y <= max.Y; y++ {
			for x := p.X; x <= max.X; x++ {
				if !yield(Point2i{x, y}) {
					return
				}
			}
		}
	}
}

func (p Point2i) MortonCode() uint64 {
	return morton2(mortonBias(p.X), mortonBias(p.Y))
}

func (Point2i) FromMortonCode(code uint64) Point2i {
	x, y := unmorton2(code)
	return Point2i{mortonUnbias(x), mortonUnbias(y)}
}
