package lattice

import "iter"

// Point3i is a 3-dimensional lattice point.
type Point3i struct {
	X, Y, Z int32
}

// P3 is shorthand for constructing a Point3i.
func P3(x, y, z int32) Point3i { return Point3i{X: x, Y: y, Z: z} }

// Splat3 returns the Point3i with every component set to c.
func Splat3(c int32) Point3i { return Point3i{X: c, Y: c, Z: c} }

func (p Point3i) Add(q Point3i) Point3i { return Point3i{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3i) Sub(q Point3i) Point3i { return Point3i{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3i) Mul(q Point3i) Point3i { return Point3i{p.X * q.X, p.Y * q.Y, p.Z * q.Z} }
func (p Point3i) Div(q Point3i) Point3i { return Point3i{p.X / q.X, p.Y / q.Y, p.Z / q.Z} }

func (p Point3i) And(q Point3i) Point3i { return Point3i{p.X & q.X, p.Y & q.Y, p.Z & q.Z} }
func (p Point3i) Not() Point3i          { return Point3i{^p.X, ^p.Y, ^p.Z} }
func (p Point3i) Shl(q Point3i) Point3i { return Point3i{p.X << q.X, p.Y << q.Y, p.Z << q.Z} }
func (p Point3i) Shr(q Point3i) Point3i { return Point3i{p.X >> q.X, p.Y >> q.Y, p.Z >> q.Z} }

func (p Point3i) Min(q Point3i) Point3i {
	return Point3i{min(p.X, q.X), min(p.Y, q.Y), min(p.Z, q.Z)}
}

func (p Point3i) Max(q Point3i) Point3i {
	return Point3i{max(p.X, q.X), max(p.Y, q.Y), max(p.Z, q.Z)}
}

// AllLessEq reports whether p <= q on every axis.
func (p Point3i) AllLessEq(q Point3i) bool {
	return p.X <= q.X && p.Y <= q.Y && p.Z <= q.Z
}

func (Point3i) Splat(c int32) Point3i { return Splat3(c) }

func (p Point3i) AllPowersOfTwo() bool {
	return isPowerOfTwo(p.X) && isPowerOfTwo(p.Y) && isPowerOfTwo(p.Z)
}

func (p Point3i) Log2() Point3i {
	return Point3i{log2OrPanic(p.X), log2OrPanic(p.Y), log2OrPanic(p.Z)}
}

// Flatten returns the row-major linear index of a local point inside a box
// of the given shape: x + sx*(y + sy*z).
func (p Point3i) Flatten(shape Point3i) int {
	return int(p.X) + int(shape.X)*(int(p.Y)+int(shape.Y)*int(p.Z))
}

func (p Point3i) Product() int64 {
	return int64(p.X) * int64(p.Y) * int64(p.Z)
}

// RangePoints iterates all points from p through max inclusive, X fastest.
func (p Point3i) RangePoints(max Point3i) iter.Seq[Point3i] {
	return func(yield func(Point3i) bool) {
		for z := p.Z; z <= max.Z; z++ {
			for y := p.Y; y <= max.Y; y++ {
				for x := p.X; x <= max.X; x++ {
					if !yield(Point3i{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

func (p Point3i) MortonCode() uint64 {
	return morton3(mortonBias(p.X), mortonBias(p.Y), mortonBias(p.Z))
}

func (Point3i) FromMortonCode(code uint64) Point3i {
	x, y, z := unmorton3(code)
	return Point3i{mortonUnbias(x), mortonUnbias(y), mortonUnbias(z)}
}
