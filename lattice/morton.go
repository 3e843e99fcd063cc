package lattice

import "fmt"

// MortonRange bounds the per-axis coordinate magnitude representable by
// MortonCode. Codes interleave 21 bits per axis, so components must lie in
// [-MortonRange, MortonRange).
const MortonRange = 1 << 20

func mortonBias(c int32) uint32 {
	if c < -MortonRange || c >= MortonRange {
		panic(fmt.Sprintf("lattice: coordinate %d outside Morton range [-%d, %d)", c, MortonRange, MortonRange))
	}
	return uint32(c + MortonRange)
}

func mortonUnbias(c uint32) int32 {
	return int32(c) - MortonRange
}

func morton3(x, y, z uint32) uint64 {
	return part1By2(uint64(x)) | part1By2(uint64(y))<<1 | part1By2(uint64(z))<<2
}

func unmorton3(code uint64) (x, y, z uint32) {
	return uint32(compact1By2(code)), uint32(compact1By2(code >> 1)), uint32(compact1By2(code >> 2))
}

func morton2(x, y uint32) uint64 {
	return part1By1(uint64(x)) | part1By1(uint64(y))<<1
}

func unmorton2(code uint64) (x, y uint32) {
	return uint32(compact1By1(code)), uint32(compact1By1(code >> 1))
}

func part1By2(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | (x << 32)) & 0x1f00000000ffff
	x = (x | (x << 16)) & 0x1f0000ff0000ff
	x = (x | (x << 8)) & 0x100f00f00f00f00f
	x = (x | (x << 4)) & 0x10c30c30c30c30c3
	x = (x | (x << 2)) & 0x1249249249249249
	return x
}

func compact1By2(x uint64) uint64 {
	x &= 0x1249249249249249
	x = (x ^ (x >> 2)) & 0x10c30c30c30c30c3
	x = (x ^ (x >> 4)) & 0x100f00f00f00f00f
	x = (x ^ (x >> 8)) & 0x1f0000ff0000ff
	x = (x ^ (x >> 16)) & 0x1f00000000ffff
	x = (x ^ (x >> 32)) & 0x1fffff
	return x
}

func part1By1(x uint64) uint64 {
	x &= 0xffffffff
	x = (x | (x << 16)) & 0x0000ffff0000ffff
	x = (x | (x << 8)) & 0x00ff00ff00ff00ff
	x = (x | (x << 4)) & 0x0f0f0f0f0f0f0f0f
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555
	return x
}

func compact1By1(x uint64) uint64 {
	x &= 0x5555555555555555
	x = (x ^ (x >> 1)) & 0x3333333333333333
	x = (x ^ (x >> 2)) & 0x0f0f0f0f0f0f0f0f
	x = (x ^ (x >> 4)) & 0x00ff00ff00ff00ff
	x = (x ^ (x >> 8)) & 0x0000ffff0000ffff
	x = (x ^ (x >> 16)) & 0x00000000ffffffff
	return x
}
