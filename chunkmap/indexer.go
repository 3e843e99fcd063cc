package chunkmap

import (
	"fmt"
	"iter"

	"github.com/hupe1980/voxelgo/lattice"
)

// ChunkIndexer translates between lattice coordinates and chunk key space.
// The key for a chunk is the minimum point of that chunk's extent.
type ChunkIndexer[P lattice.Point[P]] struct {
	chunkShape     P
	chunkShapeMask P
	chunkShapeLog2 P
}

// NewChunkIndexer builds an indexer for the given chunk shape. Every
// component of the shape must be a power of two; violating that is a caller
// bug and panics.
func NewChunkIndexer[P lattice.Point[P]](chunkShape P) ChunkIndexer[P] {
	if !chunkShape.AllPowersOfTwo() {
		panic(fmt.Sprintf("chunkmap: chunk shape %v must be a power of two on every axis", chunkShape))
	}

	var one P
	one = one.Splat(1)

	return ChunkIndexer[P]{
		chunkShape:     chunkShape,
		chunkShapeMask: chunkShape.Sub(one).Not(),
		chunkShapeLog2: chunkShape.Log2(),
	}
}

// ChunkShape returns the constant shape shared by all chunks.
func (i ChunkIndexer[P]) ChunkShape() P { return i.chunkShape }

// ChunkShapeMask returns the mask that zeroes the intra-chunk bits of a
// point.
func (i ChunkIndexer[P]) ChunkShapeMask() P { return i.chunkShapeMask }

// ChunkKeyContainingPoint returns the key of the chunk containing p. The
// mask rounds toward negative infinity on every axis, so negative
// coordinates land in the correct chunk.
func (i ChunkIndexer[P]) ChunkKeyContainingPoint(p P) P {
	return i.chunkShapeMask.And(p)
}

// ChunkKeyIsValid reports whether key is chunk-aligned, i.e. an exact
// multiple of the chunk shape on every axis.
func (i ChunkIndexer[P]) ChunkKeyIsValid(key P) bool {
	return i.chunkShape.Mul(key.Div(i.chunkShape)) == key
}

// ChunkKeysForExtent iterates the key of every chunk overlapping extent, in
// row-major order of the shifted key range. The sequence is finite and can
// be restarted.
func (i ChunkIndexer[P]) ChunkKeysForExtent(extent lattice.Extent[P]) iter.Seq[P] {
	keyMin := extent.Minimum.Shr(i.chunkShapeLog2)
	keyMax := extent.Max().Shr(i.chunkShapeLog2)
	log2 := i.chunkShapeLog2

	return func(yield func(P) bool) {
		for k := range keyMin.RangePoints(keyMax) {
			if !yield(k.Shl(log2)) {
				return
			}
		}
	}
}

// ExtentForChunkAtKey returns the extent spanned by the chunk at key,
// [key, key+shape).
func (i ChunkIndexer[P]) ExtentForChunkAtKey(key P) lattice.Extent[P] {
	return lattice.NewExtent(key, i.chunkShape)
}
