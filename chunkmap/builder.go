package chunkmap

import (
	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/lattice"
)

// Builder is the chunk-construction policy of a map: it knows the chunk
// shape, the ambient value, and how to materialize a new all-ambient chunk
// for an extent.
type Builder[P lattice.Point[P], T any] struct {
	ChunkShape   P
	AmbientValue T
}

// NewBuilder returns a Builder for the given shape and ambient value.
func NewBuilder[P lattice.Point[P], T any](chunkShape P, ambientValue T) Builder[P, T] {
	return Builder[P, T]{ChunkShape: chunkShape, AmbientValue: ambientValue}
}

// NewAmbientChunk builds a chunk over extent with every point set to the
// ambient value.
func (b Builder[P, T]) NewAmbientChunk(extent lattice.Extent[P]) *array.Array[P, T] {
	return array.Fill(extent, b.AmbientValue)
}

// BuildWithHashStorage creates a writable map backed by a fresh HashStorage.
func (b Builder[P, T]) BuildWithHashStorage() *WritableChunkMap[P, T] {
	return NewWritableChunkMap(b, NewHashStorage[P, T](b.ChunkShape.Log2()))
}

// BuildWithReadStorage creates a read-only map over an existing storage.
func (b Builder[P, T]) BuildWithReadStorage(store ReadStorage[P, *array.Array[P, T]]) *ChunkMap[P, T] {
	return NewChunkMap(b, store)
}

// BuildWithRWStorage creates a writable map over an existing read-write
// storage.
func (b Builder[P, T]) BuildWithRWStorage(store ReadWriteStorage[P, *array.Array[P, T]]) *WritableChunkMap[P, T] {
	return NewWritableChunkMap(b, store)
}
