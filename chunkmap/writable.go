package chunkmap

import (
	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/lattice"
)

// WritableChunkMap extends ChunkMap with mutation. Mutating point accessors
// materialize an all-ambient chunk on first touch of a vacant key, so every
// write through GetMut may cost one chunk allocation.
//
// The map is single-writer; see the package comment.
type WritableChunkMap[P lattice.Point[P], T any] struct {
	ChunkMap[P, T]
	wstore WriteStorage[P, *array.Array[P, T]]
}

// NewWritableChunkMap creates a writable map over a storage with both read
// and write capabilities.
func NewWritableChunkMap[P lattice.Point[P], T any](builder Builder[P, T], store ReadWriteStorage[P, *array.Array[P, T]]) *WritableChunkMap[P, T] {
	return &WritableChunkMap[P, T]{
		ChunkMap: *NewChunkMap[P, T](builder, store),
		wstore:   store,
	}
}

// SetChunk stores chunk at key, dropping any previous chunk. key must be
// chunk-aligned.
func (m *WritableChunkMap[P, T]) SetChunk(key P, chunk *array.Array[P, T]) {
	m.checkKey(key)
	m.wstore.Set(key, chunk)
}

// ReplaceChunk stores chunk at key and returns the previous chunk, if any.
// key must be chunk-aligned.
func (m *WritableChunkMap[P, T]) ReplaceChunk(key P, chunk *array.Array[P, T]) (*array.Array[P, T], bool) {
	m.checkKey(key)
	return m.wstore.Replace(key, chunk)
}

// GetMutChunk returns the chunk at key for mutation, if stored. key must be
// chunk-aligned.
func (m *WritableChunkMap[P, T]) GetMutChunk(key P) (*array.Array[P, T], bool) {
	m.checkKey(key)
	return m.wstore.GetMut(key)
}

// GetChunkOrInsertAmbient returns the chunk at key, materializing an
// all-ambient chunk when the key is vacant. key must be chunk-aligned.
func (m *WritableChunkMap[P, T]) GetChunkOrInsertAmbient(key P) *array.Array[P, T] {
	m.checkKey(key)
	return m.wstore.GetOrInsert(key, func() *array.Array[P, T] {
		return m.builder.NewAmbientChunk(m.indexer.ExtentForChunkAtKey(key))
	})
}

// DeleteChunk removes the chunk at key, if any. key must be chunk-aligned.
func (m *WritableChunkMap[P, T]) DeleteChunk(key P) {
	m.checkKey(key)
	m.wstore.Delete(key)
}

// PopChunk removes and returns the chunk at key, if any. key must be
// chunk-aligned.
func (m *WritableChunkMap[P, T]) PopChunk(key P) (*array.Array[P, T], bool) {
	m.checkKey(key)
	return m.wstore.Pop(key)
}

// GetMut returns a pointer to the value at p, materializing the containing
// chunk if absent.
func (m *WritableChunkMap[P, T]) GetMut(p P) *T {
	key := m.indexer.ChunkKeyContainingPoint(p)
	return m.GetChunkOrInsertAmbient(key).GetMut(p)
}

// Set stores value at p, materializing the containing chunk if absent.
func (m *WritableChunkMap[P, T]) Set(p P, value T) {
	*m.GetMut(p) = value
}

// VisitMutChunks calls visitor for every chunk overlapping extent,
// materializing vacant chunks first. This is the bulk-write path: a region
// about to be written must exist.
func (m *WritableChunkMap[P, T]) VisitMutChunks(extent lattice.Extent[P], visitor func(*array.Array[P, T])) {
	for key := range m.indexer.ChunkKeysForExtent(extent) {
		visitor(m.GetChunkOrInsertAmbient(key))
	}
}

// VisitOccupiedMutChunks calls visitor for every stored chunk overlapping
// extent, without materializing vacant ones.
func (m *WritableChunkMap[P, T]) VisitOccupiedMutChunks(extent lattice.Extent[P], visitor func(*array.Array[P, T])) {
	for key := range m.indexer.ChunkKeysForExtent(extent) {
		if chunk, ok := m.wstore.GetMut(key); ok {
			visitor(chunk)
		}
	}
}

// ForEachMut calls f with a pointer to the value for every point in extent,
// materializing every touched chunk.
func (m *WritableChunkMap[P, T]) ForEachMut(extent lattice.Extent[P], f func(P, *T)) {
	m.VisitMutChunks(extent, func(chunk *array.Array[P, T]) {
		chunk.ForEachMut(extent, f)
	})
}

// FillExtent sets every point of extent to value, materializing every
// touched chunk.
// PERF: whole-chunk interior fills could skip the per-point path.
func (m *WritableChunkMap[P, T]) FillExtent(extent lattice.Extent[P], value T) {
	m.ForEachMut(extent, func(_ P, v *T) { *v = value })
}
