package chunkmap

import (
	"fmt"

	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/lattice"
)

// ChunkMap is a sparse lattice map over a read-capable chunk storage. It
// answers reads for every point in the universe: points inside stored chunks
// come from chunk data, all other points take the ambient value. Reading
// never creates storage.
type ChunkMap[P lattice.Point[P], T any] struct {
	indexer ChunkIndexer[P]
	builder Builder[P, T]
	store   ReadStorage[P, *array.Array[P, T]]
}

// NewChunkMap creates a read-only map view over store. The chunk shape must
// be a power of two on every axis.
func NewChunkMap[P lattice.Point[P], T any](builder Builder[P, T], store ReadStorage[P, *array.Array[P, T]]) *ChunkMap[P, T] {
	return &ChunkMap[P, T]{
		indexer: NewChunkIndexer(builder.ChunkShape),
		builder: builder,
		store:   store,
	}
}

// Indexer returns the map's coordinate indexer.
func (m *ChunkMap[P, T]) Indexer() ChunkIndexer[P] { return m.indexer }

// Builder returns the map's chunk-construction policy.
func (m *ChunkMap[P, T]) Builder() Builder[P, T] { return m.builder }

// AmbientValue returns the value of every point not covered by a chunk.
func (m *ChunkMap[P, T]) AmbientValue() T { return m.builder.AmbientValue }

// Storage returns the backing storage.
func (m *ChunkMap[P, T]) Storage() ReadStorage[P, *array.Array[P, T]] { return m.store }

func (m *ChunkMap[P, T]) checkKey(key P) {
	if !m.indexer.ChunkKeyIsValid(key) {
		panic(fmt.Sprintf("chunkmap: key %v is not a multiple of the chunk shape %v", key, m.indexer.ChunkShape()))
	}
}

// GetChunk returns the chunk at key, if stored. key must be chunk-aligned.
func (m *ChunkMap[P, T]) GetChunk(key P) (*array.Array[P, T], bool) {
	m.checkKey(key)
	return m.store.Get(key)
}

// Get returns the value at p, or the ambient value when p is not covered by
// a stored chunk.
func (m *ChunkMap[P, T]) Get(p P) T {
	key := m.indexer.ChunkKeyContainingPoint(p)
	if chunk, ok := m.store.Get(key); ok {
		return chunk.Get(p)
	}
	return m.builder.AmbientValue
}

// ChunkView is what VisitChunks hands to its visitor for each chunk key
// overlapping the queried extent: the stored chunk when one exists, or the
// vacant chunk's extent paired with an ambient view that costs no storage.
type ChunkView[P lattice.Point[P], T any] struct {
	// Chunk is the stored chunk, or nil when the key is vacant.
	Chunk *array.Array[P, T]
	// Extent is the chunk's extent regardless of occupancy.
	Extent lattice.Extent[P]
	// Ambient reports the ambient value for every point of a vacant
	// chunk. Only meaningful when Chunk is nil.
	Ambient AmbientExtent[P, T]
}

// VisitChunks calls visitor for every chunk key overlapping extent, vacant
// keys included. Vacant keys are represented by an AmbientExtent instead of
// materialized storage.
func (m *ChunkMap[P, T]) VisitChunks(extent lattice.Extent[P], visitor func(ChunkView[P, T])) {
	for key := range m.indexer.ChunkKeysForExtent(extent) {
		chunkExtent := m.indexer.ExtentForChunkAtKey(key)
		if chunk, ok := m.store.Get(key); ok {
			visitor(ChunkView[P, T]{Chunk: chunk, Extent: chunkExtent})
		} else {
			visitor(ChunkView[P, T]{
				Extent:  chunkExtent,
				Ambient: AmbientExtent[P, T]{Value: m.builder.AmbientValue},
			})
		}
	}
}

// VisitOccupiedChunks calls visitor for every stored chunk overlapping
// extent.
func (m *ChunkMap[P, T]) VisitOccupiedChunks(extent lattice.Extent[P], visitor func(*array.Array[P, T])) {
	for key := range m.indexer.ChunkKeysForExtent(extent) {
		if chunk, ok := m.store.Get(key); ok {
			visitor(chunk)
		}
	}
}

// ForEach calls f for every point in extent, reading chunk data where chunks
// exist and the ambient value everywhere else.
func (m *ChunkMap[P, T]) ForEach(extent lattice.Extent[P], f func(P, T)) {
	m.VisitChunks(extent, func(view ChunkView[P, T]) {
		if view.Chunk != nil {
			view.Chunk.ForEach(extent, f)
		} else {
			view.Ambient.ForEach(extent.Intersection(view.Extent), f)
		}
	})
}

// BoundingExtent returns the smallest extent containing every stored chunk.
// It requires a storage that implements KeyIterator and panics otherwise.
// ok is false when the storage is empty; the returned extent is then the
// zero Extent (degenerate, empty).
func (m *ChunkMap[P, T]) BoundingExtent() (e lattice.Extent[P], ok bool) {
	keys, iterable := m.store.(KeyIterator[P])
	if !iterable {
		panic("chunkmap: BoundingExtent requires a storage that can enumerate its chunk keys")
	}

	for key := range keys.Keys() {
		chunkExtent := m.indexer.ExtentForChunkAtKey(key)
		if !ok {
			e, ok = chunkExtent, true
			continue
		}
		e = e.BoundWith(chunkExtent)
	}

	return e, ok
}

// AmbientExtent reports one fixed value for every point of an extent,
// standing in for a chunk that was never materialized.
type AmbientExtent[P lattice.Point[P], T any] struct {
	Value T
}

// Get returns the ambient value.
func (a AmbientExtent[P, T]) Get(P) T { return a.Value }

// ForEach calls f with the ambient value for every point in extent.
func (a AmbientExtent[P, T]) ForEach(extent lattice.Extent[P], f func(P, T)) {
	for p := range extent.Points() {
		f(p, a.Value)
	}
}
