package chunkmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/lattice"
)

// HashStorage keeps chunks in a hash map. It implements both storage
// capabilities plus KeyIterator, tracking the occupied keys in a roaring
// bitmap of Morton codes so key enumeration follows spatial locality instead
// of hash order.
type HashStorage[P lattice.Point[P], T any] struct {
	chunks   map[P]*array.Array[P, T]
	occupied *roaring64.Bitmap
	keyShift P
}

// NewHashStorage returns an empty hash-map storage. keyShift is the per-axis
// log2 of the chunk shape: keys are always multiples of the chunk shape, so
// they are shifted down losslessly before Morton encoding. This widens the
// representable key range from the raw Morton range to [-2^20, 2^20) chunks
// per axis. A key outside that range panics in Set before any state changes.
func NewHashStorage[P lattice.Point[P], T any](keyShift P) *HashStorage[P, T] {
	return &HashStorage[P, T]{
		chunks:   make(map[P]*array.Array[P, T]),
		occupied: roaring64.New(),
		keyShift: keyShift,
	}
}

func (s *HashStorage[P, T]) code(key P) uint64 {
	return key.Shr(s.keyShift).MortonCode()
}

// Get implements ReadStorage.
func (s *HashStorage[P, T]) Get(key P) (*array.Array[P, T], bool) {
	chunk, ok := s.chunks[key]
	return chunk, ok
}

// GetMut implements WriteStorage.
func (s *HashStorage[P, T]) GetMut(key P) (*array.Array[P, T], bool) {
	chunk, ok := s.chunks[key]
	return chunk, ok
}

// Set implements WriteStorage.
func (s *HashStorage[P, T]) Set(key P, chunk *array.Array[P, T]) {
	// Encode first so an out-of-range key cannot leave the map and the
	// bitmap disagreeing.
	code := s.code(key)
	s.chunks[key] = chunk
	s.occupied.Add(code)
}

// Replace implements WriteStorage.
func (s *HashStorage[P, T]) Replace(key P, chunk *array.Array[P, T]) (*array.Array[P, T], bool) {
	prev, ok := s.chunks[key]
	s.Set(key, chunk)
	return prev, ok
}

// GetOrInsert implements WriteStorage.
func (s *HashStorage[P, T]) GetOrInsert(key P, create func() *array.Array[P, T]) *array.Array[P, T] {
	if chunk, ok := s.chunks[key]; ok {
		return chunk
	}
	chunk := create()
	s.Set(key, chunk)
	return chunk
}

// Delete implements WriteStorage.
func (s *HashStorage[P, T]) Delete(key P) {
	delete(s.chunks, key)
	s.occupied.Remove(s.code(key))
}

// Pop implements WriteStorage.
func (s *HashStorage[P, T]) Pop(key P) (*array.Array[P, T], bool) {
	chunk, ok := s.chunks[key]
	if ok {
		s.Delete(key)
	}
	return chunk, ok
}

// Keys implements KeyIterator. Keys come out in Morton (Z-curve) order, so
// nearby chunks are enumerated together.
func (s *HashStorage[P, T]) Keys() iter.Seq[P] {
	return func(yield func(P) bool) {
		var decode P
		it := s.occupied.Iterator()
		for it.HasNext() {
			if !yield(decode.FromMortonCode(it.Next()).Shl(s.keyShift)) {
				return
			}
		}
	}
}

// Len implements KeyIterator.
func (s *HashStorage[P, T]) Len() int {
	return len(s.chunks)
}

// Chunks iterates all stored key/chunk pairs in Morton key order.
func (s *HashStorage[P, T]) Chunks() iter.Seq2[P, *array.Array[P, T]] {
	return func(yield func(P, *array.Array[P, T]) bool) {
		for key := range s.Keys() {
			if !yield(key, s.chunks[key]) {
				return
			}
		}
	}
}
