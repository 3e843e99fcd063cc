package chunkmap

import (
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/compression"
	"github.com/hupe1980/voxelgo/lattice"
)

// CompressedStorage is a read-only storage that keeps every chunk
// compressed, decompressing into a fresh chunk on every Get. Pair it with a
// ChunkMap to read a snapshot of a large, mostly idle volume at a fraction
// of the resident memory. There is no caching layer here; callers that read
// the same chunk repeatedly should layer their own cache on top.
type CompressedStorage[P lattice.Point[P], T any] struct {
	codec  compression.ArrayCompression[P, T]
	chunks map[P]compression.CompressedArray[P, T]
}

// NewCompressedStorage compresses every chunk produced by source, in
// parallel across CPUs.
func NewCompressedStorage[P lattice.Point[P], T any](
	codec compression.ArrayCompression[P, T],
	source iter.Seq2[P, *array.Array[P, T]],
) (*CompressedStorage[P, T], error) {
	type entry struct {
		key   P
		chunk *array.Array[P, T]
	}

	var entries []entry
	for key, chunk := range source {
		entries = append(entries, entry{key: key, chunk: chunk})
	}

	compressed := make([]compression.CompressedArray[P, T], len(entries))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		g.Go(func() error {
			ca, err := codec.Compress(e.chunk)
			if err != nil {
				return fmt.Errorf("chunkmap: compress chunk at %v: %w", e.key, err)
			}
			compressed[i] = ca
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chunks := make(map[P]compression.CompressedArray[P, T], len(entries))
	for i, e := range entries {
		chunks[e.key] = compressed[i]
	}

	return &CompressedStorage[P, T]{codec: codec, chunks: chunks}, nil
}

// Get implements ReadStorage. The returned chunk is freshly decompressed and
// owned by the caller; mutating it does not affect the stored bytes.
//
// The stored buffers were produced by this storage's own codec, so a
// decompression failure means the process memory is corrupt; it panics
// rather than returning garbage.
func (s *CompressedStorage[P, T]) Get(key P) (*array.Array[P, T], bool) {
	ca, ok := s.chunks[key]
	if !ok {
		return nil, false
	}

	chunk, err := s.codec.Decompress(ca)
	if err != nil {
		panic(fmt.Sprintf("chunkmap: decompress chunk at %v: %v", key, err))
	}

	return chunk, true
}

// Keys implements KeyIterator.
func (s *CompressedStorage[P, T]) Keys() iter.Seq[P] {
	return func(yield func(P) bool) {
		for key := range s.chunks {
			if !yield(key) {
				return
			}
		}
	}
}

// Len implements KeyIterator.
func (s *CompressedStorage[P, T]) Len() int {
	return len(s.chunks)
}

// CompressedBytes returns the total size of all compressed chunk buffers.
func (s *CompressedStorage[P, T]) CompressedBytes() int {
	var total int
	for _, ca := range s.chunks {
		total += ca.CompressedSize()
	}
	return total
}
