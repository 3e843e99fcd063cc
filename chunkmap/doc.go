// Package chunkmap provides a sparse lattice map made of same-shaped dense
// chunks.
//
// The map takes a value at every possible point: reads outside the stored
// chunks return an ambient value fixed at construction. The key for a chunk
// is the minimum point of its extent, always a multiple of the chunk shape;
// shapes are powers of two per axis so keys are computed with masks and
// shifts (ChunkIndexer).
//
// Chunks live in a pluggable storage backend. Capabilities are split:
// ReadStorage is enough for a ChunkMap (read-only view), WriteStorage plus
// ReadStorage is required for a WritableChunkMap. Reading never creates
// chunks; mutating accessors materialize an ambient chunk on first touch.
//
// A map instance is single-writer: it performs no internal locking, and
// concurrent mutation is a caller bug. Any number of readers may share a map
// that nobody is mutating.
package chunkmap
