package chunkmap

import "iter"

// ReadStorage is the read capability of a chunk storage backend: chunk
// lookup by key. Chunk keys are always chunk-aligned; the map validates them
// before they reach the backend.
type ReadStorage[P comparable, Ch any] interface {
	// Get returns the chunk at key, or ok=false when no chunk is stored
	// there. Implementations that keep chunks in a transformed form (for
	// example compressed) may return a freshly reconstructed chunk on
	// every call.
	Get(key P) (Ch, bool)
}

// WriteStorage is the write capability of a chunk storage backend:
// insert/replace/delete by key plus mutable lookup.
type WriteStorage[P comparable, Ch any] interface {
	// GetMut returns the chunk at key for mutation, or ok=false.
	GetMut(key P) (Ch, bool)
	// Set stores chunk at key, dropping any previous chunk.
	Set(key P, chunk Ch)
	// Replace stores chunk at key and returns the previous chunk, if any.
	Replace(key P, chunk Ch) (Ch, bool)
	// GetOrInsert returns the chunk at key, calling create to build and
	// store one if absent.
	GetOrInsert(key P, create func() Ch) Ch
	// Delete removes the chunk at key, if any.
	Delete(key P)
	// Pop removes and returns the chunk at key, if any.
	Pop(key P) (Ch, bool)
}

// ReadWriteStorage combines both capabilities; WritableChunkMap requires it.
type ReadWriteStorage[P comparable, Ch any] interface {
	ReadStorage[P, Ch]
	WriteStorage[P, Ch]
}

// KeyIterator is the optional enumeration capability. Backends that can list
// their keys enable ChunkMap.BoundingExtent.
type KeyIterator[P comparable] interface {
	// Keys iterates every key with a stored chunk.
	Keys() iter.Seq[P]
	// Len returns the number of stored chunks.
	Len() int
}
