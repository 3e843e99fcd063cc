package voxelgo

import (
	"context"
	"fmt"

	"github.com/hupe1980/voxelgo/chunkmap"
	"github.com/hupe1980/voxelgo/compression"
	"github.com/hupe1980/voxelgo/lattice"
	"github.com/hupe1980/voxelgo/octree"
)

// Map is a sparse chunked voxel map backed by in-memory hash storage. It
// embeds the full read/write chunk map API and adds bulk compression on
// top.
//
// A Map is safe for concurrent reads. Writes require external
// synchronization.
type Map[P lattice.Point[P], T any] struct {
	*chunkmap.WritableChunkMap[P, T]

	store  *chunkmap.HashStorage[P, T]
	codec  compression.BytesCompression
	logger *Logger
}

// FillExtent writes value to every point of extent, materializing every
// touched chunk.
func (m *Map[P, T]) FillExtent(extent lattice.Extent[P], value T) {
	m.WritableChunkMap.FillExtent(extent, value)
	m.logger.LogFill(extent.String(), extent.NumPoints())
}

// Compress compresses every occupied chunk with the configured codec, in
// parallel across CPUs, and returns a read-only snapshot of the map backed
// by the compressed chunks. The snapshot decompresses chunks on demand; the
// original map is left untouched.
//
// Compressing a map with no occupied chunks returns ErrEmptyMap.
func (m *Map[P, T]) Compress(ctx context.Context) (*chunkmap.ChunkMap[P, T], error) {
	if m.store.Len() == 0 {
		return nil, ErrEmptyMap
	}

	codec := compression.NewArrayCompression[P, T](m.codec)
	logger := m.logger.WithChunkCount(m.store.Len())

	var rawBytes int
	for _, chunk := range m.store.Chunks() {
		rawBytes += chunk.Channel().Len() * chunk.Channel().ElementSize()
	}

	cs, err := chunkmap.NewCompressedStorage(codec, m.store.Chunks())
	if err != nil {
		logger.LogCompress(ctx, rawBytes, 0, err)
		return nil, err
	}

	logger.LogCompress(ctx, rawBytes, cs.CompressedBytes(), nil)

	return m.Builder().BuildWithReadStorage(cs), nil
}

// OctreeSet builds an occupancy octree for every occupied chunk of a
// 3-dimensional map and collects them into a set for collision queries.
// Voxels for which isEmpty returns true are unoccupied. The map's chunk
// shape must be cubic.
//
// The set is a snapshot; later writes to the map are not reflected in it.
// A map with no occupied chunks returns ErrEmptyMap.
func OctreeSet[T any](ctx context.Context, m *Map[lattice.Point3i, T], isEmpty func(T) bool) (*octree.Set, error) {
	shape := m.Indexer().ChunkShape()
	if shape.X != shape.Y || shape.Y != shape.Z {
		return nil, &ErrNonCubicChunkShape{Shape: fmt.Sprintf("%v", shape)}
	}
	if m.store.Len() == 0 {
		return nil, ErrEmptyMap
	}
	power := int(shape.Log2().X)

	set := octree.NewSet()
	chunks := 0
	for _, chunk := range m.store.Chunks() {
		chunks++
		set.Insert(octree.FromArray(power, chunk, isEmpty))
	}

	m.logger.LogOctreeBuild(ctx, chunks, set.Len())

	return set, nil
}
