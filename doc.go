// Package voxelgo is an embeddable storage and collision engine for sparse
// voxel data.
//
// Voxels live in chunked lattice maps: space is partitioned into
// power-of-two chunks, only chunks that were written exist in memory, and
// reads outside of them resolve to a configurable ambient value. Chunks can
// be compressed in bulk with LZ4, Snappy, or Zstd codecs. On top of the
// maps, occupancy octrees support pruned ray and swept-sphere casts against
// the occupied voxels.
//
// # Quick Start
//
//	world, _ := voxelgo.Map3[uint16](lattice.Splat3(16)).
//	    Ambient(0).
//	    Build()
//
//	world.Set(lattice.P3(4, 1, -7), 12)
//	v := world.Get(lattice.P3(4, 1, -7))
//
// # Collision
//
// Build an octree set over the occupied voxels and cast against it:
//
//	set := voxelgo.OctreeSet(world, func(v uint16) bool { return v == 0 })
//	impact, ok := collision.RayCast(set, ray, 100.0, nil)
//
// # Compression
//
// Whole maps compress chunk-by-chunk in parallel:
//
//	frozen, _ := world.Compress(ctx)
//
// The subpackages (lattice, array, chunkmap, compression, octree, geometry,
// collision) are usable directly; this package glues them together behind a
// fluent builder.
package voxelgo
