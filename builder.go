// Package voxelgo provides chunked sparse voxel maps with collision support.
//
// This file implements the fluent builder API for creating and configuring
// maps. Builders are immutable - each method returns a new builder with the
// updated configuration.
package voxelgo

import (
	"fmt"

	"github.com/hupe1980/voxelgo/chunkmap"
	"github.com/hupe1980/voxelgo/compression"
	"github.com/hupe1980/voxelgo/lattice"
)

// Map3 creates a builder for a 3-dimensional map with the given chunk
// shape. Every component of the shape must be a positive power of two.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	world, err := voxelgo.Map3[uint16](lattice.Splat3(16)).
//	    Ambient(0).
//	    Compression(compression.LZ4{}).
//	    Build()
func Map3[T any](chunkShape lattice.Point3i) MapBuilder[lattice.Point3i, T] {
	return MapBuilder[lattice.Point3i, T]{
		chunkShape: chunkShape,
		codec:      compression.Zstd{},
	}
}

// Map2 creates a builder for a 2-dimensional map with the given chunk
// shape, e.g. for height maps or tile layers.
func Map2[T any](chunkShape lattice.Point2i) MapBuilder[lattice.Point2i, T] {
	return MapBuilder[lattice.Point2i, T]{
		chunkShape: chunkShape,
		codec:      compression.Zstd{},
	}
}

// MapBuilder is an immutable fluent builder for creating Map instances.
// Each method returns a new builder with the updated configuration.
type MapBuilder[P lattice.Point[P], T any] struct {
	chunkShape P
	ambient    T
	codec      compression.BytesCompression
	logger     *Logger
}

// Ambient sets the value returned by reads outside of any occupied chunk.
// Default: the zero value of T.
func (b MapBuilder[P, T]) Ambient(value T) MapBuilder[P, T] {
	b.ambient = value
	return b
}

// Compression sets the byte codec used by Compress.
// Default: Zstd.
func (b MapBuilder[P, T]) Compression(c compression.BytesCompression) MapBuilder[P, T] {
	b.codec = c
	return b
}

// Logger sets the structured logger for operation tracing.
func (b MapBuilder[P, T]) Logger(l *Logger) MapBuilder[P, T] {
	b.logger = l
	return b
}

// Build creates the Map, backed by in-memory hash storage.
func (b MapBuilder[P, T]) Build() (*Map[P, T], error) {
	if !b.chunkShape.AllPowersOfTwo() {
		return nil, &ErrInvalidChunkShape{Shape: fmt.Sprintf("%v", b.chunkShape)}
	}

	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}
	logger = logger.WithChunkShape(fmt.Sprintf("%v", b.chunkShape))

	store := chunkmap.NewHashStorage[P, T](b.chunkShape.Log2())
	m := chunkmap.NewBuilder(b.chunkShape, b.ambient).BuildWithRWStorage(store)

	return &Map[P, T]{
		WritableChunkMap: m,
		store:            store,
		codec:            b.codec,
		logger:           logger,
	}, nil
}

// MustBuild creates the Map, panicking on error.
func (b MapBuilder[P, T]) MustBuild() *Map[P, T] {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
